package cabi

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// EncodeString copies s into a new NUL-terminated C buffer.
// The caller owns the result and must release it with FreeBuffer.
// Strings that contain a NUL byte or invalid UTF-8 are rejected rather
// than truncated.
func EncodeString(s string) (unsafe.Pointer, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	if !utf8.ValidString(s) {
		return nil, ErrInvalidEncoding
	}
	return unsafe.Pointer(C.CString(s)), nil
}

// DecodeString copies the NUL-terminated buffer at p into a Go string.
// It never reads past the terminator and does not take ownership of p.
func DecodeString(p unsafe.Pointer) (string, error) {
	if p == nil {
		return "", ErrNullPointer
	}
	s := C.GoString((*C.char)(p))
	if !utf8.ValidString(s) {
		return "", ErrInvalidEncoding
	}
	return s, nil
}

// FreeBuffer releases a buffer produced by this package. NULL is ignored.
func FreeBuffer(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// AllocBytes copies b into a new C buffer and appends a NUL terminator.
// Unlike EncodeString it performs no validation, so the result may hold any
// byte sequence. The caller owns the result.
func AllocBytes(b []byte) unsafe.Pointer {
	p := C.malloc(C.size_t(len(b) + 1))
	buf := unsafe.Slice((*byte)(p), len(b)+1)
	copy(buf, b)
	buf[len(b)] = 0
	return p
}

// DecodeStringArray reads count consecutive string pointers starting at arr.
// Both the array and the strings it points to are borrowed.
func DecodeStringArray(arr unsafe.Pointer, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("modbridge/cabi: negative array length %d", count)
	}
	if count == 0 {
		return []string{}, nil
	}
	if arr == nil {
		return nil, ErrNullPointer
	}

	ptrs := unsafe.Slice((**C.char)(arr), count)
	out := make([]string, count)
	for i, p := range ptrs {
		s, err := DecodeString(unsafe.Pointer(p))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// StringArray is a C array of string pointers built by EncodeStringArray.
// The array and every string in it are owned by the holder until Free.
type StringArray struct {
	ptr unsafe.Pointer
	n   int
}

// EncodeStringArray builds a C array holding a copy of each string.
func EncodeStringArray(strs []string) (*StringArray, error) {
	slots := len(strs)
	if slots == 0 {
		slots = 1
	}
	ptr := C.calloc(C.size_t(slots), C.size_t(unsafe.Sizeof(uintptr(0))))
	arr := &StringArray{ptr: ptr, n: len(strs)}

	cells := unsafe.Slice((**C.char)(ptr), slots)
	for i, s := range strs {
		p, err := EncodeString(s)
		if err != nil {
			arr.Free()
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		cells[i] = (*C.char)(p)
	}
	return arr, nil
}

// Pointer returns the address of the first element.
func (a *StringArray) Pointer() unsafe.Pointer {
	return a.ptr
}

// Len returns the number of strings in the array.
func (a *StringArray) Len() int {
	return a.n
}

// Free releases the array and every string in it. Safe to call twice.
func (a *StringArray) Free() {
	if a.ptr == nil {
		return
	}
	slots := a.n
	if slots == 0 {
		slots = 1
	}
	for _, p := range unsafe.Slice((**C.char)(a.ptr), slots) {
		FreeBuffer(unsafe.Pointer(p))
	}
	C.free(a.ptr)
	a.ptr = nil
}
