package loader

/*
#include <stddef.h>
#include <stdint.h>

typedef uintptr_t (*mb_new_fn)(void);
typedef uintptr_t (*mb_new_str_fn)(const char*);
typedef int32_t   (*mb_i32_2_fn)(uintptr_t, int32_t, int32_t);
typedef int32_t   (*mb_i32_3_fn)(uintptr_t, int32_t, int32_t, int32_t);
typedef int64_t   (*mb_i64_fn)(uintptr_t, int32_t);
typedef int32_t   (*mb_valid_fn)(uintptr_t);
typedef void      (*mb_free_fn)(uintptr_t);
typedef char*     (*mb_str_fn)(uintptr_t, const char*);
typedef char*     (*mb_concat_fn)(uintptr_t, const char* const*, size_t, const char*);
typedef size_t    (*mb_count_fn)(uintptr_t, const char*);
typedef void      (*mb_log_fn)(uintptr_t, const char*);
typedef void      (*mb_free_str_fn)(char*);
typedef char*     (*mb_map_str_fn)(const char*);
typedef int32_t   (*mb_pair_fn)(int32_t, int32_t);
typedef uint32_t  (*mb_version_fn)(void);

static uintptr_t mb_call_new(void* f) { return ((mb_new_fn)f)(); }
static uintptr_t mb_call_new_str(void* f, void* s) { return ((mb_new_str_fn)f)((const char*)s); }
static int32_t mb_call_i32_2(void* f, uintptr_t h, int32_t a, int32_t b) { return ((mb_i32_2_fn)f)(h, a, b); }
static int32_t mb_call_i32_3(void* f, uintptr_t h, int32_t a, int32_t b, int32_t c) { return ((mb_i32_3_fn)f)(h, a, b, c); }
static int64_t mb_call_i64(void* f, uintptr_t h, int32_t n) { return ((mb_i64_fn)f)(h, n); }
static int32_t mb_call_valid(void* f, uintptr_t h) { return ((mb_valid_fn)f)(h); }
static void mb_call_free(void* f, uintptr_t h) { ((mb_free_fn)f)(h); }
static void* mb_call_str(void* f, uintptr_t h, void* s) { return ((mb_str_fn)f)(h, (const char*)s); }
static void* mb_call_concat(void* f, uintptr_t h, void* arr, size_t n, void* sep) {
	return ((mb_concat_fn)f)(h, (const char* const*)arr, n, (const char*)sep);
}
static size_t mb_call_count(void* f, uintptr_t h, void* s) { return ((mb_count_fn)f)(h, (const char*)s); }
static void mb_call_log(void* f, uintptr_t h, void* s) { ((mb_log_fn)f)(h, (const char*)s); }
static void mb_call_free_str(void* f, void* s) { ((mb_free_str_fn)f)((char*)s); }
static void* mb_call_map_str(void* f, void* s) { return ((mb_map_str_fn)f)((const char*)s); }
static int32_t mb_call_pair(void* f, int32_t a, int32_t b) { return ((mb_pair_fn)f)(a, b); }
static uint32_t mb_call_version(void* f) { return ((mb_version_fn)f)(); }
*/
import "C"

import (
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/handle"
)

// The helpers below call a resolved function pointer with a fixed C signature.
// Arguments and results are raw boundary values; marshaling happens in the clients.

func callNew(fn unsafe.Pointer) handle.Handle {
	return handle.Handle(C.mb_call_new(fn))
}

func callNewWithString(fn, s unsafe.Pointer) handle.Handle {
	return handle.Handle(C.mb_call_new_str(fn, s))
}

func callInt32x2(fn unsafe.Pointer, h handle.Handle, a, b int32) int32 {
	return int32(C.mb_call_i32_2(fn, C.uintptr_t(h), C.int32_t(a), C.int32_t(b)))
}

func callInt32x3(fn unsafe.Pointer, h handle.Handle, a, b, c int32) int32 {
	return int32(C.mb_call_i32_3(fn, C.uintptr_t(h), C.int32_t(a), C.int32_t(b), C.int32_t(c)))
}

func callInt64(fn unsafe.Pointer, h handle.Handle, n int32) int64 {
	return int64(C.mb_call_i64(fn, C.uintptr_t(h), C.int32_t(n)))
}

func callValid(fn unsafe.Pointer, h handle.Handle) bool {
	return C.mb_call_valid(fn, C.uintptr_t(h)) != 0
}

func callFree(fn unsafe.Pointer, h handle.Handle) {
	C.mb_call_free(fn, C.uintptr_t(h))
}

func callString(fn unsafe.Pointer, h handle.Handle, s unsafe.Pointer) unsafe.Pointer {
	return C.mb_call_str(fn, C.uintptr_t(h), s)
}

func callConcat(fn unsafe.Pointer, h handle.Handle, arr unsafe.Pointer, n int, sep unsafe.Pointer) unsafe.Pointer {
	return C.mb_call_concat(fn, C.uintptr_t(h), arr, C.size_t(n), sep)
}

func callCount(fn unsafe.Pointer, h handle.Handle, s unsafe.Pointer) uint {
	return uint(C.mb_call_count(fn, C.uintptr_t(h), s))
}

func callLog(fn unsafe.Pointer, h handle.Handle, s unsafe.Pointer) {
	C.mb_call_log(fn, C.uintptr_t(h), s)
}

func callFreeString(fn, s unsafe.Pointer) {
	C.mb_call_free_str(fn, s)
}

func callMapString(fn, s unsafe.Pointer) unsafe.Pointer {
	return C.mb_call_map_str(fn, s)
}

func callPair(fn unsafe.Pointer, a, b int32) int32 {
	return int32(C.mb_call_pair(fn, C.int32_t(a), C.int32_t(b)))
}

func callVersion(fn unsafe.Pointer) uint32 {
	return uint32(C.mb_call_version(fn))
}
