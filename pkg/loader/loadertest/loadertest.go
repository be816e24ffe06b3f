// Package loadertest provides an in-process symbol table that implements the
// modbridge C ABI, so loader clients can be tested without building a shared
// library.
//
// The fake keeps process-wide state. Handles are never reused, so tests may
// run in parallel, but SetABIVersion affects every Library.
package loadertest

/*
#cgo LDFLAGS: -lpthread
#include <stdlib.h>
#include "fake.h"
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/loader"
)

// Library resolves symbols from the fake. Names passed to Hide are reported
// as missing.
type Library struct {
	mu     sync.Mutex
	hidden map[string]bool
}

// New returns a Library exporting every symbol.
func New() *Library {
	return &Library{hidden: make(map[string]bool)}
}

// Hide makes the given symbols unresolvable.
func (l *Library) Hide(names ...string) *Library {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range names {
		l.hidden[n] = true
	}
	return l
}

// Symbol implements loader.SymbolTable.
func (l *Library) Symbol(name string) (unsafe.Pointer, error) {
	l.mu.Lock()
	hidden := l.hidden[name]
	l.mu.Unlock()
	if hidden {
		return nil, fmt.Errorf("%w: %s", loader.ErrSymbolNotFound, name)
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p := C.fake_lookup(cname)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", loader.ErrSymbolNotFound, name)
	}
	return p, nil
}

// SetABIVersion sets the value returned by modbridge_abi_version.
// Zero removes the symbol.
func SetABIVersion(v uint32) {
	C.fake_set_abi_version(C.uint32_t(v))
}

// OutstandingStrings returns the number of strings handed out by the fake
// and not yet released through a *_free_string entry point.
func OutstandingStrings() int {
	return int(C.fake_outstanding_strings())
}

// LastLine returns the most recent line written by a fake logger, formatted
// as "[prefix] message".
func LastLine() string {
	var buf [1024]C.char
	C.fake_last_line(&buf[0], C.size_t(len(buf)))
	return C.GoString(&buf[0])
}
