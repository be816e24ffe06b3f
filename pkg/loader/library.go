package loader

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>

static void* mb_dlopen(const char* path) {
	return dlopen(path, RTLD_NOW | RTLD_LOCAL);
}

static void* mb_dlsym(void* lib, const char* name) {
	dlerror();
	return dlsym(lib, name);
}

static int mb_dlclose(void* lib) {
	return dlclose(lib);
}

static const char* mb_dlerror(void) {
	return dlerror();
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// SymbolTable resolves exported symbols by name.
// *Library implements it; tests substitute in-process tables.
type SymbolTable interface {
	Symbol(name string) (unsafe.Pointer, error)
}

// Library is a shared library opened with dlopen.
// It is safe for concurrent use.
type Library struct {
	path string

	mu      sync.Mutex
	handle  unsafe.Pointer
	symbols map[string]unsafe.Pointer
}

// Open loads the shared library at path with all symbols bound immediately.
func Open(path string) (*Library, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.mb_dlopen(cpath)
	if h == nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrOpenFailed, path, dlerror())
	}
	return &Library{
		path:    path,
		handle:  h,
		symbols: make(map[string]unsafe.Pointer),
	}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Symbol returns the address of the exported symbol name.
// Results are cached for the lifetime of the library.
func (l *Library) Symbol(name string) (unsafe.Pointer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == nil {
		return nil, ErrLibraryClosed
	}
	if p, ok := l.symbols[name]; ok {
		return p, nil
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p := C.mb_dlsym(l.handle, cname)
	if p == nil {
		msg := dlerror()
		if msg == "" {
			msg = "no such symbol"
		}
		return nil, fmt.Errorf("%w: %s in %s: %s", ErrSymbolNotFound, name, l.path, msg)
	}
	l.symbols[name] = p
	return p, nil
}

// Close releases the library. Function pointers and clients obtained from it
// must not be used afterwards. Calling Close more than once is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == nil {
		return nil
	}
	rc := C.mb_dlclose(l.handle)
	l.handle = nil
	l.symbols = nil
	if rc != 0 {
		return fmt.Errorf("modbridge/loader: close %s: %s", l.path, dlerror())
	}
	return nil
}

func dlerror() string {
	msg := C.mb_dlerror()
	if msg == nil {
		return ""
	}
	return C.GoString(msg)
}
