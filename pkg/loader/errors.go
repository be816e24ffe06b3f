package loader

import "errors"

var (
	// ErrOpenFailed is returned when the dynamic linker cannot load a library.
	ErrOpenFailed = errors.New("modbridge/loader: open failed")

	// ErrSymbolNotFound is returned when a library does not export a symbol.
	ErrSymbolNotFound = errors.New("modbridge/loader: symbol not found")

	// ErrLibraryClosed is returned when a closed library is used.
	ErrLibraryClosed = errors.New("modbridge/loader: library closed")

	// ErrABIMismatch is returned when a library reports an unsupported ABI version.
	ErrABIMismatch = errors.New("modbridge/loader: ABI version mismatch")

	// ErrNullResult is returned when an entry point that must return a string returns NULL.
	ErrNullResult = errors.New("modbridge/loader: entry point returned NULL")
)
