package cabi

import "errors"

var (
	// ErrInvalidEncoding is returned when a boundary string is not valid UTF-8.
	ErrInvalidEncoding = errors.New("modbridge/cabi: invalid string encoding")

	// ErrNullPointer is returned when a required buffer pointer is NULL.
	ErrNullPointer = errors.New("modbridge/cabi: null pointer")

	// ErrEmbeddedNUL is returned when a Go string cannot be represented as a
	// C string because it contains a NUL byte.
	ErrEmbeddedNUL = errors.New("modbridge/cabi: string contains NUL byte")
)
