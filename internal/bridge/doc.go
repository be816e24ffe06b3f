// Package bridge implements the Go side of the exported C entry points.
//
// Every exported symbol in cmd/libmodbridge is a one-line conversion from C
// types into a method of [Runtime]. Keeping the logic here lets it be tested
// without a C compiler on the test side and keeps the export file free of
// decisions.
//
// # Failure policy
//
// A handle that is not present in its registry yields the neutral value of the
// result type: 0 for numbers, a newly allocated empty string for text, and no
// effect for void operations. Each miss is logged as a warning, and the
// *Valid methods let callers check a handle explicitly.
//
// Inbound strings that are NULL or not valid UTF-8 are not tolerated: the
// entry point panics with an error wrapping cabi.ErrNullPointer or
// cabi.ErrInvalidEncoding. Raised through an exported C function this aborts
// the host process.
package bridge
