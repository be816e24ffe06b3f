// Package loader opens shared libraries at runtime and calls modbridge
// entry points through the C ABI.
//
// [Open] wraps dlopen and resolves symbols by name with dlsym. The typed
// clients ([Calculator], [StringProcessor], [Logger], [Helpers]) resolve every
// entry point they need up front, so a library missing a symbol is rejected
// at construction instead of failing halfway through a call sequence.
//
// Clients follow the boundary ownership rule: strings passed in are encoded
// into buffers the client owns and frees after the call; strings returned by
// the library are decoded and then released with the library's own
// *_free_string export, never with the host allocator.
//
// Any library exporting the symbol set works, whether it was built from
// cmd/libmodbridge or from another language. A library that exports
// modbridge_abi_version must report cabi.ABIVersion; libraries without the
// symbol are accepted as-is.
//
// The package requires cgo and a platform with dlopen.
package loader
