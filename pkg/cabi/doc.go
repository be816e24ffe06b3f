// Package cabi converts Go values to and from the raw encodings used at a
// C ABI boundary: NUL-terminated UTF-8 strings and arrays of string pointers.
//
// All buffers produced here live on the C heap (malloc) so they may be handed
// to foreign code and stored there. Values are exchanged as unsafe.Pointer
// because cgo types cannot be shared between packages.
//
// # Ownership
//
// One rule applies to every buffer that crosses the boundary:
//
//   - A buffer returned across the boundary is owned by the receiver until it
//     is passed to the matching free function (FreeBuffer, or the library's
//     *_free_string export).
//   - A buffer passed into the boundary stays owned by the caller. The callee
//     only borrows it for the duration of the call and never frees it.
//
// FreeBuffer ignores NULL. Freeing the same live buffer twice, or reading a
// buffer after it was freed, is undefined behavior; the boundary cannot detect
// either and callers must not do it.
//
// # Version
//
// [ABIVersion] identifies the symbol set and calling conventions. Libraries
// export it as modbridge_abi_version so hosts can refuse incompatible builds.
package cabi
