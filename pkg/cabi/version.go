package cabi

// ABIVersion is the version of the exported symbol set.
// Bump it whenever an entry point changes signature or ownership semantics.
const ABIVersion uint32 = 1
