package handle

import "errors"

// ErrInvalidHandle is returned when a handle is not present in a registry,
// either because it was never issued or because it has been destroyed.
var ErrInvalidHandle = errors.New("modbridge/handle: invalid handle")
