package handle

import (
	"strconv"
	"sync/atomic"
)

// Handle is an opaque identifier for an object stored in a Registry.
// The zero value is never issued and always means "no object".
type Handle uintptr

// Invalid is the reserved handle value that no registry ever issues.
const Invalid Handle = 0

// IsValid reports whether h could have been issued by a Sequence.
// It does not check whether the handle is still live.
func (h Handle) IsValid() bool {
	return h != Invalid
}

// String returns the decimal form of the handle.
func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Sequence issues monotonically increasing handles.
// Numbers are never recycled, so a stale handle can never alias a newer object.
type Sequence struct {
	last atomic.Uintptr
}

// NewSequence returns a sequence whose first handle is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next unused handle. Safe for concurrent use.
func (s *Sequence) Next() Handle {
	return Handle(s.last.Add(1))
}

// Last returns the most recently issued handle, or Invalid if none was issued.
func (s *Sequence) Last() Handle {
	return Handle(s.last.Load())
}
