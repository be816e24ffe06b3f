package bridge

import (
	"fmt"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/cabi"
)

// mustDecode borrows the caller's buffer and panics if it is not a valid string.
func mustDecode(op string, p unsafe.Pointer) string {
	s, err := cabi.DecodeString(p)
	if err != nil {
		panic(fmt.Errorf("modbridge/bridge: %s: %w", op, err))
	}
	return s
}

func mustDecodeArray(op string, arr unsafe.Pointer, count uint) []string {
	strs, err := cabi.DecodeStringArray(arr, int(count))
	if err != nil {
		panic(fmt.Errorf("modbridge/bridge: %s: %w", op, err))
	}
	return strs
}

// mustEncode allocates the buffer returned to the caller, who then owns it.
func mustEncode(op string, s string) unsafe.Pointer {
	p, err := cabi.EncodeString(s)
	if err != nil {
		panic(fmt.Errorf("modbridge/bridge: %s: %w", op, err))
	}
	return p
}
