// Command libmodbridge builds the shared library that exposes the math,
// string and common modules through a C ABI:
//
//	go build -buildmode=c-shared -o lib/libmodbridge.so ./cmd/libmodbridge
//
// The build also writes libmodbridge.h with the exported prototypes.
//
// Objects are referred to by opaque uintptr_t handles; 0 is never issued.
// Strings cross the boundary as NUL-terminated UTF-8. Any char* returned by
// the library belongs to the caller and must be released with the matching
// *_free_string function; strings passed in remain owned by the caller.
//
// Diagnostics go to stderr. Set MODBRIDGE_LOG_LEVEL (debug, info, warn,
// error) to change verbosity; the default is warn.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/modbridge/internal/bridge"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
)

// rt is built once when the library is loaded.
var rt = newRuntime()

func newRuntime() *bridge.Runtime {
	level := zerolog.WarnLevel
	if name := os.Getenv("MODBRIDGE_LOG_LEVEL"); name != "" {
		if lvl, err := log.ParseLevel(name); err == nil {
			level = lvl
		}
	}
	return bridge.NewRuntime(
		bridge.WithLogger(log.NewZerologAdapter(os.Stderr, level)),
		bridge.WithOutput(os.Stdout),
	)
}

func toHandle(h C.uintptr_t) handle.Handle {
	return handle.Handle(h)
}

func fromHandle(h handle.Handle) C.uintptr_t {
	return C.uintptr_t(h)
}

func fromBool(b bool) C.int32_t {
	if b {
		return 1
	}
	return 0
}

//export modbridge_abi_version
func modbridge_abi_version() C.uint32_t {
	return C.uint32_t(rt.ABIVersion())
}

func main() {}
