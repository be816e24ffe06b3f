package loader

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/cabi"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
)

// Logger drives a prefixed logger living inside a loaded library.
type Logger struct {
	h      handle.Handle
	logger log.Logger

	write, valid, free unsafe.Pointer

	closeOnce sync.Once
}

// NewLogger resolves the common logger entry points in tab and creates a
// logger tagged with prefix.
func NewLogger(tab SymbolTable, prefix string, opts ...Option) (*Logger, error) {
	o := buildOptions(opts)
	r, err := prepare(tab, "common", o)
	if err != nil {
		return nil, err
	}

	newFn := r.required(SymLoggerNew)
	l := &Logger{
		logger: o.logger,
		write:  r.required(SymLoggerLog),
		free:   r.required(SymLoggerFree),
		valid:  r.optional(SymLoggerValid),
	}
	if r.err != nil {
		return nil, fmt.Errorf("common: %w", r.err)
	}

	cprefix, err := cabi.EncodeString(prefix)
	if err != nil {
		return nil, fmt.Errorf("common: prefix: %w", err)
	}
	defer cabi.FreeBuffer(cprefix)

	l.h = callNewWithString(newFn, cprefix)
	o.logger.Debug("logger created", log.Any("handle", l.h), log.String("prefix", prefix))
	return l, nil
}

// Handle returns the library-side handle.
func (l *Logger) Handle() handle.Handle {
	return l.h
}

// Log writes message through the library's logger.
func (l *Logger) Log(message string) error {
	msg, err := cabi.EncodeString(message)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer cabi.FreeBuffer(msg)

	callLog(l.write, l.h, msg)
	return nil
}

// Valid asks the library whether the handle is live. Libraries without the
// probe report true.
func (l *Logger) Valid() bool {
	if l.valid == nil {
		return true
	}
	return callValid(l.valid, l.h)
}

// Close frees the library-side logger.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		callFree(l.free, l.h)
		l.logger.Debug("logger freed", log.Any("handle", l.h))
	})
	return nil
}

// Helpers exposes the stateless common entry points.
type Helpers struct {
	toUpper, max, min, freeString unsafe.Pointer
}

// NewHelpers resolves the stateless common entry points in tab.
func NewHelpers(tab SymbolTable, opts ...Option) (*Helpers, error) {
	o := buildOptions(opts)
	r, err := prepare(tab, "common", o)
	if err != nil {
		return nil, err
	}

	h := &Helpers{
		toUpper:    r.required(SymToUpper),
		max:        r.required(SymMax),
		min:        r.required(SymMin),
		freeString: r.required(SymCommonFree),
	}
	if r.err != nil {
		return nil, fmt.Errorf("common: %w", r.err)
	}
	return h, nil
}

func (h *Helpers) ToUpper(s string) (string, error) {
	in, err := cabi.EncodeString(s)
	if err != nil {
		return "", fmt.Errorf("to_upper: %w", err)
	}
	defer cabi.FreeBuffer(in)

	return takeString("to_upper", h.freeString, callMapString(h.toUpper, in))
}

func (h *Helpers) Max(a, b int32) int32 {
	return callPair(h.max, a, b)
}

func (h *Helpers) Min(a, b int32) int32 {
	return callPair(h.min, a, b)
}
