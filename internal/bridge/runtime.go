package bridge

import (
	"io"
	"os"

	"github.com/bft-labs/modbridge/pkg/cabi"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
)

// Runtime owns the handle registries of one process.
// Construct it once, at library load, and route every entry point through it.
type Runtime struct {
	Math    *MathLib
	Strings *StringLib
	Common  *Common

	seq *handle.Sequence
}

// Option configures a Runtime.
type Option func(*options)

type options struct {
	logger log.Logger
	output io.Writer
}

// WithLogger sets the logger for boundary diagnostics such as lookup misses.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where domain objects write their prefixed log lines.
// Defaults to standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// NewRuntime creates a Runtime whose registries share one handle sequence,
// so handles are unique across all object types.
func NewRuntime(opts ...Option) *Runtime {
	o := options{
		logger: log.NewNoopLogger(),
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	seq := handle.NewSequence()
	return &Runtime{
		Math:    newMathLib(seq, o),
		Strings: newStringLib(seq, o),
		Common:  newCommon(seq, o),
		seq:     seq,
	}
}

// ABIVersion returns the version of the exported symbol set.
func (r *Runtime) ABIVersion() uint32 {
	return cabi.ABIVersion
}

// LastHandle returns the most recently issued handle of any type.
func (r *Runtime) LastHandle() handle.Handle {
	return r.seq.Last()
}

func logMiss(l log.Logger, kind, op string, h handle.Handle) {
	l.Warn("handle lookup miss, returning default",
		log.String("type", kind),
		log.String("op", op),
		log.Uint64("handle", uint64(h)))
}
