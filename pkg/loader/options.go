package loader

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/log"
)

// Option configures a client.
type Option func(*options)

type options struct {
	logger   log.Logger
	checkABI bool
}

// WithLogger sets the logger for symbol resolution and lifecycle events.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithoutABICheck skips the modbridge_abi_version check on construction.
func WithoutABICheck() Option {
	return func(o *options) {
		o.checkABI = false
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   log.NewNoopLogger(),
		checkABI: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolver looks up a batch of symbols and keeps the first failure.
type resolver struct {
	tab SymbolTable
	err error
}

func (r *resolver) required(name string) unsafe.Pointer {
	if r.err != nil {
		return nil
	}
	p, err := r.tab.Symbol(name)
	if err != nil {
		r.err = err
		return nil
	}
	return p
}

// optional returns nil when the symbol is absent; other errors still stick.
func (r *resolver) optional(name string) unsafe.Pointer {
	if r.err != nil {
		return nil
	}
	p, err := r.tab.Symbol(name)
	if errors.Is(err, ErrSymbolNotFound) {
		return nil
	}
	if err != nil {
		r.err = err
		return nil
	}
	return p
}

func prepare(tab SymbolTable, module string, o options) (*resolver, error) {
	if o.checkABI {
		if err := CheckABI(tab); err != nil {
			return nil, fmt.Errorf("%s: %w", module, err)
		}
	}
	return &resolver{tab: tab}, nil
}
