package demo

import (
	"errors"
	"fmt"

	"github.com/bft-labs/modbridge/internal/ports"
	"github.com/bft-labs/modbridge/pkg/loader"
)

// Paths names the library each module is loaded from. Entries may repeat.
type Paths struct {
	Math   string
	String string
	Common string
}

// Modules are the clients of one dynamic run.
type Modules struct {
	Calc    *loader.Calculator
	Strings *loader.StringProcessor
	Logger  *loader.Logger
}

// LoadModules opens the libraries in paths through cache and creates one
// client per module. The common logger is tagged with prefix.
// On failure every client created so far is closed.
func LoadModules(cache *loader.Cache, paths Paths, prefix string, opts ...loader.Option) (*Modules, error) {
	m := &Modules{}

	mathLib, err := cache.Open(paths.Math)
	if err != nil {
		return nil, fmt.Errorf("load mathlib: %w", err)
	}
	if m.Calc, err = loader.NewCalculator(mathLib, opts...); err != nil {
		return nil, err
	}

	stringLib, err := cache.Open(paths.String)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("load stringlib: %w", err)
	}
	if m.Strings, err = loader.NewStringProcessor(stringLib, opts...); err != nil {
		m.Close()
		return nil, err
	}

	if paths.Common == "" {
		return m, nil
	}
	commonLib, err := cache.Open(paths.Common)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("load common: %w", err)
	}
	if m.Logger, err = loader.NewLogger(commonLib, prefix, opts...); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Close frees every library-side object. The libraries stay open.
func (m *Modules) Close() error {
	var errs []error
	if m.Calc != nil {
		errs = append(errs, m.Calc.Close())
	}
	if m.Strings != nil {
		errs = append(errs, m.Strings.Close())
	}
	if m.Logger != nil {
		errs = append(errs, m.Logger.Close())
	}
	return errors.Join(errs...)
}

var (
	_ ports.Calculator      = (*loader.Calculator)(nil)
	_ ports.StringProcessor = (*loader.StringProcessor)(nil)
	_ ports.LineLogger      = (*loader.Logger)(nil)
)
