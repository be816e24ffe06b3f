package loader

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
)

// Calculator drives a calculator object living inside a loaded library.
type Calculator struct {
	h      handle.Handle
	logger log.Logger

	add, multiply, factorial, maxOfThree unsafe.Pointer
	valid, free                          unsafe.Pointer

	closeOnce sync.Once
}

// NewCalculator resolves the mathlib entry points in tab and creates a calculator.
func NewCalculator(tab SymbolTable, opts ...Option) (*Calculator, error) {
	o := buildOptions(opts)
	r, err := prepare(tab, "mathlib", o)
	if err != nil {
		return nil, err
	}

	newFn := r.required(SymCalculatorNew)
	c := &Calculator{
		logger:     o.logger,
		add:        r.required(SymCalculatorAdd),
		multiply:   r.required(SymCalculatorMultiply),
		factorial:  r.required(SymCalculatorFactorial),
		maxOfThree: r.required(SymCalculatorMaxOfThree),
		free:       r.required(SymCalculatorFree),
		valid:      r.optional(SymCalculatorValid),
	}
	if r.err != nil {
		return nil, fmt.Errorf("mathlib: %w", r.err)
	}

	c.h = callNew(newFn)
	o.logger.Debug("calculator created", log.Any("handle", c.h))
	return c, nil
}

// Handle returns the library-side handle.
func (c *Calculator) Handle() handle.Handle {
	return c.h
}

func (c *Calculator) Add(a, b int32) int32 {
	return callInt32x2(c.add, c.h, a, b)
}

func (c *Calculator) Multiply(a, b int32) int32 {
	return callInt32x2(c.multiply, c.h, a, b)
}

func (c *Calculator) Factorial(n int32) int64 {
	return callInt64(c.factorial, c.h, n)
}

func (c *Calculator) MaxOfThree(a, b, c3 int32) int32 {
	return callInt32x3(c.maxOfThree, c.h, a, b, c3)
}

// Valid asks the library whether the handle is live. Libraries without the
// probe report true.
func (c *Calculator) Valid() bool {
	if c.valid == nil {
		return true
	}
	return callValid(c.valid, c.h)
}

// Close frees the library-side object. Later calls return neutral defaults.
func (c *Calculator) Close() error {
	c.closeOnce.Do(func() {
		callFree(c.free, c.h)
		c.logger.Debug("calculator freed", log.Any("handle", c.h))
	})
	return nil
}
