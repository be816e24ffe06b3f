package bridge

import (
	"io"

	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
	"github.com/bft-labs/modbridge/pkg/mathlib"
)

const calculatorKind = "calculator"

// MathLib exposes Calculator objects through handles.
type MathLib struct {
	calculators *handle.Registry[mathlib.Calculator]
	output      io.Writer
	logger      log.Logger
}

func newMathLib(seq *handle.Sequence, o options) *MathLib {
	return &MathLib{
		calculators: handle.New[mathlib.Calculator](seq),
		output:      o.output,
		logger:      o.logger,
	}
}

// CalculatorNew creates a Calculator and returns its handle.
func (m *MathLib) CalculatorNew() handle.Handle {
	calc := mathlib.NewWithLogger(common.NewLoggerTo(m.output, mathlib.LogPrefix))
	h := m.calculators.Create(calc)
	m.logger.Debug("object created", log.String("type", calculatorKind), log.Uint64("handle", uint64(h)))
	return h
}

// CalculatorAdd returns a + b, or 0 if h is unknown.
func (m *MathLib) CalculatorAdd(h handle.Handle, a, b int32) int32 {
	v, ok := handle.With(m.calculators, h, func(c *mathlib.Calculator) int32 {
		return c.Add(a, b)
	})
	if !ok {
		logMiss(m.logger, calculatorKind, "add", h)
	}
	return v
}

// CalculatorMultiply returns a * b, or 0 if h is unknown.
func (m *MathLib) CalculatorMultiply(h handle.Handle, a, b int32) int32 {
	v, ok := handle.With(m.calculators, h, func(c *mathlib.Calculator) int32 {
		return c.Multiply(a, b)
	})
	if !ok {
		logMiss(m.logger, calculatorKind, "multiply", h)
	}
	return v
}

// CalculatorFactorial returns n!, or 0 if h is unknown.
func (m *MathLib) CalculatorFactorial(h handle.Handle, n int32) int64 {
	v, ok := handle.With(m.calculators, h, func(c *mathlib.Calculator) int64 {
		return c.Factorial(n)
	})
	if !ok {
		logMiss(m.logger, calculatorKind, "factorial", h)
	}
	return v
}

// CalculatorMaxOfThree returns the largest argument, or 0 if h is unknown.
func (m *MathLib) CalculatorMaxOfThree(h handle.Handle, a, b, c int32) int32 {
	v, ok := handle.With(m.calculators, h, func(calc *mathlib.Calculator) int32 {
		return calc.MaxOfThree(a, b, c)
	})
	if !ok {
		logMiss(m.logger, calculatorKind, "max_of_three", h)
	}
	return v
}

// CalculatorValid reports whether h names a live Calculator.
func (m *MathLib) CalculatorValid(h handle.Handle) bool {
	return m.calculators.Contains(h)
}

// CalculatorFree destroys the Calculator behind h. Unknown handles are ignored.
func (m *MathLib) CalculatorFree(h handle.Handle) {
	if m.calculators.Destroy(h) {
		m.logger.Debug("object destroyed", log.String("type", calculatorKind), log.Uint64("handle", uint64(h)))
	}
}

// Live returns the number of live Calculators.
func (m *MathLib) Live() int {
	return m.calculators.Len()
}
