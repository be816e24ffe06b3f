// Package mathlib implements the Calculator module.
package mathlib

import "github.com/bft-labs/modbridge/pkg/common"

// LogPrefix tags every line a Calculator logs.
const LogPrefix = "MathLib"

// Calculator performs integer arithmetic and logs each computation.
// It has no mutable state of its own.
type Calculator struct {
	logger *common.Logger
}

// New returns a Calculator logging to standard output.
func New() *Calculator {
	return NewWithLogger(common.NewLogger(LogPrefix))
}

// NewWithLogger returns a Calculator logging through l.
func NewWithLogger(l *common.Logger) *Calculator {
	return &Calculator{logger: l}
}

// Add returns a + b with two's-complement wraparound.
func (c *Calculator) Add(a, b int32) int32 {
	c.logger.Logf("compute: %d + %d", a, b)
	result := a + b
	c.logger.Logf("result: %d", result)
	return result
}

// Multiply returns a * b with two's-complement wraparound.
func (c *Calculator) Multiply(a, b int32) int32 {
	c.logger.Logf("compute: %d × %d", a, b)
	result := a * b
	c.logger.Logf("result: %d", result)
	return result
}

// Factorial returns n!. Values of n below 2 yield 1; results past 20! wrap.
func (c *Calculator) Factorial(n int32) int64 {
	c.logger.Logf("compute: %d!", n)
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	c.logger.Logf("result: %d", result)
	return result
}

// MaxOfThree returns the largest of a, b and c.
func (c *Calculator) MaxOfThree(a, b, cc int32) int32 {
	c.logger.Logf("max of: %d, %d, %d", a, b, cc)
	result := common.Max(common.Max(a, b), cc)
	c.logger.Logf("result: %d", result)
	return result
}
