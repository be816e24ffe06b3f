package ports

// Calculator is the arithmetic module.
type Calculator interface {
	Add(a, b int32) int32
	Multiply(a, b int32) int32
	Factorial(n int32) int64
	MaxOfThree(a, b, c int32) int32
}

// StringProcessor is the text module.
type StringProcessor interface {
	Reverse(s string) (string, error)
	Concat(parts []string, separator string) (string, error)
	ToUpper(s string) (string, error)
	WordCount(s string) (int, error)
}

// LineLogger writes one prefixed line per call.
type LineLogger interface {
	Log(message string) error
}
