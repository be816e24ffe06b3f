// Package demo runs the showcase flow shared by the static and dynamic hosts:
// a calculator section, a string section, then a summary of every result.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/modbridge/internal/ports"
)

const rule = "================================================="

// Inputs used by every run.
var (
	concatParts     = []string{"Rust", "Mono", "Project"}
	concatSeparator = " - "
)

// Summary holds the results of one run.
type Summary struct {
	Add        int32
	Multiply   int32
	Factorial  int64
	MaxOfThree int32

	Reversed     string
	Concatenated string
	Upper        string
	WordCount    int
}

// Runner prints the demo to a writer.
type Runner struct {
	out    io.Writer
	events ports.LineLogger
}

// Option configures a Runner.
type Option func(*Runner)

// WithEvents sets a logger that receives one line when a run starts and one
// when it ends.
func WithEvents(l ports.LineLogger) Option {
	return func(r *Runner) {
		r.events = l
	}
}

// NewRunner creates a Runner writing to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run exercises calc and proc, prints their results, and returns them.
func (r *Runner) Run(title string, calc ports.Calculator, proc ports.StringProcessor) (Summary, error) {
	var s Summary

	if err := r.event("demo started: " + title); err != nil {
		return s, err
	}

	fmt.Fprintln(r.out, rule)
	fmt.Fprintf(r.out, "Multi-module demo - %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", rule)

	fmt.Fprintln(r.out, "--- Calculator ---")
	s.Add = calc.Add(10, 20)
	s.Multiply = calc.Multiply(5, 7)
	s.Factorial = calc.Factorial(5)
	s.MaxOfThree = calc.MaxOfThree(15, 8, 23)

	fmt.Fprintln(r.out, "\n--- String processing ---")
	var err error
	if s.Reversed, err = proc.Reverse("Hello World"); err != nil {
		return s, fmt.Errorf("reverse: %w", err)
	}
	if s.Concatenated, err = proc.Concat(concatParts, concatSeparator); err != nil {
		return s, fmt.Errorf("concat: %w", err)
	}
	if s.Upper, err = proc.ToUpper("rustlang"); err != nil {
		return s, fmt.Errorf("to_upper: %w", err)
	}
	if s.WordCount, err = proc.WordCount("This is a test string"); err != nil {
		return s, fmt.Errorf("word_count: %w", err)
	}

	s.Print(r.out)

	if err := r.event("demo finished: " + title); err != nil {
		return s, err
	}
	return s, nil
}

func (r *Runner) event(msg string) error {
	if r.events == nil {
		return nil
	}
	return r.events.Log(msg)
}

// Print writes the result summary.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nSummary\n%s\n", rule, rule)

	fmt.Fprintln(w, "\nCalculator:")
	fmt.Fprintf(w, "  10 + 20 = %d\n", s.Add)
	fmt.Fprintf(w, "  5 × 7 = %d\n", s.Multiply)
	fmt.Fprintf(w, "  5! = %d\n", s.Factorial)
	fmt.Fprintf(w, "  Max(15, 8, 23) = %d\n", s.MaxOfThree)

	fmt.Fprintln(w, "\nString processing:")
	fmt.Fprintf(w, "  Reverse %q = %q\n", "Hello World", s.Reversed)
	fmt.Fprintf(w, "  Concat [%s] = %q\n", quoteAll(concatParts), s.Concatenated)
	fmt.Fprintf(w, "  Upper %q = %q\n", "rustlang", s.Upper)
	fmt.Fprintf(w, "  Word count %q = %d\n", "This is a test string", s.WordCount)

	fmt.Fprintf(w, "\n%s\n", rule)
}

func quoteAll(parts []string) string {
	q := make([]string, len(parts))
	for i, p := range parts {
		q[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(q, ", ")
}
