// Package stringlib implements the StringProcessor module.
package stringlib

import (
	"strings"

	"github.com/bft-labs/modbridge/pkg/common"
)

// LogPrefix tags every line a StringProcessor logs.
const LogPrefix = "StringLib"

// StringProcessor performs text transformations and logs each one.
type StringProcessor struct {
	logger *common.Logger
}

// New returns a StringProcessor logging to standard output.
func New() *StringProcessor {
	return NewWithLogger(common.NewLogger(LogPrefix))
}

// NewWithLogger returns a StringProcessor logging through l.
func NewWithLogger(l *common.Logger) *StringProcessor {
	return &StringProcessor{logger: l}
}

// Reverse returns s with its runes in reverse order.
func (p *StringProcessor) Reverse(s string) string {
	p.logger.Logf("reverse: %q", s)
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	result := string(runes)
	p.logger.Logf("result: %q", result)
	return result
}

// Concat joins parts with separator between each pair.
func (p *StringProcessor) Concat(parts []string, separator string) string {
	p.logger.Logf("concat: %q, separator: %q", parts, separator)
	result := strings.Join(parts, separator)
	p.logger.Logf("result: %q", result)
	return result
}

// ToUpper returns s in upper case.
func (p *StringProcessor) ToUpper(s string) string {
	p.logger.Logf("to upper: %q", s)
	result := common.ToUpper(s)
	p.logger.Logf("result: %q", result)
	return result
}

// WordCount returns the number of whitespace-separated words in s.
func (p *StringProcessor) WordCount(s string) int {
	p.logger.Logf("word count: %q", s)
	count := len(strings.Fields(s))
	p.logger.Logf("result: %d words", count)
	return count
}
