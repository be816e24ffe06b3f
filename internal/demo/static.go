package demo

import (
	"github.com/bft-labs/modbridge/internal/ports"
	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/mathlib"
	"github.com/bft-labs/modbridge/pkg/stringlib"
)

// StaticStrings adapts a linked stringlib.StringProcessor to ports.StringProcessor.
// In-process calls cannot fail, so every error is nil.
type StaticStrings struct {
	P *stringlib.StringProcessor
}

func (s StaticStrings) Reverse(in string) (string, error) { return s.P.Reverse(in), nil }

func (s StaticStrings) Concat(parts []string, sep string) (string, error) {
	return s.P.Concat(parts, sep), nil
}

func (s StaticStrings) ToUpper(in string) (string, error) { return s.P.ToUpper(in), nil }

func (s StaticStrings) WordCount(in string) (int, error) { return s.P.WordCount(in), nil }

// StaticLogger adapts a common.Logger to ports.LineLogger.
type StaticLogger struct {
	L *common.Logger
}

func (s StaticLogger) Log(message string) error {
	s.L.Log(message)
	return nil
}

var (
	_ ports.Calculator      = (*mathlib.Calculator)(nil)
	_ ports.StringProcessor = StaticStrings{}
	_ ports.LineLogger      = StaticLogger{}
)
