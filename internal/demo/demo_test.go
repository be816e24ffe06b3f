package demo

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/loader"
	"github.com/bft-labs/modbridge/pkg/mathlib"
	"github.com/bft-labs/modbridge/pkg/stringlib"
)

func staticModules(w io.Writer) (*mathlib.Calculator, StaticStrings) {
	calc := mathlib.NewWithLogger(common.NewLoggerTo(w, mathlib.LogPrefix))
	proc := stringlib.NewWithLogger(common.NewLoggerTo(w, stringlib.LogPrefix))
	return calc, StaticStrings{P: proc}
}

func TestRunner_Static(t *testing.T) {
	var out bytes.Buffer
	calc, proc := staticModules(io.Discard)

	got, err := NewRunner(&out).Run("static linking", calc, proc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := Summary{
		Add:          30,
		Multiply:     35,
		Factorial:    120,
		MaxOfThree:   23,
		Reversed:     "dlroW olleH",
		Concatenated: "Rust - Mono - Project",
		Upper:        "RUSTLANG",
		WordCount:    5,
	}
	if got != want {
		t.Errorf("Summary = %+v, want %+v", got, want)
	}

	for _, line := range []string{
		"Multi-module demo - static linking",
		"--- Calculator ---",
		"--- String processing ---",
		"  10 + 20 = 30",
		"  5! = 120",
		`  Concat ["Rust", "Mono", "Project"] = "Rust - Mono - Project"`,
		`  Word count "This is a test string" = 5`,
	} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing %q", line)
		}
	}
}

func TestRunner_ModuleLogsInterleave(t *testing.T) {
	var out bytes.Buffer
	calc, proc := staticModules(&out)

	if _, err := NewRunner(&out).Run("static linking", calc, proc); err != nil {
		t.Fatalf("Run: %v", err)
	}

	s := out.String()
	calcHeader := strings.Index(s, "--- Calculator ---")
	mathLine := strings.Index(s, "[MathLib]")
	stringHeader := strings.Index(s, "--- String processing ---")
	stringLine := strings.Index(s, "[StringLib]")
	if calcHeader < 0 || mathLine < calcHeader || stringHeader < mathLine || stringLine < stringHeader {
		t.Errorf("module log lines out of order:\n%s", s)
	}
}

type recordingLines struct {
	lines []string
}

func (r *recordingLines) Log(message string) error {
	r.lines = append(r.lines, message)
	return nil
}

func TestRunner_Events(t *testing.T) {
	calc, proc := staticModules(io.Discard)
	events := &recordingLines{}

	if _, err := NewRunner(io.Discard, WithEvents(events)).Run("static linking", calc, proc); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"demo started: static linking", "demo finished: static linking"}
	if len(events.lines) != len(want) {
		t.Fatalf("events = %q, want %q", events.lines, want)
	}
	for i := range want {
		if events.lines[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, events.lines[i], want[i])
		}
	}
}

var errBoundary = errors.New("boundary failure")

type failingStrings struct {
	StaticStrings
}

func (failingStrings) Concat([]string, string) (string, error) { return "", errBoundary }

func TestRunner_PropagatesStringErrors(t *testing.T) {
	calc, proc := staticModules(io.Discard)

	got, err := NewRunner(io.Discard).Run("broken", calc, failingStrings{proc})
	if !errors.Is(err, errBoundary) {
		t.Fatalf("Run error = %v, want %v", err, errBoundary)
	}
	if got.Reversed != "dlroW olleH" {
		t.Errorf("partial summary lost earlier results: %+v", got)
	}
	if got.Upper != "" {
		t.Errorf("ran past the failing step: %+v", got)
	}
}

func TestLoadModules_MissingLibrary(t *testing.T) {
	cache := loader.NewCache(nil)
	defer cache.Close()

	missing := filepath.Join(t.TempDir(), "libmodbridge.so")
	_, err := LoadModules(cache, Paths{Math: missing, String: missing, Common: missing}, "Dyn")
	if !errors.Is(err, loader.ErrOpenFailed) {
		t.Errorf("LoadModules error = %v, want ErrOpenFailed", err)
	}
	if cache.Len() != 0 {
		t.Errorf("cache holds %d libraries", cache.Len())
	}
}
