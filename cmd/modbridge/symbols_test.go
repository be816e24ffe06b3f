//go:build cgo

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bft-labs/modbridge/pkg/loader"
	"github.com/bft-labs/modbridge/pkg/loader/loadertest"
)

func TestPrintSymbols_List(t *testing.T) {
	var buf bytes.Buffer
	if missing := printSymbols(&buf, nil); missing != 0 {
		t.Errorf("missing = %d without a table, want 0", missing)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 24 {
		t.Errorf("printed %d rows, want 24", len(lines))
	}
	if !strings.Contains(buf.String(), loader.SymCalculatorNew) {
		t.Errorf("output missing %s", loader.SymCalculatorNew)
	}
}

func TestPrintSymbols_Check(t *testing.T) {
	var buf bytes.Buffer
	tab := loadertest.New().Hide(loader.SymCalculatorAdd, loader.SymProcessorValid)

	if missing := printSymbols(&buf, tab); missing != 1 {
		t.Errorf("missing = %d, want 1 (optional symbols do not count)", missing)
	}

	var addRow string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, loader.SymCalculatorAdd) {
			addRow = line
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(addRow), "missing") {
		t.Errorf("row for %s = %q, want status missing", loader.SymCalculatorAdd, addRow)
	}
}
