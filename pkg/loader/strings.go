package loader

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/cabi"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
)

// StringProcessor drives a string processor living inside a loaded library.
type StringProcessor struct {
	h      handle.Handle
	logger log.Logger

	reverse, concat, toUpper, wordCount unsafe.Pointer
	valid, free, freeString             unsafe.Pointer

	closeOnce sync.Once
}

// NewStringProcessor resolves the stringlib entry points in tab and creates a processor.
func NewStringProcessor(tab SymbolTable, opts ...Option) (*StringProcessor, error) {
	o := buildOptions(opts)
	r, err := prepare(tab, "stringlib", o)
	if err != nil {
		return nil, err
	}

	newFn := r.required(SymProcessorNew)
	p := &StringProcessor{
		logger:     o.logger,
		reverse:    r.required(SymProcessorReverse),
		concat:     r.required(SymProcessorConcat),
		toUpper:    r.required(SymProcessorToUpper),
		wordCount:  r.required(SymProcessorWordCount),
		free:       r.required(SymProcessorFree),
		freeString: r.required(SymStringFree),
		valid:      r.optional(SymProcessorValid),
	}
	if r.err != nil {
		return nil, fmt.Errorf("stringlib: %w", r.err)
	}

	p.h = callNew(newFn)
	o.logger.Debug("string processor created", log.Any("handle", p.h))
	return p, nil
}

// Handle returns the library-side handle.
func (p *StringProcessor) Handle() handle.Handle {
	return p.h
}

func (p *StringProcessor) Reverse(s string) (string, error) {
	return p.mapString("reverse", p.reverse, s)
}

func (p *StringProcessor) ToUpper(s string) (string, error) {
	return p.mapString("to_upper", p.toUpper, s)
}

func (p *StringProcessor) Concat(parts []string, separator string) (string, error) {
	arr, err := cabi.EncodeStringArray(parts)
	if err != nil {
		return "", fmt.Errorf("concat: %w", err)
	}
	defer arr.Free()

	sep, err := cabi.EncodeString(separator)
	if err != nil {
		return "", fmt.Errorf("concat: separator: %w", err)
	}
	defer cabi.FreeBuffer(sep)

	out := callConcat(p.concat, p.h, arr.Pointer(), arr.Len(), sep)
	return takeString("concat", p.freeString, out)
}

func (p *StringProcessor) WordCount(s string) (int, error) {
	in, err := cabi.EncodeString(s)
	if err != nil {
		return 0, fmt.Errorf("word_count: %w", err)
	}
	defer cabi.FreeBuffer(in)

	return int(callCount(p.wordCount, p.h, in)), nil
}

// Valid asks the library whether the handle is live. Libraries without the
// probe report true.
func (p *StringProcessor) Valid() bool {
	if p.valid == nil {
		return true
	}
	return callValid(p.valid, p.h)
}

// Close frees the library-side object. Later calls return empty results.
func (p *StringProcessor) Close() error {
	p.closeOnce.Do(func() {
		callFree(p.free, p.h)
		p.logger.Debug("string processor freed", log.Any("handle", p.h))
	})
	return nil
}

func (p *StringProcessor) mapString(op string, fn unsafe.Pointer, s string) (string, error) {
	in, err := cabi.EncodeString(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer cabi.FreeBuffer(in)

	return takeString(op, p.freeString, callString(fn, p.h, in))
}

// takeString decodes a library-owned buffer and hands it back to the library.
func takeString(op string, free, out unsafe.Pointer) (string, error) {
	if out == nil {
		return "", fmt.Errorf("%s: %w", op, ErrNullResult)
	}
	defer callFreeString(free, out)

	s, err := cabi.DecodeString(out)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}
