package bridge

import (
	"io"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/cabi"
	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
	"github.com/bft-labs/modbridge/pkg/stringlib"
)

const processorKind = "string_processor"

// StringLib exposes StringProcessor objects through handles.
// Text results are returned as C buffers owned by the caller, who must
// release them with FreeString.
type StringLib struct {
	processors *handle.Registry[stringlib.StringProcessor]
	output     io.Writer
	logger     log.Logger
}

func newStringLib(seq *handle.Sequence, o options) *StringLib {
	return &StringLib{
		processors: handle.New[stringlib.StringProcessor](seq),
		output:     o.output,
		logger:     o.logger,
	}
}

// ProcessorNew creates a StringProcessor and returns its handle.
func (s *StringLib) ProcessorNew() handle.Handle {
	proc := stringlib.NewWithLogger(common.NewLoggerTo(s.output, stringlib.LogPrefix))
	h := s.processors.Create(proc)
	s.logger.Debug("object created", log.String("type", processorKind), log.Uint64("handle", uint64(h)))
	return h
}

// ProcessorReverse reverses the string at in.
func (s *StringLib) ProcessorReverse(h handle.Handle, in unsafe.Pointer) unsafe.Pointer {
	text := mustDecode("reverse", in)
	out, ok := handle.With(s.processors, h, func(p *stringlib.StringProcessor) string {
		return p.Reverse(text)
	})
	if !ok {
		logMiss(s.logger, processorKind, "reverse", h)
	}
	return mustEncode("reverse", out)
}

// ProcessorConcat joins count strings starting at arr with the separator at sep.
func (s *StringLib) ProcessorConcat(h handle.Handle, arr unsafe.Pointer, count uint, sep unsafe.Pointer) unsafe.Pointer {
	separator := mustDecode("concat", sep)
	parts := mustDecodeArray("concat", arr, count)
	out, ok := handle.With(s.processors, h, func(p *stringlib.StringProcessor) string {
		return p.Concat(parts, separator)
	})
	if !ok {
		logMiss(s.logger, processorKind, "concat", h)
	}
	return mustEncode("concat", out)
}

// ProcessorToUpper upper-cases the string at in.
func (s *StringLib) ProcessorToUpper(h handle.Handle, in unsafe.Pointer) unsafe.Pointer {
	text := mustDecode("to_upper", in)
	out, ok := handle.With(s.processors, h, func(p *stringlib.StringProcessor) string {
		return p.ToUpper(text)
	})
	if !ok {
		logMiss(s.logger, processorKind, "to_upper", h)
	}
	return mustEncode("to_upper", out)
}

// ProcessorWordCount counts whitespace-separated words in the string at in.
func (s *StringLib) ProcessorWordCount(h handle.Handle, in unsafe.Pointer) uint {
	text := mustDecode("word_count", in)
	n, ok := handle.With(s.processors, h, func(p *stringlib.StringProcessor) int {
		return p.WordCount(text)
	})
	if !ok {
		logMiss(s.logger, processorKind, "word_count", h)
	}
	return uint(n)
}

// ProcessorValid reports whether h names a live StringProcessor.
func (s *StringLib) ProcessorValid(h handle.Handle) bool {
	return s.processors.Contains(h)
}

// ProcessorFree destroys the StringProcessor behind h. Unknown handles are ignored.
func (s *StringLib) ProcessorFree(h handle.Handle) {
	if s.processors.Destroy(h) {
		s.logger.Debug("object destroyed", log.String("type", processorKind), log.Uint64("handle", uint64(h)))
	}
}

// FreeString releases a buffer returned by this module. NULL is ignored.
func (s *StringLib) FreeString(p unsafe.Pointer) {
	cabi.FreeBuffer(p)
}

// Live returns the number of live StringProcessors.
func (s *StringLib) Live() int {
	return s.processors.Len()
}
