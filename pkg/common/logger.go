package common

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// TimestampLayout is the layout of the timestamp that opens every log line.
const TimestampLayout = "2006-01-02 15:04:05"

const prefixField = "prefix"

// Logger writes lines of the form
//
//	[2006-01-02 15:04:05] [<prefix>] <message>
//
// A Logger is safe for concurrent use as long as its writer is.
type Logger struct {
	prefix string
	out    zerolog.Logger
}

// NewLogger returns a Logger writing to standard output.
func NewLogger(prefix string) *Logger {
	return NewLoggerTo(os.Stdout, prefix)
}

// NewLoggerTo returns a Logger writing to w.
func NewLoggerTo(w io.Writer, prefix string) *Logger {
	output := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			prefixField,
			zerolog.MessageFieldName,
		},
		FieldsExclude:    []string{prefixField},
		FormatTimestamp:  formatTimestamp,
		FormatFieldValue: bracket,
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}
	return &Logger{
		prefix: prefix,
		out:    zerolog.New(output).With().Timestamp().Logger(),
	}
}

// Prefix returns the tag printed after the timestamp.
func (l *Logger) Prefix() string {
	return l.prefix
}

// Log writes message as a single line.
func (l *Logger) Log(message string) {
	l.out.Log().Str(prefixField, l.prefix).Msg(message)
}

// Logf formats according to a format specifier and writes the result.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.Log(fmt.Sprintf(format, args...))
}

func formatTimestamp(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return bracket(i)
	}
	t, err := time.Parse(zerolog.TimeFieldFormat, s)
	if err != nil {
		return bracket(s)
	}
	return bracket(t.Local().Format(TimestampLayout))
}

func bracket(i interface{}) string {
	return fmt.Sprintf("[%v]", i)
}
