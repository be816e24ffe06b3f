package bridge

import (
	"io"
	"unsafe"

	"github.com/bft-labs/modbridge/pkg/cabi"
	"github.com/bft-labs/modbridge/pkg/common"
	"github.com/bft-labs/modbridge/pkg/handle"
	"github.com/bft-labs/modbridge/pkg/log"
)

const loggerKind = "logger"

// Common exposes the shared logger and helpers of the common module.
type Common struct {
	loggers *handle.Registry[common.Logger]
	output  io.Writer
	logger  log.Logger
}

func newCommon(seq *handle.Sequence, o options) *Common {
	return &Common{
		loggers: handle.New[common.Logger](seq),
		output:  o.output,
		logger:  o.logger,
	}
}

// LoggerNew creates a Logger tagged with the string at prefix.
func (c *Common) LoggerNew(prefix unsafe.Pointer) handle.Handle {
	p := mustDecode("logger_new", prefix)
	h := c.loggers.Create(common.NewLoggerTo(c.output, p))
	c.logger.Debug("object created", log.String("type", loggerKind), log.Uint64("handle", uint64(h)))
	return h
}

// LoggerLog writes the string at message through the Logger behind h.
func (c *Common) LoggerLog(h handle.Handle, message unsafe.Pointer) {
	msg := mustDecode("logger_log", message)
	if err := c.loggers.Do(h, func(l *common.Logger) { l.Log(msg) }); err != nil {
		logMiss(c.logger, loggerKind, "log", h)
	}
}

// LoggerValid reports whether h names a live Logger.
func (c *Common) LoggerValid(h handle.Handle) bool {
	return c.loggers.Contains(h)
}

// LoggerFree destroys the Logger behind h. Unknown handles are ignored.
func (c *Common) LoggerFree(h handle.Handle) {
	if c.loggers.Destroy(h) {
		c.logger.Debug("object destroyed", log.String("type", loggerKind), log.Uint64("handle", uint64(h)))
	}
}

// ToUpper upper-cases the string at in. The caller owns the result.
func (c *Common) ToUpper(in unsafe.Pointer) unsafe.Pointer {
	return mustEncode("to_upper", common.ToUpper(mustDecode("to_upper", in)))
}

// Max returns the larger of a and b.
func (c *Common) Max(a, b int32) int32 {
	return common.Max(a, b)
}

// Min returns the smaller of a and b.
func (c *Common) Min(a, b int32) int32 {
	return common.Min(a, b)
}

// FreeString releases a buffer returned by this module. NULL is ignored.
func (c *Common) FreeString(p unsafe.Pointer) {
	cabi.FreeBuffer(p)
}

// Live returns the number of live Loggers.
func (c *Common) Live() int {
	return c.loggers.Len()
}
