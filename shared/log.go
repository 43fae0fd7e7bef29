package shared

import (
	"go.uber.org/zap"
)

// Logger is the logging interface accepted by the packages in this
// module that log at all.
type Logger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// NoopLogger discards everything. It is the default where no logger is
// supplied.
type NoopLogger struct{}

func (NoopLogger) Info(string, ...any)    {}
func (NoopLogger) Debug(string, ...any)   {}
func (NoopLogger) Warning(string, ...any) {}
func (NoopLogger) Error(string, ...any)   {}

// ZapLogger adapts a zap logger to the Logger interface.
type ZapLogger struct {
	s *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) ZapLogger {
	return ZapLogger{s: l.Sugar()}
}

func (z ZapLogger) Info(format string, args ...any)    { z.s.Infof(format, args...) }
func (z ZapLogger) Debug(format string, args ...any)   { z.s.Debugf(format, args...) }
func (z ZapLogger) Warning(format string, args ...any) { z.s.Warnf(format, args...) }
func (z ZapLogger) Error(format string, args ...any)   { z.s.Errorf(format, args...) }
