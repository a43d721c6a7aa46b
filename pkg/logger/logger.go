package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel constants
const (
	LogLevelError = "error"
	LogLevelWarn  = "warn"
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
	LogLevelTrace = "trace"
)

// Logger wraps a zap sugared logger with verbosity levels
type Logger struct {
	sugar *zap.SugaredLogger
	trace bool
}

// New creates a new logger with the given verbosity level
func New(level string) (*Logger, error) {
	level = strings.ToLower(level)
	if level == "" {
		level = LogLevelInfo // Default to INFO
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	// Trace maps onto zap's debug level, gated separately below
	trace := level == LogLevelTrace
	zapLevel, err := zapcore.ParseLevel(levelToZap(level))
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &Logger{sugar: z.Sugar(), trace: trace}, nil
}

// NewNop returns a logger that discards everything, for tests
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func levelToZap(level string) string {
	switch level {
	case LogLevelTrace:
		return "debug"
	case LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug:
		return level
	default:
		return "info"
	}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Trace logs trace messages, used for per-command bus traffic
func (l *Logger) Trace(format string, args ...interface{}) {
	if l.trace {
		l.sugar.Debugf(format, args...)
	}
}

// IsTraceEnabled checks if trace logging is enabled
func (l *Logger) IsTraceEnabled() bool {
	return l.trace
}
