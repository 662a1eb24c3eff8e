// Package logging provides the process-wide logger handed to every module.
// It implements the mono types.Logger interface on top of zap and writes to
// three sinks: the console, a combined log file and an error-only log file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-monolith/mono/pkg/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// File names created inside Config.Dir.
const (
	CombinedLogFile = "combined.log"
	ErrorLogFile    = "error.log"
)

// Config holds logger configuration.
type Config struct {
	// Dir is the directory holding the combined and error log files.
	Dir string
	// Level is the minimum level written to the console and combined sinks.
	Level string
	// ServiceName is attached to every record as the "service" field.
	ServiceName string
	// Console receives human-readable output. Defaults to os.Stdout.
	Console io.Writer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Dir:         "logs",
		Level:       "info",
		ServiceName: "calculator-microservice",
		Console:     os.Stdout,
	}
}

// Logger is a zap-backed types.Logger.
type Logger struct {
	sugar   *zap.SugaredLogger
	closers []io.Closer
}

// Compile-time interface check
var _ types.Logger = (*Logger)(nil)

// New creates the logger and opens its log files, creating cfg.Dir if needed.
func New(cfg Config) (*Logger, error) {
	if cfg.Console == nil {
		cfg.Console = os.Stdout
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	combined, err := openLogFile(filepath.Join(cfg.Dir, CombinedLogFile))
	if err != nil {
		return nil, err
	}
	errorsOnly, err := openLogFile(filepath.Join(cfg.Dir, ErrorLogFile))
	if err != nil {
		combined.Close()
		return nil, err
	}

	fileEncoder := zapcore.NewJSONEncoder(encoderConfig())

	consoleConfig := encoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(cfg.Console), level),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(combined), level),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(errorsOnly), zapcore.ErrorLevel),
	)

	l := NewFromCore(core, cfg.ServiceName)
	l.closers = []io.Closer{combined, errorsOnly}
	return l, nil
}

// NewFromCore wraps an arbitrary zap core.
func NewFromCore(core zapcore.Core, serviceName string) *Logger {
	opts := []zap.Option{}
	if serviceName != "" {
		opts = append(opts, zap.Fields(zap.String("service", serviceName)))
	}
	return &Logger{sugar: zap.New(core, opts...).Sugar()}
}

func (l *Logger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) types.Logger {
	return &Logger{sugar: l.sugar.With(args...)}
}

// WithModule returns a child logger tagged with the module name.
func (l *Logger) WithModule(module string) types.Logger {
	return l.With("module", module)
}

// WithError returns a child logger carrying err.
func (l *Logger) WithError(err error) types.Logger {
	return &Logger{sugar: l.sugar.With(zap.Error(err))}
}

// Flush flushes buffered records and leaves the files open.
// mono calls it on its logger when shutdown completes.
func (l *Logger) Flush() error {
	_ = l.sugar.Sync()
	return nil
}

// Sync flushes buffered records and closes the log files owned by this logger.
func (l *Logger) Sync() error {
	var errs []error
	// stdout sync fails with EINVAL on some platforms; not worth reporting
	_ = l.sugar.Sync()
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.closers = nil
	return errors.Join(errs...)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
