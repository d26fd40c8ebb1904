package zap

import (
	"context"
	"errors"
	"os"
	"strings"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/dnstheory/pkg/observability"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
	notifier  observability.ErrorNotifier
}

// WithZapLogger supplies a preconfigured zap logger instead of the default
// JSON-to-stdout one.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// WithErrorNotifier forwards error-level entries to a notifier (e.g. SNS).
func WithErrorNotifier(notifier observability.ErrorNotifier) Option {
	return func(opts *loggerOptions) {
		opts.notifier = notifier
	}
}

// Logger is the zap-backed StructuredLogger used in deployed environments.
type Logger struct {
	base     *ubzap.Logger
	notifier observability.ErrorNotifier

	fields    map[string]any
	requestID string
}

var _ observability.StructuredLogger = (*Logger)(nil)

// NewLogger builds a StructuredLogger writing JSON to stdout at the given
// level ("debug", "info", "warn", "error"; empty means info).
func NewLogger(level string, options ...Option) (*Logger, error) {
	opts := &loggerOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	base := opts.zapLogger
	if base == nil {
		parsed, err := parseLevel(level)
		if err != nil {
			return nil, err
		}
		encCfg := ubzap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(os.Stdout), parsed)
		base = ubzap.New(core)
	}

	return &Logger{base: base, notifier: opts.notifier}, nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case levelDebug:
		return zapcore.DebugLevel, nil
	case levelInfo, "":
		return zapcore.InfoLevel, nil
	case levelWarn:
		return zapcore.WarnLevel, nil
	case levelError:
		return zapcore.ErrorLevel, nil
	default:
		return 0, errors.New("observability/zap: unsupported log level")
	}
}

func (l *Logger) log(level, message string, fields []map[string]any) {
	merged := observability.MergeFields(l.fields, fields)
	if l.requestID != "" {
		merged["request_id"] = l.requestID
	}

	zfields := make([]ubzap.Field, 0, len(merged))
	for k, v := range merged {
		zfields = append(zfields, ubzap.Any(k, v))
	}

	switch level {
	case levelDebug:
		l.base.Debug(message, zfields...)
	case levelInfo:
		l.base.Info(message, zfields...)
	case levelWarn:
		l.base.Warn(message, zfields...)
	case levelError:
		l.base.Error(message, zfields...)
		l.notify(message, merged)
	}
}

func (l *Logger) notify(message string, fields map[string]any) {
	if l.notifier == nil {
		return
	}
	entry := observability.LogEntry{
		Level:     levelError,
		Message:   message,
		Fields:    fields,
		RequestID: l.requestID,
	}
	// Best effort: a failed notification must not fail the request.
	if err := l.notifier.Notify(context.Background(), entry); err != nil {
		l.base.Warn("error notification failed", ubzap.Error(err))
	}
}

func (l *Logger) Debug(message string, fields ...map[string]any) { l.log(levelDebug, message, fields) }
func (l *Logger) Info(message string, fields ...map[string]any)  { l.log(levelInfo, message, fields) }
func (l *Logger) Warn(message string, fields ...map[string]any)  { l.log(levelWarn, message, fields) }
func (l *Logger) Error(message string, fields ...map[string]any) { l.log(levelError, message, fields) }

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	return &Logger{
		base:      l.base,
		notifier:  l.notifier,
		fields:    observability.MergeFields(l.fields, []map[string]any{fields}),
		requestID: l.requestID,
	}
}

func (l *Logger) WithRequestID(requestID string) observability.StructuredLogger {
	return &Logger{
		base:      l.base,
		notifier:  l.notifier,
		fields:    observability.MergeFields(l.fields, nil),
		requestID: requestID,
	}
}

func (l *Logger) Flush(context.Context) error {
	return l.base.Sync()
}
