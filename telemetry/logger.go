package telemetry

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTELHook adds trace and span IDs to every log entry
type OTELHook struct{}

func (h OTELHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}

	e.Str("trace_id", span.SpanContext().TraceID().String())
	e.Str("span_id", span.SpanContext().SpanID().String())

	if level == zerolog.ErrorLevel {
		span.SetStatus(codes.Error, msg)
	}
}

// Logger wraps zerolog with OTEL integration
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a new logger with OTEL hooks writing to out
func NewLogger(service string, out io.Writer) *Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	logger := zerolog.New(out).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Hook(OTELHook{})

	return &Logger{Logger: logger}
}

// WithContext returns a logger with context (for trace propagation)
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.Logger.With().Ctx(ctx).Logger()
	return &logger
}

// Convenience methods for pipeline stages

func (l *Logger) LogStageStart(ctx context.Context, stage, resource string) {
	l.WithContext(ctx).Info().
		Str("stage", stage).
		Str("resource", resource).
		Msg("creating resource")
}

func (l *Logger) LogStageSuccess(ctx context.Context, stage, resource string, durationMs float64) {
	l.WithContext(ctx).Info().
		Str("stage", stage).
		Str("resource", resource).
		Float64("duration_ms", durationMs).
		Msg("created successfully")
}

func (l *Logger) LogStageWarning(ctx context.Context, stage string, err error) {
	l.WithContext(ctx).Warn().
		Err(err).
		Str("stage", stage).
		Msg("stage degraded, continuing")
}

func (l *Logger) LogStageError(ctx context.Context, stage string, err error) {
	l.WithContext(ctx).Error().
		Err(err).
		Str("stage", stage).
		Msg("stage failed")
}
