package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvzc/containers/internal/session"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName = "scope"
	// traceIDFieldName defines the key for the "trace_id" field in structured logs.
	traceIDFieldName = "trace_id"
	demoFieldName    = "demo"
)

// NewLogger creates a console logger writing to w at the given level.
// Every event carries a timestamp and a bracketed scope column.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		// FormatPrepare intercepts fields just before printing
		// to render the scope as [SCOPE].
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[traceIDFieldName].(string); !ok || v == "" {
				m[traceIDFieldName] = ""
			}

			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[app]"
			}

			return nil
		},
		FieldsExclude: []string{traceIDFieldName, scopeFieldName},
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			traceIDFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).
		Hook(ctxHook{}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// WithScope returns a sub-logger tagged with a component name,
// e.g. "TREE" or "GRAPH".
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// WithContext binds ctx to the logger so that run-scoped values stored by
// the session package show up on every event.
func WithContext(logger zerolog.Logger, ctx context.Context) zerolog.Logger {
	return logger.With().Ctx(ctx).Logger()
}

// ctxHook copies run-scoped values from the event's context.
// It only fires when a context was attached with WithContext or .Ctx(ctx).
type ctxHook struct{}

func (h ctxHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	if traceID, ok := session.TraceIDFrom(ctx); ok {
		e.Str(traceIDFieldName, traceID)
	}

	if demo, ok := session.DemoFrom(ctx); ok {
		e.Str(demoFieldName, demo)
	}
}

type joinableError interface {
	Unwrap() []error
}

// ErrorUnwrapped logs each error of a joined error on its own line.
// If the error is not joined, it logs the single error normally.
func ErrorUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.ErrorLevel, msg, err)
}

func WarnUnwrapped(logger *zerolog.Logger, msg string, err error) {
	logUnwrapped(logger, zerolog.WarnLevel, msg, err)
}

func logUnwrapped(logger *zerolog.Logger, level zerolog.Level, msg string, err error) {
	var joinedErrs joinableError

	if errors.As(err, &joinedErrs) {
		for _, e := range joinedErrs.Unwrap() {
			logger.WithLevel(level).Err(e).Msg(msg)
		}

		return
	}

	logger.WithLevel(level).Err(err).Msg(msg)
}
