package session

import (
	"context"
	"math/rand/v2"
)

// We define unexported key types to prevent key collisions with other packages.
type (
	traceIDCtxKey struct{}
	demoCtxKey    struct{}
)

// WithNewTraceID ensures a trace ID is present in the context.
// If one already exists, it returns the original context unmodified.
func WithNewTraceID(ctx context.Context) context.Context {
	if _, ok := TraceIDFrom(ctx); ok {
		return ctx
	}

	return context.WithValue(ctx, traceIDCtxKey{}, generateTraceID())
}

// TraceIDFrom extracts a trace ID string from the context, if one exists.
func TraceIDFrom(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDCtxKey{}).(string)
	if ok {
		return traceID, true
	}

	return "", false
}

// WithDemo returns a new context carrying the name of the running demo.
func WithDemo(ctx context.Context, demo string) context.Context {
	return context.WithValue(ctx, demoCtxKey{}, demo)
}

func DemoFrom(ctx context.Context) (string, bool) {
	demo, ok := ctx.Value(demoCtxKey{}).(string)

	return demo, ok
}

// generateTraceID returns 16 lower case hex characters.
func generateTraceID() string {
	b := make([]byte, 16)

	q := rand.Uint64()
	for i := 15; i >= 0; i-- {
		r := uint8(q & 0xF)
		q >>= 4
		if r > 9 {
			r += 0x27 // 'a' - 10 - '0'
		}
		b[i] = r + 0x30 // '0'
	}

	return string(b)
}
