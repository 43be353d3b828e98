package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMustParseLogLevel(t *testing.T) {
	tcs := []struct {
		name        string
		input       string
		expect      zerolog.Level
		shouldPanic bool
	}{
		{name: "debug", input: "debug", expect: zerolog.DebugLevel},
		{name: "upper case", input: "INFO", expect: zerolog.InfoLevel},
		{name: "trace", input: "trace", expect: zerolog.TraceLevel},
		{name: "invalid", input: "loud", shouldPanic: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { MustParseLogLevel(tc.input) })
			} else {
				assert.Equal(t, tc.expect, MustParseLogLevel(tc.input))
			}
		})
	}
}

func TestMustParseDemoKind(t *testing.T) {
	tcs := []struct {
		name        string
		input       string
		expect      DemoKind
		shouldPanic bool
	}{
		{name: "tree", input: "tree", expect: DemoTree},
		{name: "graph mixed case", input: "GraPh", expect: DemoGraph},
		{name: "array", input: "array", expect: DemoArray},
		{name: "unknown", input: "heap", shouldPanic: true},
		{name: "empty", input: "", shouldPanic: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { MustParseDemoKind(tc.input) })
			} else {
				assert.Equal(t, tc.expect, MustParseDemoKind(tc.input))
			}
		})
	}
}

func TestMustParseEdge(t *testing.T) {
	tcs := []struct {
		name        string
		input       string
		expect      Edge
		shouldPanic bool
	}{
		{name: "simple", input: "1:2", expect: Edge{From: 1, To: 2}},
		{name: "spaces", input: " 3 : 4 ", expect: Edge{From: 3, To: 4}},
		{name: "self loop", input: "5:5", expect: Edge{From: 5, To: 5}},
		{name: "negative", input: "-1:2", expect: Edge{From: -1, To: 2}},
		{name: "no separator", input: "12", shouldPanic: true},
		{name: "not a number", input: "a:2", shouldPanic: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { MustParseEdge(tc.input) })
			} else {
				assert.Equal(t, tc.expect, MustParseEdge(tc.input))
			}
		})
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("parseIntFn", func(t *testing.T) {
		fn := parseIntFn[uint8](checkUint8)

		v, err := fn(int64(200))
		assert.NoError(t, err)
		assert.Equal(t, uint8(200), v)

		_, err = fn(int64(256))
		assert.Error(t, err)

		_, err = fn("200")
		assert.Error(t, err)

		v2, err := parseIntFn[int](nil)(int64(-5))
		assert.NoError(t, err)
		assert.Equal(t, -5, v2)
	})

	t.Run("parseStringFn", func(t *testing.T) {
		s, err := parseStringFn(nil)("hello")
		assert.NoError(t, err)
		assert.Equal(t, "hello", s)

		_, err = parseStringFn(checkLogLevel)("nope")
		assert.Error(t, err)

		_, err = parseStringFn(nil)(1)
		assert.Error(t, err)
	})

	t.Run("parseBoolFn", func(t *testing.T) {
		b, err := parseBoolFn()(true)
		assert.NoError(t, err)
		assert.True(t, b)

		_, err = parseBoolFn()("true")
		assert.Error(t, err)
	})

	t.Run("parseDemoFn", func(t *testing.T) {
		k, err := parseDemoFn()("queue")
		assert.NoError(t, err)
		assert.Equal(t, DemoQueue, k)

		_, err = parseDemoFn()("heap")
		assert.Error(t, err)
	})

	t.Run("parseEdgeFn", func(t *testing.T) {
		e, err := parseEdgeFn()([]any{int64(1), int64(9)})
		assert.NoError(t, err)
		assert.Equal(t, Edge{From: 1, To: 9}, e)

		_, err = parseEdgeFn()([]any{int64(1)})
		assert.Error(t, err)

		_, err = parseEdgeFn()([]any{int64(1), "x"})
		assert.ErrorContains(t, err, "to")
	})
}
