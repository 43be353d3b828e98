package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

func MustParseLogLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		panic(fmt.Errorf("cannot parse log level %q: %w", s, err))
	}

	return level
}

func MustParseDemoKind(s string) DemoKind {
	for i, name := range availableDemos {
		if strings.EqualFold(name, s) {
			return DemoKind(i)
		}
	}

	panic(fmt.Errorf("cannot parse demo %q", s))
}

// MustParseEdge parses the flag form "<from>:<to>".
func MustParseEdge(s string) Edge {
	if err := checkEdge(s); err != nil {
		panic(err)
	}

	from, to, _ := strings.Cut(s, ":")
	f, _ := strconv.Atoi(strings.TrimSpace(from))
	t, _ := strconv.Atoi(strings.TrimSpace(to))

	return Edge{From: f, To: t}
}

// ┌──────────────────┐
// │ TOML VALUE PARSE │
// └──────────────────┘
func parseIntFn[T constraints.Integer](check func(int64) error) func(any) (T, error) {
	return func(v any) (T, error) {
		i, ok := v.(int64)
		if !ok {
			return 0, fmt.Errorf("expected integer, got %T", v)
		}

		if check != nil {
			if err := check(i); err != nil {
				return 0, err
			}
		}

		return T(i), nil
	}
}

func parseStringFn(check func(string) error) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}

		if check != nil {
			if err := check(s); err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

func parseBoolFn() func(any) (bool, error) {
	return func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("expected boolean, got %T", v)
		}

		return b, nil
	}
}

func parseDemoFn() func(any) (DemoKind, error) {
	parseString := parseStringFn(checkDemo)

	return func(v any) (DemoKind, error) {
		s, err := parseString(v)
		if err != nil {
			return 0, err
		}

		return MustParseDemoKind(s), nil
	}
}

// parseEdgeFn parses the TOML form of an edge, a two element integer array.
func parseEdgeFn() func(any) (Edge, error) {
	parseValue := parseIntFn[int](checkValue)

	return func(v any) (Edge, error) {
		pair, ok := v.([]any)
		if !ok {
			return Edge{}, fmt.Errorf("expected [from, to] array, got %T", v)
		}

		if len(pair) != 2 {
			return Edge{}, fmt.Errorf("expected exactly 2 vertices, got %d", len(pair))
		}

		from, err := parseValue(pair[0])
		if err != nil {
			return Edge{}, fmt.Errorf("from: %w", err)
		}

		to, err := parseValue(pair[1])
		if err != nil {
			return Edge{}, fmt.Errorf("to: %w", err)
		}

		return Edge{From: from, To: to}, nil
	}
}
