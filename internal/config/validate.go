package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

func checkLogLevel(v string) error {
	if _, err := zerolog.ParseLevel(strings.ToLower(v)); err != nil || v == "" {
		return fmt.Errorf("invalid level string %q", v)
	}

	return nil
}

func checkDemo(v string) error {
	if !slices.Contains(availableDemos, strings.ToLower(v)) {
		return fmt.Errorf("unknown demo %q, expected one of %v", v, availableDemos)
	}

	return nil
}

func checkUint8(v int64) error {
	if v < 0 || math.MaxUint8 < v {
		return fmt.Errorf("out of range[%d-%d]", 0, math.MaxUint8)
	}

	return nil
}

func checkNonNegative(v int64) error {
	if v < 0 {
		return fmt.Errorf("must not be negative, got %d", v)
	}

	return nil
}

func checkValue(v int64) error {
	if v < math.MinInt32 || math.MaxInt32 < v {
		return fmt.Errorf("out of range[%d-%d]", math.MinInt32, math.MaxInt32)
	}

	return nil
}

// checkEdge validates the flag form of an edge, "<from>:<to>".
func checkEdge(v string) error {
	from, to, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("edge %q must look like <from>:<to>", v)
	}

	var errs []error
	for _, s := range []string{from, to} {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("edge %q: %q is not an integer", v, s))
			continue
		}

		if err := checkValue(i); err != nil {
			errs = append(errs, fmt.Errorf("edge %q: %w", v, err))
		}
	}

	return errors.Join(errs...)
}

func checkValues(vs []int) error {
	var errs []error
	for i, v := range vs {
		if err := checkValue(int64(v)); err != nil {
			errs = append(errs, fmt.Errorf("[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
