package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/xvzc/containers/internal/ptr"
)

// fromTomlFile decodes a containers.toml scenario file. Sections that the
// file leaves out come back as nil groups and are filled by Merge.
func fromTomlFile(path string) (*Config, error) {
	_ = os.Setenv("BURNTSUSHI_TOML_110", "1") // multi-line edge lists

	var cfg *Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return cfg, nil
}

// searchTomlFile picks the scenario file to load. An explicit --config path
// must exist. Otherwise the system, XDG and home locations are tried in
// order and running without any file is fine.
func searchTomlFile(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("no such file: %s", explicit)
		}

		return explicit, nil
	}

	for _, p := range candidates {
		if p == "" {
			continue
		}

		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}

// lookup returns the raw value under key unless an earlier field already
// failed, in which case decoding of the section stops.
func lookup(section map[string]any, key string, err *error) (any, bool) {
	if err != nil && *err != nil {
		return nil, false
	}

	v, ok := section[key]

	return v, ok
}

// findFrom decodes one scalar option such as "pop" or "log-level".
// A missing key yields nil so that Merge keeps the lower layer's value.
func findFrom[T any](
	section map[string]any,
	key string,
	parser func(any) (T, error),
	err *error,
) *T {
	raw, ok := lookup(section, key, err)
	if !ok {
		return nil
	}

	val, parseErr := parser(raw)
	if parseErr != nil {
		*err = fmt.Errorf("field %q: %w", key, parseErr)
		return nil
	}

	return ptr.FromValue(val)
}

// findStructFrom decodes a whole section like [tree] or [graph] through the
// group's own UnmarshalTOML.
func findStructFrom[T any, PT interface {
	*T
	toml.Unmarshaler
}](root map[string]any, key string, err *error) *T {
	raw, ok := lookup(root, key, err)
	if !ok {
		return nil
	}

	var group T
	if decodeErr := PT(&group).UnmarshalTOML(raw); decodeErr != nil {
		*err = fmt.Errorf("section [%s]: %w", key, decodeErr)
		return nil
	}

	return &group
}

// findSliceFrom parses a TOML array element by element. A present but
// empty array yields an empty, non-nil slice.
func findSliceFrom[T any](
	section map[string]any,
	key string,
	elementParser func(any) (T, error),
	err *error,
) []T {
	raw, ok := lookup(section, key, err)
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		if typed, ok := raw.([]T); ok {
			return ptr.CloneSlice(typed)
		}
		*err = fmt.Errorf("field %q: expected list, got %T", key, raw)
		return nil
	}

	result := make([]T, 0, len(items))
	for i, item := range items {
		v, parseErr := elementParser(item)
		if parseErr != nil {
			*err = fmt.Errorf("field %q[%d]: %w", key, i, parseErr)
			return nil
		}
		result = append(result, v)
	}

	return result
}

func isOk[T any](p *T, err error) bool {
	return p != nil && err == nil
}
