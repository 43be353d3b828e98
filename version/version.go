package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Version returns the release recorded in the VERSION file.
func Version() string {
	return strings.TrimSpace(raw)
}
