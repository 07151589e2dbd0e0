package output

import (
	"fmt"
	"strings"
)

// Format selects how a version is rendered.
type Format string

const (
	// FormatPlain prints the dotted version only.
	FormatPlain Format = "plain"

	// FormatGitHub prints KEY=value lines for $GITHUB_ENV / $GITHUB_OUTPUT.
	FormatGitHub Format = "github"

	// FormatJSON prints a JSON object.
	FormatJSON Format = "json"

	// FormatYAML prints a YAML document.
	FormatYAML Format = "yaml"

	// FormatTOML prints a TOML document.
	FormatTOML Format = "toml"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatPlain, FormatGitHub, FormatJSON, FormatYAML, FormatTOML}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatPlain, FormatGitHub, FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// ParseFormat converts s to a Format. Unlike a lenient parser it does not
// fall back: unknown values are an error so they are rejected before any
// work is done.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid format %q: must be one of %s", s, FormatNames())
	}
	return f, nil
}

// FormatNames returns the supported formats joined for help and error text.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
