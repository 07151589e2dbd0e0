// Package output renders header versions for people and CI systems.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
	"github.com/xpressformula/xfversion/internal/semver"
)

// DefaultEnvPrefix is the variable name used by the github format.
const DefaultEnvPrefix = "APP_VERSION"

// document is the structured view shared by the yaml and toml formats.
type document struct {
	Version string `yaml:"version" toml:"version"`
	Tag     string `yaml:"tag" toml:"tag"`
	Major   int    `yaml:"major" toml:"major"`
	Minor   int    `yaml:"minor" toml:"minor"`
	Patch   int    `yaml:"patch" toml:"patch"`
}

func newDocument(v semver.SemVersion) document {
	return document{
		Version: v.String(),
		Tag:     v.Tag(),
		Major:   v.Major,
		Minor:   v.Minor,
		Patch:   v.Patch,
	}
}

// Formatter renders versions in a single format.
type Formatter struct {
	format    Format
	envPrefix string
}

// NewFormatter creates a Formatter. An empty envPrefix uses DefaultEnvPrefix.
func NewFormatter(format Format, envPrefix string) *Formatter {
	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}
	return &Formatter{format: format, envPrefix: envPrefix}
}

// Render returns the complete, newline-terminated output for v.
func (f *Formatter) Render(v semver.SemVersion) (string, error) {
	switch f.format {
	case FormatPlain:
		return v.String() + "\n", nil
	case FormatGitHub:
		return f.renderGitHub(v), nil
	case FormatJSON:
		return renderJSON(v)
	case FormatYAML:
		return renderYAML(v)
	case FormatTOML:
		return renderTOML(v)
	default:
		return "", fmt.Errorf("unsupported format: %s", f.format)
	}
}

// Write renders v and writes it to w in a single call, so a render error
// never leaves partial output behind.
func (f *Formatter) Write(w io.Writer, v semver.SemVersion) error {
	out, err := f.Render(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (f *Formatter) renderGitHub(v semver.SemVersion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s=%s\n", f.envPrefix, v.String())
	fmt.Fprintf(&sb, "%s_TAG=%s\n", f.envPrefix, v.Tag())
	return sb.String()
}

// renderJSON builds the object field by field with sjson so the key order
// is stable.
func renderJSON(v semver.SemVersion) (string, error) {
	doc := newDocument(v)
	out := []byte("{}")
	fields := []struct {
		key   string
		value any
	}{
		{"version", doc.Version},
		{"tag", doc.Tag},
		{"major", doc.Major},
		{"minor", doc.Minor},
		{"patch", doc.Patch},
	}

	var err error
	for _, field := range fields {
		out, err = sjson.SetBytes(out, field.key, field.value)
		if err != nil {
			return "", fmt.Errorf("failed to set JSON field %q: %w", field.key, err)
		}
	}
	return string(out) + "\n", nil
}

func renderYAML(v semver.SemVersion) (string, error) {
	out, err := yaml.Marshal(newDocument(v))
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return ensureNewline(string(out)), nil
}

func renderTOML(v semver.SemVersion) (string, error) {
	out, err := toml.Marshal(newDocument(v))
	if err != nil {
		return "", fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return ensureNewline(string(out)), nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
