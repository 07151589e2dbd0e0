package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/xpressformula/xfversion/internal/header"
	"github.com/xpressformula/xfversion/internal/output"
)

const (
	// DefaultHeaderPath is relative to the repository root.
	DefaultHeaderPath = "src/XpressFormula/Version.h"

	// DefaultConfigFile is looked up in the working directory.
	DefaultConfigFile = ".xfversion.yaml"

	// HeaderEnvVar overrides the header path from the config file.
	HeaderEnvVar = "XFVERSION_HEADER"
)

// Config is the main configuration structure for xfversion.
type Config struct {
	Header    string            `yaml:"header"`
	Format    string            `yaml:"format,omitempty"`
	EnvPrefix string            `yaml:"env-prefix,omitempty"`
	Macros    header.MacroNames `yaml:"macros,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Header:    DefaultHeaderPath,
		Format:    string(output.FormatPlain),
		EnvPrefix: output.DefaultEnvPrefix,
		Macros:    header.DefaultMacroNames(),
	}
}

// LoadConfigFn is a variable so tests can replace configuration loading.
var LoadConfigFn = loadConfig

// loadConfig builds the configuration from built-in defaults overlaid with
// .xfversion.yaml. The XFVERSION_HEADER variable is applied separately by
// ApplyEnv so that a --header flag can take precedence over it.
func loadConfig() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(DefaultConfigFile)
	switch {
	case err == nil:
		if err := decodeInto(cfg, data); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", DefaultConfigFile, err)
		}
	case os.IsNotExist(err):
		// no config file, keep defaults
	default:
		return nil, err
	}

	return cfg, nil
}

// EnvHeader returns the raw XFVERSION_HEADER value.
func EnvHeader() string {
	return os.Getenv(HeaderEnvVar)
}

// ApplyEnv overrides the header path with XFVERSION_HEADER when it is set.
func (c *Config) ApplyEnv() error {
	envPath := EnvHeader()
	if envPath == "" {
		return nil
	}

	cleanPath := filepath.Clean(envPath)
	// Reject relative paths with traversal (use absolute paths instead)
	if !filepath.IsAbs(cleanPath) && strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", HeaderEnvVar)
	}
	c.Header = cleanPath
	return nil
}

// decodeInto strictly decodes YAML over cfg. Keys absent from the document
// keep their current values.
func decodeInto(cfg *Config, data []byte) error {
	var file Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&file); err != nil {
		return err
	}

	if file.Header != "" {
		cfg.Header = file.Header
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	if file.EnvPrefix != "" {
		cfg.EnvPrefix = file.EnvPrefix
	}
	if file.Macros.Major != "" {
		cfg.Macros.Major = file.Macros.Major
	}
	if file.Macros.Minor != "" {
		cfg.Macros.Minor = file.Macros.Minor
	}
	if file.Macros.Patch != "" {
		cfg.Macros.Patch = file.Macros.Patch
	}
	return nil
}
