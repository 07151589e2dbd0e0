package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/xpressformula/xfversion/internal/output"
)

var (
	envNameRegex    = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
	identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if c.Header == "" {
		errs = append(errs, errors.New("header path must not be empty"))
	}

	if _, err := output.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}

	if !envNameRegex.MatchString(c.EnvPrefix) {
		errs = append(errs, fmt.Errorf("invalid env-prefix %q: must match %s", c.EnvPrefix, envNameRegex))
	}

	macros := []struct {
		key   string
		value string
	}{
		{"macros.major", c.Macros.Major},
		{"macros.minor", c.Macros.Minor},
		{"macros.patch", c.Macros.Patch},
	}
	for _, m := range macros {
		if !identifierRegex.MatchString(m.value) {
			errs = append(errs, fmt.Errorf("invalid %s %q: must be a C identifier", m.key, m.value))
		}
	}

	return errors.Join(errs...)
}
