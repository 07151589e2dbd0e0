package header

import (
	"regexp"
	"strconv"

	"github.com/xpressformula/xfversion/internal/semver"
)

// MacroNames names the three macros holding the version components.
type MacroNames struct {
	Major string `yaml:"major"`
	Minor string `yaml:"minor"`
	Patch string `yaml:"patch"`
}

// DefaultMacroNames returns the XpressFormula macro names.
func DefaultMacroNames() MacroNames {
	return MacroNames{
		Major: "XF_VERSION_MAJOR",
		Minor: "XF_VERSION_MINOR",
		Patch: "XF_VERSION_PATCH",
	}
}

// macroPattern builds the lookup regex for a single macro name.
// \s and \d are ASCII-only in RE2: \v, non-breaking spaces and non-ASCII
// digits never match.
func macroPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`#define\s+` + regexp.QuoteMeta(name) + `\s+(\d+)`)
}

// LookupMacro returns the integer value of the first
// "#define <name> <digits>" occurrence in text.
// Leading zeros are accepted, so "007" yields 7.
func LookupMacro(text, name string) (int, error) {
	matches := macroPattern(name).FindStringSubmatch(text)
	if matches == nil {
		return 0, &MissingMacroError{Name: name}
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, &InvalidMacroError{Name: name, Value: matches[1], Err: err}
	}
	return value, nil
}

// Extract looks up major, minor and patch, in that order, and returns them as
// a version. The first failing lookup is returned.
func Extract(text string, names MacroNames) (semver.SemVersion, error) {
	var parts [3]int
	for i, name := range []string{names.Major, names.Minor, names.Patch} {
		value, err := LookupMacro(text, name)
		if err != nil {
			return semver.SemVersion{}, err
		}
		parts[i] = value
	}
	return semver.SemVersion{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}
