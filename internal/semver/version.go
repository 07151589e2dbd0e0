package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemVersion represents a semantic version (major.minor.patch-preRelease+build).
// Versions read from a header only ever carry the numeric triple.
type SemVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

var (
	// tagRegex matches release tags with an optional "v" or "V" prefix,
	// optional pre-release (e.g., "-rc.1") and optional build metadata
	// (e.g., "+build.7"). A fourth numeric segment such as "1.2.3.4" does not match.
	tagRegex = regexp.MustCompile(
		`^[vV]?(\d+)\.(\d+)\.(\d+)` +
			`(?:-([0-9A-Za-z\-\.]+))?` +
			`(?:\+([0-9A-Za-z\-\.]+))?$`,
	)

	// ErrInvalidVersion is returned when a string is not a semantic version.
	ErrInvalidVersion = errors.New("invalid version format")
)

// maxVersionLength bounds the input handed to the regex.
const maxVersionLength = 128

// String returns the dotted form, e.g. "2.10.0".
func (v SemVersion) String() string {
	var sb strings.Builder
	sb.Grow(20)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// Tag returns the git tag form of the version, e.g. "v2.10.0".
func (v SemVersion) Tag() string {
	return "v" + v.String()
}

// ParseVersion parses a version or release tag.
//
// Supported formats:
//   - "1.2.3"
//   - "v1.2.3" and "V1.2.3"
//   - "1.2.3-rc.1", "1.2.3+build.5", "1.2.3-rc.1+build.5"
//
// Surrounding whitespace is ignored. Errors wrap ErrInvalidVersion.
func ParseVersion(s string) (SemVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := tagRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return SemVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var parts [3]int
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return SemVersion{}, fmt.Errorf("%w: invalid %s version: %s", ErrInvalidVersion, name, err.Error())
		}
		parts[i] = n
	}

	return SemVersion{
		Major:      parts[0],
		Minor:      parts[1],
		Patch:      parts[2],
		PreRelease: matches[4],
		Build:      matches[5],
	}, nil
}

// Compare returns -1 if v < other, 0 if equal and +1 if v > other.
// A pre-release sorts before its normal version; build metadata is ignored.
func (v SemVersion) Compare(other SemVersion) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.PreRelease == "" && other.PreRelease == "":
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(v.PreRelease, other.PreRelease)
	}
}

// IsNewerThan reports whether v has higher precedence than other.
func (v SemVersion) IsNewerThan(other SemVersion) bool {
	return v.Compare(other) > 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	for i := range min(len(aIDs), len(bIDs)) {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(aIDs), len(bIDs))
}

func compareIdentifier(a, b string) int {
	aNum, aIsNum := parseNumericIdentifier(a)
	bNum, bIsNum := parseNumericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		return compareInt(aNum, bNum)
	case aIsNum:
		return -1 // numeric < non-numeric
	case bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SemVer numeric identifiers: only digits, no leading zeros unless exactly "0".
func parseNumericIdentifier(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
