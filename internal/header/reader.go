package header

import (
	"context"

	"github.com/xpressformula/xfversion/internal/core"
	"github.com/xpressformula/xfversion/internal/semver"
)

// Reader reads versions from header files.
type Reader struct {
	fs    core.FileSystem
	names MacroNames
}

// NewReader creates a Reader over fs looking up the given macro names.
// Empty names fall back to DefaultMacroNames.
func NewReader(fs core.FileSystem, names MacroNames) *Reader {
	defaults := DefaultMacroNames()
	if names.Major == "" {
		names.Major = defaults.Major
	}
	if names.Minor == "" {
		names.Minor = defaults.Minor
	}
	if names.Patch == "" {
		names.Patch = defaults.Patch
	}
	return &Reader{fs: fs, names: names}
}

// Names returns the macro names the reader looks up.
func (r *Reader) Names() MacroNames {
	return r.names
}

// Read loads the header at path and extracts its version.
func (r *Reader) Read(ctx context.Context, path string) (semver.SemVersion, error) {
	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return semver.SemVersion{}, &IOError{Path: path, Err: err}
	}
	return Extract(string(data), r.names)
}
