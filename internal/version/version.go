// Package version reports the xfversion build version.
package version

import (
	"runtime/debug"
	"strings"
)

// version is set at build time:
//
//	go build -ldflags "-X github.com/xpressformula/xfversion/internal/version.version=1.0.0"
var version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the build version without a "v" prefix, falling back to
// the module version recorded by `go install` and finally to "dev".
func GetVersion() string {
	if version != "" {
		return strings.TrimPrefix(version, "v")
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}
