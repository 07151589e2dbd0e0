package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	urfavecli "github.com/urfave/cli/v3"
	"github.com/xpressformula/xfversion/internal/config"
	"github.com/xpressformula/xfversion/internal/core"
	"github.com/xpressformula/xfversion/internal/header"
	"github.com/xpressformula/xfversion/internal/output"
	"github.com/xpressformula/xfversion/internal/printer"
	"github.com/xpressformula/xfversion/internal/semver"
	"github.com/xpressformula/xfversion/internal/version"
)

// ErrVersionMismatch is returned when --expect does not match the header.
var ErrVersionMismatch = errors.New("version mismatch")

// newFileSystem is swapped in tests.
var newFileSystem = func() core.FileSystem { return core.NewOSFileSystem() }

// ConfigLoader produces the configuration the command runs with.
type ConfigLoader func() (*config.Config, error)

// New builds the root xfversion command. loadConfig runs only when the
// command action executes, so --help and --version work regardless of the
// state of .xfversion.yaml. Flags that are set override the config file and
// the environment.
func New(loadConfig ConfigLoader) *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "xfversion",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Print the semantic version defined in a C/C++ version header",
		UsageText: `xfversion [options]

Reads the XF_VERSION_MAJOR, XF_VERSION_MINOR and XF_VERSION_PATCH macros
from the header and prints the version. Use --format github to append the
output to $GITHUB_ENV or $GITHUB_OUTPUT.`,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "Path to the version header (overrides " + config.HeaderEnvVar + " and .xfversion.yaml)",
				Value:   config.DefaultHeaderPath,
			},
			&urfavecli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: " + output.FormatNames(),
				Value:   string(output.FormatPlain),
			},
			&urfavecli.StringFlag{
				Name:  "expect",
				Usage: "Fail unless the header version equals this version or tag (e.g. v1.2.3)",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runVersionCmd(ctx, cmd, loadConfig)
		},
	}
}

// runVersionCmd reads the header and prints its version. Nothing is written
// to the command's writer unless every step before printing succeeded.
func runVersionCmd(ctx context.Context, cmd *urfavecli.Command, loadConfig ConfigLoader) error {
	if cmd.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	effective, err := resolve(cmd, cfg)
	if err != nil {
		return err
	}
	if err := effective.Validate(); err != nil {
		return err
	}

	format, err := output.ParseFormat(effective.Format)
	if err != nil {
		return err
	}

	reader := header.NewReader(newFileSystem(), effective.Macros)
	v, err := reader.Read(ctx, effective.Header)
	if err != nil {
		return err
	}

	if expect := cmd.String("expect"); expect != "" {
		if err := checkExpected(v, expect); err != nil {
			return err
		}
	}

	return output.NewFormatter(format, effective.EnvPrefix).Write(cmd.Root().Writer, v)
}

// resolve layers the flags and XFVERSION_HEADER over cfg. An explicit
// --header wins over the environment, which is then neither applied nor
// validated.
func resolve(cmd *urfavecli.Command, cfg *config.Config) (config.Config, error) {
	effective := *cfg

	if cmd.IsSet("header") {
		effective.Header = cmd.String("header")
		if config.EnvHeader() != "" {
			printer.PrintWarning(config.HeaderEnvVar + " is ignored because --header is set")
		}
	} else if err := effective.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("format") {
		effective.Format = cmd.String("format")
	}
	return effective, nil
}

// checkExpected compares the header version against a version or release
// tag. Pre-release and build suffixes on the expected value must match too.
func checkExpected(v semver.SemVersion, expect string) error {
	want, err := semver.ParseVersion(expect)
	if err != nil {
		return fmt.Errorf("invalid --expect value: %w", err)
	}
	if v.Compare(want) != 0 || v.Build != want.Build {
		return fmt.Errorf("%w: header has %s, expected %s", ErrVersionMismatch, v, want)
	}
	return nil
}

// ReportError prints err to stderr along with a hint for common mistakes.
func ReportError(err error) {
	printer.PrintError(err)

	var ioErr *header.IOError
	var missing *header.MissingMacroError
	switch {
	case errors.As(err, &ioErr) && errors.Is(err, fs.ErrNotExist):
		printer.PrintHint("run from the repository root, or pass --header or set " + config.HeaderEnvVar)
	case errors.As(err, &missing):
		printer.PrintHint(fmt.Sprintf("expected a line like %q", "#define "+missing.Name+" <number>"))
	}
}
