package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xpressformula/xfversion/internal/config"
	"github.com/xpressformula/xfversion/internal/header"
	"github.com/xpressformula/xfversion/internal/testutils"
)

// newRepo creates a temp repository with the default header layout and
// switches into it.
func newRepo(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	dir := filepath.Join(tmp, filepath.Dir(config.DefaultHeaderPath))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	testutils.WriteTempHeader(t, dir, content)
	testutils.Chdir(t, tmp)
	return tmp
}

func TestRunCLI_Plain(t *testing.T) {
	newRepo(t, testutils.HeaderContent("1", "02", "3"))

	output, err := testutils.CaptureStdout(func() {
		if err := runCLI([]string{"xfversion"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}
	if output != "1.2.3\n" {
		t.Errorf("output = %q, want %q", output, "1.2.3\n")
	}
}

func TestRunCLI_GitHub(t *testing.T) {
	newRepo(t, testutils.HeaderContent("2", "10", "0"))

	output, err := testutils.CaptureStdout(func() {
		if err := runCLI([]string{"xfversion", "--format", "github"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}

	want := "APP_VERSION=2.10.0\nAPP_VERSION_TAG=v2.10.0\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestRunCLI_ConfigFile(t *testing.T) {
	tmp := newRepo(t, testutils.HeaderContent("3", "0", "1"))
	content := "header: " + config.DefaultHeaderPath + "\nformat: json\n"
	if err := os.WriteFile(filepath.Join(tmp, config.DefaultConfigFile), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := testutils.CaptureStdout(func() {
		if err := runCLI([]string{"xfversion"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}
	if !strings.Contains(output, `"version":"3.0.1"`) {
		t.Errorf("expected JSON output, got %q", output)
	}
}

func TestRunCLI_HeaderFlag(t *testing.T) {
	tmp := t.TempDir()
	path := testutils.WriteTempHeader(t, tmp, "#define XF_VERSION_PATCH 9\n#define XF_VERSION_MINOR 8\n#define XF_VERSION_MAJOR 7\n")
	testutils.Chdir(t, tmp)

	output, err := testutils.CaptureStdout(func() {
		if err := runCLI([]string{"xfversion", "--header", path}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}
	if output != "7.8.9\n" {
		t.Errorf("output = %q, want %q", output, "7.8.9\n")
	}
}

func TestRunCLI_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
		args  []string
		check func(t *testing.T, err error)
	}{
		{
			name:  "missing header",
			setup: func(t *testing.T) { testutils.Chdir(t, t.TempDir()) },
			args:  []string{"xfversion"},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("expected fs.ErrNotExist, got %v", err)
				}
			},
		},
		{
			name:  "missing patch macro",
			setup: func(t *testing.T) { newRepo(t, "#define XF_VERSION_MAJOR 1\n#define XF_VERSION_MINOR 1\n") },
			args:  []string{"xfversion", "--format", "github"},
			check: func(t *testing.T, err error) {
				var missing *header.MissingMacroError
				if !errors.As(err, &missing) || missing.Name != "XF_VERSION_PATCH" {
					t.Errorf("expected missing XF_VERSION_PATCH, got %v", err)
				}
			},
		},
		{
			name:  "invalid format",
			setup: func(t *testing.T) { newRepo(t, testutils.HeaderContent("1", "0", "0")) },
			args:  []string{"xfversion", "--format", "markdown"},
			check: func(t *testing.T, err error) {
				if !strings.Contains(err.Error(), "invalid format") {
					t.Errorf("unexpected error: %v", err)
				}
			},
		},
		{
			name: "invalid config file",
			setup: func(t *testing.T) {
				tmp := newRepo(t, testutils.HeaderContent("1", "0", "0"))
				if err := os.WriteFile(filepath.Join(tmp, config.DefaultConfigFile), []byte("unknown: true\n"), 0600); err != nil {
					t.Fatal(err)
				}
			},
			args: []string{"xfversion"},
			check: func(t *testing.T, err error) {
				if !strings.Contains(err.Error(), config.DefaultConfigFile) {
					t.Errorf("unexpected error: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			var runErr error
			output, err := testutils.CaptureStdout(func() {
				runErr = runCLI(tt.args)
			})
			if err != nil {
				t.Fatalf("Failed to capture stdout: %v", err)
			}
			if runErr == nil {
				t.Fatal("expected error, got nil")
			}
			if output != "" {
				t.Errorf("expected no stdout output, got %q", output)
			}
			tt.check(t, runErr)
		})
	}
}

func TestRunCLI_VersionWithMalformedConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, config.DefaultConfigFile), []byte("unknown: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	testutils.Chdir(t, tmp)

	for _, args := range [][]string{{"xfversion", "--version"}, {"xfversion", "--help"}} {
		t.Run(args[1], func(t *testing.T) {
			output, err := testutils.CaptureStdout(func() {
				if err := runCLI(args); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			})
			if err != nil {
				t.Fatalf("Failed to capture stdout: %v", err)
			}
			if !strings.Contains(output, "xfversion") {
				t.Errorf("expected output mentioning xfversion, got %q", output)
			}
		})
	}
}

func TestRunCLI_HeaderFlagOverridesInvalidEnv(t *testing.T) {
	tmp := t.TempDir()
	path := testutils.WriteTempHeader(t, tmp, testutils.HeaderContent("5", "0", "2"))
	testutils.Chdir(t, tmp)
	t.Setenv(config.HeaderEnvVar, "../outside/Version.h")

	output, err := testutils.CaptureStdout(func() {
		if err := runCLI([]string{"xfversion", "--header", path}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Failed to capture stdout: %v", err)
	}
	if output != "5.0.2\n" {
		t.Errorf("output = %q, want %q", output, "5.0.2\n")
	}
}
