// Package testutils holds helpers shared by xfversion tests.
package testutils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// configFileName mirrors config.DefaultConfigFile; importing config here
// would create a cycle with its tests.
const configFileName = ".xfversion.yaml"

// HeaderContent returns a Version.h body defining the three XF_VERSION macros.
func HeaderContent(major, minor, patch string) string {
	return fmt.Sprintf(`// SPDX-License-Identifier: MIT
#pragma once

#define XF_VERSION_MAJOR %s
#define XF_VERSION_MINOR %s
#define XF_VERSION_PATCH %s
#define XF_VERSION_BUILD 0
`, major, minor, patch)
}

// WriteTempHeader writes content to dir/Version.h and returns the path.
func WriteTempHeader(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "Version.h")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	return path
}

// WriteTempConfig writes content to a .xfversion.yaml inside a fresh temp dir
// and returns the config file path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// CaptureStdout runs fn while os.Stdout is redirected and returns what was written.
func CaptureStdout(fn func()) (string, error) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		_, copyErr = io.Copy(&buf, r)
		close(done)
	}()

	defer func() {
		os.Stdout = old
	}()
	fn()

	_ = w.Close()
	<-done
	_ = r.Close()
	return buf.String(), copyErr
}

// Chdir switches into dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}
