// Package core holds the small abstractions shared across xfversion packages.
package core

import (
	"context"
	"os"
)

// FileSystem abstracts the file operations xfversion needs so that readers
// can be exercised against an in-memory implementation in tests.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// OSFileSystem is the production FileSystem backed by the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the real filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the whole file at path. The file handle is opened and
// closed inside os.ReadFile on every exit path.
func (f *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Ensure OSFileSystem implements FileSystem.
var _ FileSystem = (*OSFileSystem)(nil)
