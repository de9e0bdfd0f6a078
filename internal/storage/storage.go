// Package storage persists merged meshes.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshmerge/pkg/mesh"
)

// ErrInvalidName is returned when a mesh name cannot be used as a file name.
var ErrInvalidName = errors.New("invalid mesh file name")

// Sink stores a mesh under dir and returns where it was written.
type Sink interface {
	Save(m *mesh.Mesh, dir string) (string, error)
}

// FileSink writes meshes as <dir>/<name>.mmsh files.
type FileSink struct{}

// Save encodes m into dir, creating the directory if needed.
func (FileSink) Save(m *mesh.Mesh, dir string) (string, error) {
	path, err := FilePath(dir, m.Name)
	if err != nil {
		return "", err
	}
	if err := mesh.WriteFile(path, m); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// FilePath returns the file a mesh named name is saved to under dir.
func FilePath(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(dir, name+mesh.FileExt), nil
}

// Load reads a mesh previously written by Save.
func Load(dir, name string) (*mesh.Mesh, error) {
	path, err := FilePath(dir, name)
	if err != nil {
		return nil, err
	}
	return mesh.ReadFile(path)
}

var _ Sink = FileSink{}
