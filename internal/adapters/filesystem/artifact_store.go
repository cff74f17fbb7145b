// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore implements secondary.ArtifactStore on the local filesystem.
type ArtifactStore struct {
	baseDir string
}

// NewArtifactStore creates a new filesystem artifact store.
// Relative paths are resolved against baseDir; an empty baseDir leaves them
// relative to the working directory.
func NewArtifactStore(baseDir string) *ArtifactStore {
	return &ArtifactStore{baseDir: baseDir}
}

// Resolve returns the path the store uses for path.
func (s *ArtifactStore) Resolve(path string) string {
	if s.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

// Exists reports whether something exists at path.
func (s *ArtifactStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(s.Resolve(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// ReadLines reads a text file and splits it into lines. Carriage returns
// before a newline are dropped.
func (s *ArtifactStore) ReadLines(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(s.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Create writes a new file. It fails with fs.ErrExist if path already exists.
// A file that could not be written completely is removed again.
func (s *ArtifactStore) Create(ctx context.Context, path string, content []byte) error {
	resolved := s.Resolve(path)
	f, err := os.OpenFile(resolved, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := writeContent(f, content); err != nil {
		if rmErr := os.Remove(resolved); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var writeContent = writeAll

// writeAll writes content and always closes w.
func writeAll(w io.WriteCloser, content []byte) error {
	_, writeErr := w.Write(content)
	return errors.Join(writeErr, w.Close())
}

// Replace writes a file, replacing any previous content.
func (s *ArtifactStore) Replace(ctx context.Context, path string, content []byte) error {
	if err := os.WriteFile(s.Resolve(path), content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Remove deletes the file at path. A missing file is not an error.
func (s *ArtifactStore) Remove(ctx context.Context, path string) error {
	if err := os.Remove(s.Resolve(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
