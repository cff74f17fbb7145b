// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ArtifactStore defines the secondary port for reading inputs and writing
// generated files.
type ArtifactStore interface {
	// Exists reports whether something exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// ReadLines reads a text file and returns its lines.
	ReadLines(ctx context.Context, path string) ([]string, error)

	// Create writes a new file. It fails if path already exists.
	Create(ctx context.Context, path string, content []byte) error

	// Replace writes a file, replacing any previous content.
	Replace(ctx context.Context, path string, content []byte) error

	// Remove deletes a file written earlier in the same run.
	Remove(ctx context.Context, path string) error
}
