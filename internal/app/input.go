package app

import (
	"context"
	"fmt"

	"github.com/example/django2gorm/internal/ports/secondary"
)

// loadInput returns the lines to convert. In-memory lines win over a path.
func loadInput(ctx context.Context, store secondary.ArtifactStore, path string, lines []string) ([]string, error) {
	if lines != nil {
		return lines, nil
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no input given", ErrMissingInput)
	}

	exists, err := store.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check input file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}

	lines, err = store.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return lines, nil
}
