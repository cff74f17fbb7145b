package filesystem_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/django2gorm/internal/adapters/filesystem"
)

func TestArtifactStore_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	store := filesystem.NewArtifactStore(tmpDir)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "models.py")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected models.py to not exist")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "models.py"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	exists, err = store.Exists(ctx, "models.py")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected models.py to exist")
	}
}

func TestArtifactStore_ReadLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "models.py")
	content := "class A(models.Model):\r\n    name = models.CharField()\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	store := filesystem.NewArtifactStore("")
	lines, err := store.ReadLines(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	want := []string{"class A(models.Model):", "    name = models.CharField()", ""}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestArtifactStore_ReadLines_Missing(t *testing.T) {
	store := filesystem.NewArtifactStore(t.TempDir())
	_, err := store.ReadLines(context.Background(), "missing.py")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestArtifactStore_CreateRefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	store := filesystem.NewArtifactStore(tmpDir)
	ctx := context.Background()

	if err := store.Create(ctx, "gorm_models.go", []byte("first")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := store.Create(ctx, "gorm_models.go", []byte("second"))
	if err == nil {
		t.Fatal("expected error creating existing file")
	}
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected fs.ErrExist, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "gorm_models.go"))
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("content = %q, want %q", string(data), "first")
	}
}

func TestArtifactStore_CreateRemovesPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	store := filesystem.NewArtifactStore(tmpDir)
	ctx := context.Background()

	restore := filesystem.SetWriteContent(func(w io.WriteCloser, content []byte) error {
		w.Write(content[:3])
		w.Close()
		return errors.New("disk full")
	})
	defer restore()

	err := store.Create(ctx, "gorm_models.go", []byte("package main"))
	if err == nil {
		t.Fatal("expected write error")
	}

	if _, statErr := os.Stat(filepath.Join(tmpDir, "gorm_models.go")); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("partial file left behind: %v", statErr)
	}
}

func TestArtifactStore_Remove(t *testing.T) {
	tmpDir := t.TempDir()
	store := filesystem.NewArtifactStore(tmpDir)
	ctx := context.Background()

	if err := store.Create(ctx, "out.go", []byte("x")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Remove(ctx, "out.go"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := store.Exists(ctx, "out.go"); exists {
		t.Error("file still exists after Remove")
	}
	if err := store.Remove(ctx, "out.go"); err != nil {
		t.Errorf("Remove of a missing file: %v", err)
	}
}

func TestArtifactStore_Replace(t *testing.T) {
	tmpDir := t.TempDir()
	store := filesystem.NewArtifactStore(tmpDir)
	ctx := context.Background()

	if err := store.Replace(ctx, "out.go.errors", []byte("one")); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if err := store.Replace(ctx, "out.go.errors", []byte("two")); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "out.go.errors"))
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", string(data), "two")
	}
}

func TestArtifactStore_Resolve(t *testing.T) {
	store := filesystem.NewArtifactStore("/base")

	if got := store.Resolve("out.go"); got != filepath.Join("/base", "out.go") {
		t.Errorf("Resolve(relative) = %q", got)
	}
	if got := store.Resolve("/abs/out.go"); got != "/abs/out.go" {
		t.Errorf("Resolve(absolute) = %q", got)
	}
}
