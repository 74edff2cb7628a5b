package organizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"photosift/internal/testsupport"
)

func TestPruneCollapsesNestedEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	pruned, err := pruneEmptyDirs(context.Background(), root)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if pruned != 3 {
		t.Fatalf("pruned = %d, want 3", pruned)
	}
	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Fatalf("a should be gone, stat err = %v", err)
	}
	if _, err := os.Stat(root); err != nil {
		t.Fatalf("root must survive pruning: %v", err)
	}
}

func TestPruneRemovesHousekeepingOnlyDirectories(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "old")
	testsupport.WriteFileContent(t, filepath.Join(dir, ".DS_Store"), []byte("junk"))
	testsupport.WriteFileContent(t, filepath.Join(dir, "Thumbs.db"), []byte("junk"))

	pruned, err := pruneEmptyDirs(context.Background(), root)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if pruned != 1 {
		t.Fatalf("pruned = %d, want 1", pruned)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("housekeeping-only dir should be gone, stat err = %v", err)
	}
}

func TestPruneKeepsDirectoriesWithContent(t *testing.T) {
	root := t.TempDir()
	keep := filepath.Join(root, "keep")
	testsupport.WriteFileContent(t, filepath.Join(keep, "photo.jpg"), []byte("bytes"))
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	pruned, err := pruneEmptyDirs(context.Background(), root)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if pruned != 1 {
		t.Fatalf("pruned = %d, want 1", pruned)
	}
	if _, err := os.Stat(filepath.Join(keep, "photo.jpg")); err != nil {
		t.Fatalf("populated dir should survive: %v", err)
	}
}
