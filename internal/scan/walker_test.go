package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"photosift/internal/media"
	"photosift/internal/scan"
	"photosift/internal/testsupport"
)

func newTestWalker() *scan.Walker {
	lib := media.NewLibrary([]string{".jpg", ".png"}, []string{".mp4"})
	return scan.NewWalker(lib, []string{"@eaDir"})
}

func TestEnumerateDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	// Created out of order on purpose; enumeration must be depth-first
	// lexicographic regardless of creation order.
	testsupport.WriteFile(t, filepath.Join(root, "z.jpg"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "a", "b.jpg"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "a", "a.mp4"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "m.png"), 1)

	walker := newTestWalker()
	files, err := walker.Enumerate(root)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	want := []string{
		filepath.Join(root, "a", "a.mp4"),
		filepath.Join(root, "a", "b.jpg"),
		filepath.Join(root, "m.png"),
		filepath.Join(root, "z.jpg"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d", len(files), len(want))
	}
	for i, f := range files {
		if f.Path != want[i] {
			t.Fatalf("file %d = %q, want %q", i, f.Path, want[i])
		}
	}
}

func TestEnumerateFiltersAndSkips(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "keep.jpg"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "notes.txt"), 1)
	testsupport.WriteFile(t, filepath.Join(root, ".hidden.jpg"), 1)
	testsupport.WriteFile(t, filepath.Join(root, ".cache", "thumb.jpg"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "@eaDir", "synology.jpg"), 1)

	walker := newTestWalker()
	files, err := walker.Enumerate(root)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1: %v", len(files), files)
	}
	if files[0].Name() != "keep.jpg" {
		t.Fatalf("unexpected file: %q", files[0].Path)
	}
	if files[0].Kind != media.KindPhoto {
		t.Fatalf("unexpected kind: %v", files[0].Kind)
	}
}

func TestEnumerateRecordsSize(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "big.mp4"), 4096)

	files, err := newTestWalker().Enumerate(root)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(files) != 1 || files[0].Size != 4096 {
		t.Fatalf("unexpected enumeration: %+v", files)
	}
	if files[0].Kind != media.KindVideo {
		t.Fatalf("unexpected kind: %v", files[0].Kind)
	}
}

func TestEnumerateMissingRoot(t *testing.T) {
	walker := newTestWalker()
	if _, err := walker.Enumerate(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestEnumerateRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.jpg")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := newTestWalker().Enumerate(file); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}
