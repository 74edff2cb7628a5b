package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"photosift/internal/metadata"
)

func TestCaptureTimeAbsentForNonExifFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.jpg")
	if err := os.WriteFile(path, []byte("not a real jpeg"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reader := metadata.NewExifReader()
	if _, ok := reader.CaptureTime(path); ok {
		t.Fatal("expected absent capture time for file without EXIF data")
	}
}

func TestCaptureTimeAbsentForMissingFile(t *testing.T) {
	reader := metadata.NewExifReader()
	if _, ok := reader.CaptureTime(filepath.Join(t.TempDir(), "absent.jpg")); ok {
		t.Fatal("expected absent capture time for missing file")
	}
}
