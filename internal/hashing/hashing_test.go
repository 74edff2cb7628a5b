package hashing_test

import (
	"os"
	"path/filepath"
	"testing"

	"photosift/internal/hashing"
)

func TestHashIdenticalContentMatches(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "sub", "b.jpg")
	if err := os.MkdirAll(filepath.Dir(b), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, path := range []string{a, b} {
		if err := os.WriteFile(path, []byte("identical bytes"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	hasher, err := hashing.New("sha256")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	digestA, err := hasher.Hash(a)
	if err != nil {
		t.Fatalf("hash a: %v", err)
	}
	digestB, err := hasher.Hash(b)
	if err != nil {
		t.Fatalf("hash b: %v", err)
	}
	if digestA != digestB {
		t.Fatalf("identical content produced different digests: %q vs %q", digestA, digestB)
	}
	if len(digestA) != 64 {
		t.Fatalf("expected hex sha256 digest, got %q", digestA)
	}
}

func TestHashDistinctContentDiffers(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	if err := os.WriteFile(a, []byte("first"), 0o644); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("second"), 0o644); err != nil {
		t.Fatalf("write b: %v", err)
	}

	hasher, err := hashing.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	digestA, _ := hasher.Hash(a)
	digestB, _ := hasher.Hash(b)
	if digestA == digestB {
		t.Fatal("distinct content produced the same digest")
	}
}

func TestHashMissingFileFails(t *testing.T) {
	hasher, err := hashing.New("md5")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := hasher.Hash(filepath.Join(t.TempDir(), "absent.jpg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := hashing.New("crc32"); err == nil {
		t.Fatal("expected unsupported algorithm error")
	}
}
