// Package hashing computes content digests used for byte-for-byte duplicate
// detection.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// Hasher produces a content digest for a file's bytes. A read or permission
// failure is returned to the caller, which excludes the file from the run
// rather than aborting.
type Hasher interface {
	Hash(path string) (string, error)
}

type fileHasher struct {
	factory func() hash.Hash
}

// New returns a streaming Hasher for the given algorithm identifier.
// Supported identifiers are "sha256" (default when empty), "sha1", and "md5".
func New(algorithm string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", "sha256":
		return &fileHasher{factory: sha256.New}, nil
	case "sha1":
		return &fileHasher{factory: sha1.New}, nil
	case "md5":
		return &fileHasher{factory: md5.New}, nil
	default:
		return nil, fmt.Errorf("hash algorithm: unsupported value %q", algorithm)
	}
}

func (h *fileHasher) Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for hashing: %w", err)
	}
	defer f.Close()

	digest := h.factory()
	if _, err := io.Copy(digest, f); err != nil {
		return "", fmt.Errorf("read for hashing: %w", err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
