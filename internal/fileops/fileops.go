// Package fileops implements the filesystem collaborators the pipeline
// mutates the tree through: moving files without ever overwriting, and
// deleting duplicates.
package fileops

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Mover relocates a file, creating intermediate directories. It fails loudly
// if the destination already exists; it never silently overwrites.
type Mover interface {
	Move(src, dst string) error
}

// Deleter removes a file.
type Deleter interface {
	Delete(path string) error
}

// LocalMover moves files with os.Rename, falling back to a verified
// copy-then-remove for cross-device moves.
type LocalMover struct{}

func (LocalMover) Move(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("move %s: destination %s already exists", src, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("probe destination %s: %w", dst, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyFileVerified(src, dst); err != nil {
			return fmt.Errorf("cross-device copy: %w", err)
		}
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("remove source after copy: %w", err)
		}
		return nil
	}
	return fmt.Errorf("move %s to %s: %w", src, dst, renameErr)
}

// LocalDeleter removes files. With Secure set, file bytes are overwritten
// with random data before the unlink.
type LocalDeleter struct {
	Secure bool
}

func (d LocalDeleter) Delete(path string) error {
	if d.Secure {
		if err := scrub(path); err != nil {
			return fmt.Errorf("secure delete %s: %w", path, err)
		}
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func scrub(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	remaining := info.Size()
	buf := make([]byte, 32*1024)
	for remaining > 0 {
		chunk := int64(len(buf))
		if remaining < chunk {
			chunk = remaining
		}
		if _, err := rand.Read(buf[:chunk]); err != nil {
			return err
		}
		if _, err := f.Write(buf[:chunk]); err != nil {
			return err
		}
		remaining -= chunk
	}
	return f.Close()
}

// copyFileVerified streams src to dst with SHA256 + size integrity
// verification. The destination is created exclusively so a concurrent
// writer cannot be clobbered; dst is removed on mismatch.
func copyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
