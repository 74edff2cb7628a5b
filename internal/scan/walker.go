// Package scan enumerates the media files under a tree root in a fixed,
// reproducible order.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"photosift/internal/faults"
	"photosift/internal/media"
)

// Walker enumerates recognized media files beneath a root. Enumeration is
// depth-first and lexicographic so duplicate first-occurrence and collision
// resolution stay deterministic for a given tree.
type Walker struct {
	library  media.Library
	skipDirs map[string]struct{}
}

// NewWalker builds a walker that recognizes the given extension library and
// skips the named directories (in addition to hidden entries).
func NewWalker(library media.Library, skipDirs []string) *Walker {
	skip := make(map[string]struct{}, len(skipDirs))
	for _, name := range skipDirs {
		name = strings.TrimSpace(name)
		if name != "" {
			skip[name] = struct{}{}
		}
	}
	return &Walker{library: library, skipDirs: skip}
}

// Enumerate returns every recognized media file under root in traversal
// order. The root must exist and be a directory; anything else is an input
// fault. Unreadable subdirectories are skipped so one bad branch does not
// abort the scan.
func (w *Walker) Enumerate(root string) ([]media.File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInput, "scanning", "stat root", "root directory is not accessible", err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrInput, "scanning", "stat root", "root is not a directory", nil)
	}

	var files []media.File
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || w.skipped(name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		kind, ok := w.library.KindOf(path)
		if !ok {
			return nil
		}
		// A file that vanished or cannot be stat-ed between listing and here
		// is simply left out of the run.
		fi, statErr := entry.Info()
		if statErr != nil {
			return nil
		}
		files = append(files, media.File{Path: path, Size: fi.Size(), Kind: kind})
		return nil
	})
	if err != nil {
		return nil, faults.Wrap(faults.ErrInput, "scanning", "walk tree", "failed to enumerate root", err)
	}
	return files, nil
}

func (w *Walker) skipped(name string) bool {
	_, ok := w.skipDirs[name]
	return ok
}
