package organizer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
)

// Housekeeping artifacts that do not make a directory worth keeping. They are
// removed together with their otherwise-empty parent.
var housekeepingFiles = map[string]struct{}{
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
}

// pruneEmptyDirs removes directories under root that are empty or contain
// only housekeeping files. Passes repeat bottom-up until a pass removes
// nothing, so a chain of nested empty directories collapses completely. The
// root itself is never removed.
func pruneEmptyDirs(ctx context.Context, root string) (int, error) {
	total := 0
	for {
		removed, err := pruneOnePass(ctx, root)
		total += removed
		if err != nil || removed == 0 {
			return total, err
		}
	}
}

func pruneOnePass(ctx context.Context, root string) (int, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}
		if entry.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Deepest first, so children go before their parents within one pass.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })

	removed := 0
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		ok, err := removeIfPrunable(dir)
		if err != nil {
			continue
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// removeIfPrunable deletes dir when it holds nothing but housekeeping files.
// Those files are unlinked first; any other entry leaves the directory alone.
func removeIfPrunable(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return false, nil
		}
		if _, ok := housekeepingFiles[entry.Name()]; !ok {
			return false, nil
		}
	}
	for _, entry := range entries {
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return false, err
		}
	}
	if err := os.Remove(dir); err != nil {
		return false, err
	}
	return true, nil
}
