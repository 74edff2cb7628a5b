// Package dedupe groups files by content digest and derives the set of
// removable duplicates.
package dedupe

import (
	"context"
	"log/slog"

	"photosift/internal/hashing"
	"photosift/internal/logging"
	"photosift/internal/media"
)

// Index accumulates digest to file groupings for one run. Grouping is by
// exact digest equality only. The index classifies files; it never touches
// the filesystem beyond reading bytes for hashing.
type Index struct {
	hasher hashing.Hasher
	logger *slog.Logger

	groups     map[string][]media.File
	order      []string
	unhashable []media.File
}

// NewIndex constructs an index around the given hasher.
func NewIndex(hasher hashing.Hasher, logger *slog.Logger) *Index {
	return &Index{
		hasher: hasher,
		logger: logging.NewComponentLogger(logger, "dedupe"),
		groups: make(map[string][]media.File),
	}
}

// Scan hashes every file and groups them by digest, preserving discovery
// order within each group. Prior state is cleared, so re-running Scan never
// accumulates across calls. Files whose digest cannot be computed are counted
// as errors and excluded; a single unreadable file never aborts the batch.
// The context is polled between files, never mid-hash.
func (x *Index) Scan(ctx context.Context, files []media.File) (map[string][]media.File, error) {
	x.groups = make(map[string][]media.File, len(files))
	x.order = x.order[:0]
	x.unhashable = x.unhashable[:0]

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return x.groups, err
		}
		digest, err := x.hasher.Hash(file.Path)
		if err != nil {
			x.unhashable = append(x.unhashable, file)
			x.logger.Warn("skipping unhashable file",
				logging.String("path", file.Path),
				logging.Error(err))
			continue
		}
		if _, seen := x.groups[digest]; !seen {
			x.order = append(x.order, digest)
		}
		x.groups[digest] = append(x.groups[digest], file)
	}

	x.logger.Info("content scan complete",
		logging.Int("files", len(files)),
		logging.Int("unique_digests", len(x.order)),
		logging.Int("hash_errors", len(x.unhashable)))
	return x.groups, nil
}

// FindDuplicates returns, for every group with more than one member, all
// members except the first-discovered one. Output order follows digest
// first-seen order, so results are deterministic for a fixed enumeration.
func (x *Index) FindDuplicates() []media.File {
	var duplicates []media.File
	for _, digest := range x.order {
		group := x.groups[digest]
		if len(group) > 1 {
			duplicates = append(duplicates, group[1:]...)
		}
	}
	return duplicates
}

// DuplicateGroups returns only the groups holding more than one member.
func (x *Index) DuplicateGroups() map[string][]media.File {
	out := make(map[string][]media.File)
	for digest, group := range x.groups {
		if len(group) > 1 {
			out[digest] = group
		}
	}
	return out
}

// DuplicateBytes sums the sizes of every removable duplicate.
func (x *Index) DuplicateBytes() int64 {
	var total int64
	for _, dup := range x.FindDuplicates() {
		total += dup.Size
	}
	return total
}

// HashErrors reports how many files were excluded because hashing failed.
func (x *Index) HashErrors() int {
	return len(x.unhashable)
}

// Unhashable returns the files excluded because their digest could not be
// computed. A file that cannot be read safely is left out of both duplicate
// classification and any later relocation.
func (x *Index) Unhashable() []media.File {
	return x.unhashable
}
