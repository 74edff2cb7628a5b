package organizer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"photosift/internal/config"
	"photosift/internal/faults"
	"photosift/internal/logging"
	"photosift/internal/placement"
)

// ConsolidateOptions adjusts a consolidation run.
type ConsolidateOptions struct {
	// PhotosOnly restricts the move to photo files, leaving videos in place.
	PhotosOnly bool
}

// Consolidate flattens every media file under src directly into dst,
// skipping content duplicates so dst ends up with one copy of each distinct
// file. Name collisions in dst get numeric suffixes. Files already sitting
// directly in dst are hashed for duplicate detection but never moved.
func (e *Engine) Consolidate(ctx context.Context, src, dst string, opts ConsolidateOptions) (*ConsolidateStats, error) {
	src, err := config.ExpandPath(src)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInput, "setup", "resolve source", "cannot resolve source directory", err)
	}
	dst, err = config.ExpandPath(dst)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInput, "setup", "resolve destination", "cannot resolve destination directory", err)
	}
	if src == dst {
		return nil, faults.Wrap(faults.ErrInput, "setup", "validate paths", "source and destination are the same directory", nil)
	}

	dryRun := e.cfg.Organize.DryRun
	runID := uuid.New().String()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, e.logger)

	stats := &ConsolidateStats{RunID: runID, DryRun: dryRun, Started: time.Now()}
	defer func() { stats.Finished = time.Now() }()

	logger.Info("consolidation starting",
		logging.String("source", src),
		logging.String("destination", dst),
		logging.Bool("photos_only", opts.PhotosOnly),
		logging.Bool("dry_run", dryRun))

	files, err := e.walker.Enumerate(src)
	if err != nil {
		return stats, err
	}
	if opts.PhotosOnly {
		photos := files[:0]
		for _, file := range files {
			if file.IsPhoto() {
				photos = append(photos, file)
			}
		}
		files = photos
	}
	stats.FilesFound = len(files)
	for _, file := range files {
		if file.IsPhoto() {
			stats.PhotosFound++
		} else {
			stats.VideosFound++
		}
	}

	if !dryRun {
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return stats, faults.Wrap(faults.ErrInput, "setup", "create destination", "cannot create destination directory", err)
		}
	}

	if _, err := e.index.Scan(ctx, files); err != nil {
		return stats, err
	}
	stats.Errors += e.index.HashErrors()

	duplicates := e.index.FindDuplicates()
	doomed := make(map[string]struct{}, len(duplicates))
	for _, dup := range duplicates {
		doomed[dup.Path] = struct{}{}
	}

	names := placement.NewNameAllocator()
	tracker := newProgressTracker(e.progress, PhaseOrganizing, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		tracker.step(i + 1)

		if _, dup := doomed[file.Path]; dup {
			stats.DuplicatesSkipped++
			logger.Debug("skipping duplicate", logging.String("path", file.Path))
			continue
		}
		if filepath.Dir(file.Path) == dst {
			names.Reserve(file.Path)
			stats.AlreadyInPlace++
			continue
		}

		destPath, err := names.Claim(dst, file.Name())
		if err != nil {
			if faults.IsFatal(err) {
				return stats, err
			}
			stats.Errors++
			continue
		}
		if dryRun {
			logger.Info("would move",
				logging.String("from", file.Path),
				logging.String("to", destPath))
			stats.Moved++
			stats.BytesMoved += file.Size
			continue
		}
		if err := e.mover.Move(file.Path, destPath); err != nil {
			stats.Errors++
			logger.Warn("move failed",
				logging.String("from", file.Path),
				logging.String("to", destPath),
				logging.Error(err))
			continue
		}
		stats.Moved++
		stats.BytesMoved += file.Size
	}

	stats.Finished = time.Now()
	logger.Info("consolidation complete",
		logging.Int("files_found", stats.FilesFound),
		logging.Int("moved", stats.Moved),
		logging.Int("duplicates_skipped", stats.DuplicatesSkipped),
		logging.Int("errors", stats.Errors),
		logging.String("bytes_moved", HumanBytes(stats.BytesMoved)))
	return stats, nil
}
