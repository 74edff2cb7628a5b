package organizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"photosift/internal/config"
	"photosift/internal/dateresolve"
	"photosift/internal/dedupe"
	"photosift/internal/faults"
	"photosift/internal/fileops"
	"photosift/internal/hashing"
	"photosift/internal/logging"
	"photosift/internal/media"
	"photosift/internal/metadata"
	"photosift/internal/placement"
	"photosift/internal/runlock"
	"photosift/internal/scan"
)

// Phase names, in execution order. They appear in logs and progress events.
const (
	PhaseScanning      = "scanning"
	PhaseDeduplicating = "deduplicating"
	PhaseOrganizing    = "organizing"
	PhasePruning       = "pruning"
)

// TreeWalker enumerates media files under a root.
type TreeWalker interface {
	Enumerate(root string) ([]media.File, error)
}

// Engine coordinates the phases of a run. Construct with New for production
// wiring or NewWithDependencies to substitute collaborators in tests.
type Engine struct {
	cfg      *config.Config
	logger   *slog.Logger
	walker   TreeWalker
	index    *dedupe.Index
	resolver *dateresolve.Resolver
	mover    fileops.Mover
	deleter  fileops.Deleter
	progress ProgressSink
}

// New wires an engine from configuration alone.
func New(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	hasher, err := hashing.New(cfg.Hashing.Algorithm)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInput, "setup", "build hasher", "unsupported hash algorithm", err)
	}
	library := media.NewLibrary(cfg.Scan.PhotoExtensions, cfg.Scan.VideoExtensions)
	return NewWithDependencies(Dependencies{
		Config:   cfg,
		Logger:   logger,
		Walker:   scan.NewWalker(library, cfg.Scan.SkipDirectories),
		Hasher:   hasher,
		Metadata: metadata.NewExifReader(),
		Mover:    fileops.LocalMover{},
		Deleter:  fileops.LocalDeleter{Secure: cfg.Advanced.SecureDelete},
		Progress: NewLogSink(logger),
	}), nil
}

// Dependencies carries the engine collaborators for explicit wiring.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Walker   TreeWalker
	Hasher   hashing.Hasher
	Metadata metadata.Reader
	Mover    fileops.Mover
	Deleter  fileops.Deleter
	Progress ProgressSink
}

// NewWithDependencies wires an engine from explicit collaborators.
func NewWithDependencies(deps Dependencies) *Engine {
	logger := logging.NewComponentLogger(deps.Logger, "organizer")
	return &Engine{
		cfg:      deps.Config,
		logger:   logger,
		walker:   deps.Walker,
		index:    dedupe.NewIndex(deps.Hasher, deps.Logger),
		resolver: dateresolve.NewResolver(deps.Metadata, deps.Logger),
		mover:    deps.Mover,
		deleter:  deps.Deleter,
		progress: deps.Progress,
	}
}

// Run executes the phase sequence against root and returns the accumulated
// statistics. Per-file failures are counted and skipped; the returned error
// is non-nil only for input faults, invariant violations, or cancellation.
// Statistics reflect partial progress even when an error is returned.
func (e *Engine) Run(ctx context.Context, root string) (*Stats, error) {
	root, err := config.ExpandPath(root)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInput, "setup", "resolve root", "cannot resolve tree root", err)
	}

	dryRun := e.cfg.Organize.DryRun
	runID := uuid.New().String()
	ctx = logging.WithRunID(ctx, runID)
	stats := newStats(runID, dryRun)
	defer func() { stats.Finished = time.Now() }()

	logger := logging.WithContext(ctx, e.logger)
	logger.Info("run starting",
		logging.String("root", root),
		logging.String("granularity", string(e.cfg.OrganizeGranularity())),
		logging.Bool("remove_duplicates", e.cfg.Organize.RemoveDuplicates),
		logging.Bool("dry_run", dryRun))

	files, err := e.scanPhase(ctx, root, stats)
	if err != nil {
		return stats, err
	}

	// The lock file is created inside the tree, so it is deferred until the
	// scan has validated the root. Dry-run never takes the lock; a run with
	// zero mutations must leave zero artifacts behind.
	if !dryRun {
		lock := runlock.New(root)
		if err := lock.Acquire(); err != nil {
			return stats, faults.Wrap(faults.ErrInput, "setup", "acquire lock", "tree is locked by another run", err)
		}
		defer lock.Release()
	}

	survivors := files
	if e.cfg.Organize.RemoveDuplicates {
		survivors, err = e.dedupePhase(ctx, files, stats)
		if err != nil {
			return stats, err
		}
	}

	if e.cfg.OrganizeGranularity() == config.GranularityNone {
		stats.Skipped += len(survivors)
		logger.Info("organizing disabled", logging.Int("skipped", len(survivors)))
	} else if err := e.organizePhase(ctx, root, survivors, stats); err != nil {
		return stats, err
	}

	if !dryRun {
		if err := e.prunePhase(ctx, root, stats); err != nil {
			return stats, err
		}
	}

	stats.Finished = time.Now()
	logger.Info("run complete",
		logging.Int("files_found", stats.FilesFound),
		logging.Int("duplicates_removed", stats.DuplicatesRemoved),
		logging.Int("files_organized", stats.FilesOrganized),
		logging.Int("folders_pruned", stats.FoldersPruned),
		logging.Int("errors", stats.Errors),
		logging.Duration("duration", stats.Duration().Round(time.Millisecond)))
	return stats, nil
}

func (e *Engine) scanPhase(ctx context.Context, root string, stats *Stats) ([]media.File, error) {
	ctx = logging.WithPhase(ctx, PhaseScanning)
	logger := logging.WithContext(ctx, e.logger)

	files, err := e.walker.Enumerate(root)
	if err != nil {
		return nil, err
	}
	stats.FilesFound = len(files)
	logger.Info("scan complete", logging.Int("files", len(files)))
	return files, nil
}

// dedupePhase hashes the file list, deletes every non-first group member, and
// returns the files that remain candidates for organizing. All identified
// duplicates are excluded from the survivor list even when their deletion
// fails; a file classified for removal is never reorganized in the same run.
func (e *Engine) dedupePhase(ctx context.Context, files []media.File, stats *Stats) ([]media.File, error) {
	ctx = logging.WithPhase(ctx, PhaseDeduplicating)
	logger := logging.WithContext(ctx, e.logger)

	if _, err := e.index.Scan(ctx, files); err != nil {
		return nil, err
	}
	stats.Errors += e.index.HashErrors()

	duplicates := e.index.FindDuplicates()
	stats.DuplicatesFound = len(duplicates)

	// Unhashable files stay on disk but are withheld from organizing; a file
	// that cannot be read safely is not worth relocating either.
	doomed := make(map[string]struct{}, len(duplicates)+e.index.HashErrors())
	for _, bad := range e.index.Unhashable() {
		doomed[bad.Path] = struct{}{}
	}
	tracker := newProgressTracker(e.progress, PhaseDeduplicating, len(duplicates))
	for i, dup := range duplicates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doomed[dup.Path] = struct{}{}

		if e.cfg.Organize.DryRun {
			logger.Info("would remove duplicate",
				logging.String("path", dup.Path),
				logging.Int64("bytes", dup.Size))
			stats.DuplicatesRemoved++
			stats.BytesFreed += dup.Size
		} else if err := e.deleter.Delete(dup.Path); err != nil {
			stats.Errors++
			logger.Warn("duplicate removal failed",
				logging.String("path", dup.Path),
				logging.Error(err))
		} else {
			stats.DuplicatesRemoved++
			stats.BytesFreed += dup.Size
			logger.Debug("removed duplicate", logging.String("path", dup.Path))
		}
		tracker.step(i + 1)
	}

	survivors := make([]media.File, 0, len(files)-len(doomed))
	for _, file := range files {
		if _, gone := doomed[file.Path]; !gone {
			survivors = append(survivors, file)
		}
	}
	logger.Info("deduplication complete",
		logging.Int("duplicates", len(duplicates)),
		logging.Int("removed", stats.DuplicatesRemoved),
		logging.String("space_freed", HumanBytes(stats.BytesFreed)))
	return survivors, nil
}

func (e *Engine) organizePhase(ctx context.Context, root string, files []media.File, stats *Stats) error {
	ctx = logging.WithPhase(ctx, PhaseOrganizing)
	logger := logging.WithContext(ctx, e.logger)

	planner := placement.NewPlanner(root, e.cfg.OrganizeGranularity())
	tracker := newProgressTracker(e.progress, PhaseOrganizing, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		tracker.step(i + 1)

		date, err := e.resolver.Resolve(file)
		if err != nil {
			stats.Errors++
			logger.Warn("date resolution failed",
				logging.String("path", file.Path),
				logging.Error(err))
			continue
		}

		plan, err := planner.Plan(file, date)
		if err != nil {
			if faults.IsFatal(err) {
				return err
			}
			stats.Errors++
			logger.Warn("placement failed",
				logging.String("path", file.Path),
				logging.Error(err))
			continue
		}
		if plan.AlreadyPlaced {
			stats.AlreadyInPlace++
			continue
		}

		if e.cfg.Organize.DryRun {
			logger.Info("would move",
				logging.String("from", plan.Source),
				logging.String("to", plan.DestPath),
				logging.String("date_source", date.Source.String()))
			stats.FilesOrganized++
			stats.DateSources[date.Source.String()]++
			continue
		}
		if err := e.mover.Move(plan.Source, plan.DestPath); err != nil {
			stats.Errors++
			logger.Warn("move failed",
				logging.String("from", plan.Source),
				logging.String("to", plan.DestPath),
				logging.Error(err))
			continue
		}
		stats.FilesOrganized++
		stats.DateSources[date.Source.String()]++
		logger.Debug("moved",
			logging.String("from", plan.Source),
			logging.String("to", plan.DestPath))
	}

	logger.Info("organizing complete",
		logging.Int("organized", stats.FilesOrganized),
		logging.Int("already_in_place", stats.AlreadyInPlace))
	return nil
}

func (e *Engine) prunePhase(ctx context.Context, root string, stats *Stats) error {
	ctx = logging.WithPhase(ctx, PhasePruning)
	logger := logging.WithContext(ctx, e.logger)

	pruned, err := pruneEmptyDirs(ctx, root)
	stats.FoldersPruned += pruned
	if err != nil {
		return err
	}
	logger.Info("pruning complete", logging.Int("folders_pruned", pruned))
	return nil
}
