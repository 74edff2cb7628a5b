package organizer

import (
	"fmt"
	"time"
)

// Stats accumulates the outcome of one engine run. In dry-run mode the
// counters describe what a real run would have done; the tree itself is
// untouched.
type Stats struct {
	RunID  string
	DryRun bool

	FilesFound        int
	DuplicatesFound   int
	DuplicatesRemoved int
	FilesOrganized    int
	AlreadyInPlace    int
	Skipped           int
	FoldersPruned     int
	Errors            int

	// BytesFreed is the total size of removed duplicates (or of duplicates
	// that would be removed, under dry-run).
	BytesFreed int64

	// DateSources counts organized files by the method that produced their
	// date: metadata, filename, or mtime.
	DateSources map[string]int

	Started  time.Time
	Finished time.Time
}

func newStats(runID string, dryRun bool) *Stats {
	return &Stats{
		RunID:       runID,
		DryRun:      dryRun,
		DateSources: make(map[string]int),
		Started:     time.Now(),
	}
}

// Duration reports the elapsed wall time of the run.
func (s *Stats) Duration() time.Duration {
	end := s.Finished
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.Started)
}

// ConsolidateStats accumulates the outcome of one consolidation run.
type ConsolidateStats struct {
	RunID  string
	DryRun bool

	FilesFound        int
	PhotosFound       int
	VideosFound       int
	Moved             int
	AlreadyInPlace    int
	DuplicatesSkipped int
	Errors            int
	BytesMoved        int64

	Started  time.Time
	Finished time.Time
}

// Duration reports the elapsed wall time of the consolidation.
func (s *ConsolidateStats) Duration() time.Duration {
	end := s.Finished
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(s.Started)
}

// HumanBytes renders a byte count in the largest sensible binary unit.
func HumanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
