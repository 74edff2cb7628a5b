// Package placement computes collision-free destination paths for organized
// files.
package placement

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"photosift/internal/config"
	"photosift/internal/dateresolve"
	"photosift/internal/faults"
	"photosift/internal/media"
)

// Bounded uniquification: if this many suffixes are taken something is wrong
// with the destination tree, not with the inputs.
const maxNameAttempts = 10000

// Plan is the computed (directory, filename) pair one file will be moved to.
// AlreadyPlaced marks files whose parent directory equals the destination;
// they are counted separately from moves.
type Plan struct {
	Source        string
	DestDir       string
	DestPath      string
	AlreadyPlaced bool
}

// NameAllocator hands out destination paths that are free both on disk and
// among the names already claimed in this run. It never reissues a claimed
// name, so two allocations can never share a path.
type NameAllocator struct {
	claimed map[string]struct{}
}

// NewNameAllocator builds an empty allocator for one run.
func NewNameAllocator() *NameAllocator {
	return &NameAllocator{claimed: make(map[string]struct{})}
}

// Claim finds the first free name in dir, starting from the original
// filename and appending _1, _2, ... before the extension. A name is taken
// when it exists on disk or was claimed earlier in this run.
func (a *NameAllocator) Claim(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for attempt := 0; attempt <= maxNameAttempts; attempt++ {
		if attempt > 0 {
			candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, attempt, ext))
		}
		if _, taken := a.claimed[candidate]; taken {
			continue
		}
		_, err := os.Stat(candidate)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", faults.Wrap(faults.ErrItem, "organizing", "probe destination", "cannot check destination path", err)
		}
		a.claimed[candidate] = struct{}{}
		return candidate, nil
	}
	return "", faults.Wrap(faults.ErrInvariant, "organizing", "plan destination",
		fmt.Sprintf("exhausted %d name candidates for %s in %s", maxNameAttempts, name, dir), nil)
}

// Reserve marks an existing path as claimed without allocation.
func (a *NameAllocator) Reserve(path string) {
	a.claimed[path] = struct{}{}
}

// Planner allocates date-derived destination paths under a tree root.
type Planner struct {
	root        string
	granularity config.Granularity
	names       *NameAllocator
}

// NewPlanner builds a planner for one run.
func NewPlanner(root string, granularity config.Granularity) *Planner {
	return &Planner{
		root:        root,
		granularity: granularity,
		names:       NewNameAllocator(),
	}
}

// Plan computes the destination for one file given its resolved date.
// Granularity none is rejected up front; the orchestrator skips the organize
// phase entirely in that mode.
func (p *Planner) Plan(file media.File, date dateresolve.Date) (Plan, error) {
	if p.granularity == config.GranularityNone {
		return Plan{}, faults.Wrap(faults.ErrInvariant, "organizing", "plan destination", "planner invoked with granularity none", nil)
	}

	dir := destDir(p.root, date, p.granularity)
	if filepath.Dir(file.Path) == dir {
		p.names.Reserve(file.Path)
		return Plan{Source: file.Path, DestDir: dir, DestPath: file.Path, AlreadyPlaced: true}, nil
	}

	destPath, err := p.names.Claim(dir, file.Name())
	if err != nil {
		return Plan{}, err
	}
	return Plan{Source: file.Path, DestDir: dir, DestPath: destPath}, nil
}

func destDir(root string, date dateresolve.Date, granularity config.Granularity) string {
	year := fmt.Sprintf("%04d", date.Year)
	month := fmt.Sprintf("%02d", int(date.Month))
	day := fmt.Sprintf("%02d", date.Day)
	switch granularity {
	case config.GranularityYear:
		return filepath.Join(root, year)
	case config.GranularityYearMonth:
		return filepath.Join(root, year, month)
	case config.GranularityYearMonthDay:
		return filepath.Join(root, year, month, day)
	default:
		return root
	}
}
