// Package runlock enforces single-instance execution against a tree root.
//
// The engine assumes no concurrent caller operates on an overlapping tree; a
// flock-backed lock file at the root turns that assumption into a checked
// precondition.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the tree root for the duration of a run.
// It is hidden, so the scanner never picks it up.
const LockFileName = ".photosift.lock"

// Lock guards one tree root.
type Lock struct {
	path string
	fl   *flock.Flock
}

// New prepares a lock for the given tree root without acquiring it.
func New(root string) *Lock {
	path := filepath.Join(root, LockFileName)
	return &Lock{path: path, fl: flock.New(path)}
}

// Acquire takes the lock, failing immediately when another photosift run
// already holds it.
func (l *Lock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another photosift run is already operating on this tree (lock: %s)", l.path)
	}
	return nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
