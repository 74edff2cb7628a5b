// Package faults defines the error taxonomy shared by every pipeline phase.
//
// Errors fall into three classes. Input faults are fatal and reported before
// any filesystem mutation is attempted. Item faults affect a single file; they
// are counted and the run continues. Invariant faults indicate an internal
// logic failure (for example an unresolvable destination collision) and are
// surfaced distinctly from ordinary I/O trouble.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks a fatal problem with the run inputs (missing root,
	// root is not a directory, unusable configuration).
	ErrInput = errors.New("input error")
	// ErrItem marks a per-file failure that must not abort the run.
	ErrItem = errors.New("item error")
	// ErrInvariant marks an internal-logic fault.
	ErrInvariant = errors.New("invariant violation")
)

// Wrap builds an error message that includes phase context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, phase, operation, message string, err error) error {
	detail := buildDetail(phase, operation, message)
	if marker == nil {
		marker = ErrItem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err should abort the run instead of being counted
// against a single file.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInput) || errors.Is(err, ErrInvariant)
}

func buildDetail(phase, operation, message string) string {
	parts := make([]string, 0, 3)
	if phase = strings.TrimSpace(phase); phase != "" {
		parts = append(parts, phase)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
