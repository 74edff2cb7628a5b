// Package dateresolve produces the best-available capture date for a media
// file using an ordered fallback chain: embedded metadata, filename pattern,
// filesystem modification time.
package dateresolve

import (
	"log/slog"
	"os"
	"time"

	"photosift/internal/faults"
	"photosift/internal/logging"
	"photosift/internal/media"
	"photosift/internal/metadata"
)

// Source records which resolution method produced a date.
type Source int

const (
	SourceMetadata Source = iota
	SourceFilename
	SourceMtime
)

func (s Source) String() string {
	switch s {
	case SourceMetadata:
		return "metadata"
	case SourceFilename:
		return "filename"
	case SourceMtime:
		return "mtime"
	default:
		return "unknown"
	}
}

// Date is a resolved calendar date plus its provenance. It is always a valid
// calendar date; the mtime fallback guarantees a value exists for any
// stat-able file.
type Date struct {
	Year   int
	Month  time.Month
	Day    int
	Source Source
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Resolver walks the fallback chain for one file at a time.
type Resolver struct {
	reader metadata.Reader
	logger *slog.Logger
}

// NewResolver constructs a resolver around the given metadata reader. A nil
// reader disables the metadata step.
func NewResolver(reader metadata.Reader, logger *slog.Logger) *Resolver {
	return &Resolver{
		reader: reader,
		logger: logging.NewComponentLogger(logger, "dateresolve"),
	}
}

// Resolve produces a date for the file. The only failure mode is a file that
// cannot be stat-ed; everything else falls through to the next method. A
// present-but-malformed metadata field is treated as absent, and a filename
// pattern that yields an invalid calendar date is treated as a non-match.
func (r *Resolver) Resolve(file media.File) (Date, error) {
	if r.reader != nil && file.IsPhoto() {
		if ts, ok := r.reader.CaptureTime(file.Path); ok {
			return Date{Year: ts.Year(), Month: ts.Month(), Day: ts.Day(), Source: SourceMetadata}, nil
		}
	}

	if year, month, day, ok := fromFilename(file.Name()); ok {
		return Date{Year: year, Month: month, Day: day, Source: SourceFilename}, nil
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		return Date{}, faults.Wrap(faults.ErrItem, "organizing", "resolve date", "file is not stat-able", err)
	}
	mtime := info.ModTime()
	r.logger.Debug("falling back to modification time", logging.String("path", file.Path))
	return Date{Year: mtime.Year(), Month: mtime.Month(), Day: mtime.Day(), Source: SourceMtime}, nil
}

// FromFilename exposes the pattern chain for direct use; it reports whether
// any pattern matched and survived calendar validation.
func FromFilename(name string) (Date, bool) {
	year, month, day, ok := fromFilename(name)
	if !ok {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day, Source: SourceFilename}, true
}
