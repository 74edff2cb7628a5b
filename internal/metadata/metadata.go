// Package metadata reads embedded capture timestamps from media files.
package metadata

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Reader produces the embedded capture time of a media file. A missing or
// malformed tag is reported as absent, never as an error; the caller falls
// through to the next date-resolution method.
type Reader interface {
	CaptureTime(path string) (time.Time, bool)
}

// ExifReader extracts EXIF DateTimeOriginal (falling back to DateTime) from
// photo files. Formats without EXIF support simply report absent.
type ExifReader struct{}

// NewExifReader returns the default EXIF-backed reader.
func NewExifReader() *ExifReader {
	return &ExifReader{}
}

func (r *ExifReader) CaptureTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	ts, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
