// Package media models the files the pipeline operates on: their identity,
// size, and extension-derived kind.
package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies a media file by its extension.
type Kind int

const (
	KindPhoto Kind = iota
	KindVideo
)

// String returns the lowercase label used in logs and statistics.
func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// File identifies one media file discovered during the scan. Identity is the
// absolute path; the file is referenced by path throughout a run and never
// duplicated in memory beyond path, size, and kind.
type File struct {
	Path string
	Size int64
	Kind Kind
}

// Name returns the base filename.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Ext returns the lowercased extension including the leading dot.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Path))
}

// IsPhoto reports whether the file was classified as a photo.
func (f File) IsPhoto() bool {
	return f.Kind == KindPhoto
}

// Library holds the recognized photo and video extension sets.
type Library struct {
	photos map[string]struct{}
	videos map[string]struct{}
}

// NewLibrary builds a Library from extension lists. Extensions are lowercased
// and normalized to carry a leading dot.
func NewLibrary(photoExts, videoExts []string) Library {
	return Library{
		photos: buildSet(photoExts),
		videos: buildSet(videoExts),
	}
}

func buildSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// KindOf reports the kind for a path and whether its extension is recognized.
func (l Library) KindOf(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := l.photos[ext]; ok {
		return KindPhoto, true
	}
	if _, ok := l.videos[ext]; ok {
		return KindVideo, true
	}
	return KindPhoto, false
}
