package main

import (
	"strings"
	"testing"
	"time"

	"photosift/internal/organizer"
)

func TestRenderRunSummary(t *testing.T) {
	stats := &organizer.Stats{
		RunID:             "run-1234",
		DryRun:            true,
		FilesFound:        10,
		DuplicatesFound:   3,
		DuplicatesRemoved: 3,
		BytesFreed:        2048,
		FilesOrganized:    7,
		DateSources:       map[string]int{"filename": 5, "mtime": 2},
		Started:           time.Now().Add(-time.Second),
		Finished:          time.Now(),
	}

	out := renderRunSummary(stats, false)
	for _, want := range []string{"DRY RUN", "Files found", "10", "2.0 KiB", "Dates from filename", "Dates from mtime"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("uncolorized summary must not contain ANSI escapes")
	}
}

func TestRenderRunSummaryColorizedBanner(t *testing.T) {
	stats := &organizer.Stats{RunID: "run-1", DryRun: true, DateSources: map[string]int{}}
	out := renderRunSummary(stats, true)
	if !strings.Contains(out, ansiYellow) {
		t.Fatal("expected colorized dry-run banner")
	}
}

func TestRenderConsolidateSummary(t *testing.T) {
	stats := &organizer.ConsolidateStats{
		RunID:             "run-2",
		FilesFound:        4,
		PhotosFound:       3,
		VideosFound:       1,
		Moved:             3,
		DuplicatesSkipped: 1,
		BytesMoved:        1024,
	}
	out := renderConsolidateSummary(stats, false)
	for _, want := range []string{"Files found", "Duplicates skipped", "1.0 KiB"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "DRY RUN") {
		t.Fatal("non-dry-run summary must not carry the banner")
	}
}
