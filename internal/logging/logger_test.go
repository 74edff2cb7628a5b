package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"photosift/internal/logging"
)

func TestConsoleHandlerPromotesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	component := logging.NewComponentLogger(logger, "organizer")
	component.Info("phase complete", logging.Int("files", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO organizer: phase complete") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "files=3") {
		t.Fatalf("expected files attribute in line: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be promoted into the prefix: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("moved", logging.String("dest", "2024/03/my photo.jpg"))
	if !strings.Contains(buf.String(), `dest="2024/03/my photo.jpg"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "logfmtish"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "run-123")
	ctx = logging.WithPhase(ctx, "organizing")
	logging.WithContext(ctx, logger).Info("working")

	out := buf.String()
	if !strings.Contains(out, "run_id=run-123") {
		t.Fatalf("expected run_id field: %q", out)
	}
	if !strings.Contains(out, "phase=organizing") {
		t.Fatalf("expected phase field: %q", out)
	}
}
