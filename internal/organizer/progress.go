package organizer

import (
	"log/slog"
	"time"

	"photosift/internal/logging"
)

// ProgressSink receives per-phase progress while the engine works through a
// file list. Implementations must be cheap; the engine calls them once per
// file.
type ProgressSink interface {
	Progress(phase string, completed, total int, remaining time.Duration)
}

// LogSink logs sampled progress events through the shared sampler so a large
// tree does not flood the log with one line per file.
type LogSink struct {
	logger  *slog.Logger
	sampler *logging.ProgressSampler
}

// NewLogSink builds a sink that logs at most one event per percent bucket.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{
		logger:  logging.NewComponentLogger(logger, "progress"),
		sampler: logging.NewProgressSampler(0),
	}
}

func (s *LogSink) Progress(phase string, completed, total int, remaining time.Duration) {
	percent := -1.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}
	if !s.sampler.ShouldLog(percent, phase) {
		return
	}
	attrs := []logging.Attr{
		logging.String(logging.FieldPhase, phase),
		logging.Int("completed", completed),
		logging.Int("total", total),
	}
	if remaining > 0 {
		attrs = append(attrs, logging.Duration("eta", remaining.Round(time.Second)))
	}
	s.logger.Info("progress", logging.Args(attrs...)...)
}

// progressTracker wraps a sink with elapsed-time ETA estimation for one phase.
type progressTracker struct {
	sink    ProgressSink
	phase   string
	total   int
	started time.Time
}

func newProgressTracker(sink ProgressSink, phase string, total int) *progressTracker {
	return &progressTracker{sink: sink, phase: phase, total: total, started: time.Now()}
}

func (p *progressTracker) step(completed int) {
	if p.sink == nil {
		return
	}
	var remaining time.Duration
	if completed > 0 && completed < p.total {
		elapsed := time.Since(p.started)
		remaining = elapsed / time.Duration(completed) * time.Duration(p.total-completed)
	}
	p.sink.Progress(p.phase, completed, p.total, remaining)
}
