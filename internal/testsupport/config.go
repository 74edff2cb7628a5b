package testsupport

import (
	"testing"

	"photosift/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with defaults suitable for engine tests:
// dry-run disabled so mutations actually happen, duplicate removal on, and
// year_month granularity. Options override those choices.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Organize.DryRun = false
	cfg.Organize.RemoveDuplicates = true
	cfg.Organize.Granularity = string(config.GranularityYearMonth)

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithGranularity overrides the organize granularity.
func WithGranularity(g config.Granularity) ConfigOption {
	return func(c *config.Config) {
		c.Organize.Granularity = string(g)
	}
}

// WithDryRun sets the dry-run flag.
func WithDryRun(dryRun bool) ConfigOption {
	return func(c *config.Config) {
		c.Organize.DryRun = dryRun
	}
}

// WithRemoveDuplicates sets the duplicate removal flag.
func WithRemoveDuplicates(remove bool) ConfigOption {
	return func(c *config.Config) {
		c.Organize.RemoveDuplicates = remove
	}
}
