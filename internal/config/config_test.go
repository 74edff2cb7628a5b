package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"photosift/internal/config"
)

func TestLoadDefaultsWhenNoFilePresent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd returned error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.OrganizeGranularity() != config.GranularityYearMonth {
		t.Fatalf("unexpected default granularity: %q", cfg.Organize.Granularity)
	}
	if !cfg.Organize.DryRun {
		t.Fatal("expected dry-run default to be true")
	}
	if cfg.Organize.RemoveDuplicates {
		t.Fatal("expected duplicate removal disabled by default")
	}
	if cfg.Hashing.Algorithm != "sha256" {
		t.Fatalf("unexpected default hash algorithm: %q", cfg.Hashing.Algorithm)
	}
	if len(cfg.Scan.PhotoExtensions) == 0 || cfg.Scan.PhotoExtensions[0] != ".jpg" {
		t.Fatalf("unexpected photo extensions: %v", cfg.Scan.PhotoExtensions)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "photosift.toml")

	type payload struct {
		Organize struct {
			Granularity      string `toml:"granularity"`
			RemoveDuplicates bool   `toml:"remove_duplicates"`
			DryRun           bool   `toml:"dry_run"`
		} `toml:"organize"`
		Hashing struct {
			Algorithm string `toml:"algorithm"`
		} `toml:"hashing"`
	}
	custom := payload{}
	custom.Organize.Granularity = "year_month_day"
	custom.Organize.RemoveDuplicates = true
	custom.Organize.DryRun = false
	custom.Hashing.Algorithm = "md5"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.OrganizeGranularity() != config.GranularityYearMonthDay {
		t.Fatalf("unexpected granularity: %q", cfg.Organize.Granularity)
	}
	if !cfg.Organize.RemoveDuplicates {
		t.Fatal("expected remove_duplicates true")
	}
	if cfg.Organize.DryRun {
		t.Fatal("expected dry_run false")
	}
	if cfg.Hashing.Algorithm != "md5" {
		t.Fatalf("unexpected algorithm: %q", cfg.Hashing.Algorithm)
	}
	// Omitted sections keep their defaults.
	if len(cfg.Scan.VideoExtensions) == 0 {
		t.Fatal("expected default video extensions to survive merge")
	}
}

func TestLoadRejectsBadGranularity(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "photosift.toml")
	body := "[organize]\ngranularity = \"decade\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected granularity validation error")
	}
}

func TestLoadRejectsBadAlgorithm(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "photosift.toml")
	body := "[hashing]\nalgorithm = \"crc32\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected algorithm validation error")
	}
}

func TestParseGranularity(t *testing.T) {
	cases := []struct {
		in      string
		want    config.Granularity
		wantErr bool
	}{
		{"none", config.GranularityNone, false},
		{"", config.GranularityNone, false},
		{"YEAR", config.GranularityYear, false},
		{" year_month ", config.GranularityYearMonth, false},
		{"year_month_day", config.GranularityYearMonthDay, false},
		{"week", config.GranularityNone, true},
	}
	for _, tc := range cases {
		got, err := config.ParseGranularity(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseGranularity(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseGranularity(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseGranularity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.OrganizeGranularity() != config.GranularityYearMonth {
		t.Fatalf("sample should match defaults, got %q", cfg.Organize.Granularity)
	}
}
