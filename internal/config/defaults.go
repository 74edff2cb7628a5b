package config

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		Scan: Scan{
			PhotoExtensions: []string{
				".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".heic",
			},
			VideoExtensions: []string{
				".mp4", ".avi", ".mov", ".mkv", ".wmv", ".flv", ".webm", ".m4v",
			},
			SkipDirectories: []string{
				"@eaDir", ".stfolder", "PRIVATE", "THMBNL",
			},
		},
		Organize: Organize{
			Granularity:      string(GranularityYearMonth),
			RemoveDuplicates: false,
			DryRun:           true,
		},
		Hashing: Hashing{
			Algorithm: "sha256",
		},
		Advanced: Advanced{
			SecureDelete: false,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}

func (c *Config) normalize() {
	if c.Hashing.Algorithm == "" {
		c.Hashing.Algorithm = "sha256"
	}
	if c.Organize.Granularity == "" {
		c.Organize.Granularity = string(GranularityNone)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if len(c.Scan.PhotoExtensions) == 0 {
		c.Scan.PhotoExtensions = Default().Scan.PhotoExtensions
	}
	if len(c.Scan.VideoExtensions) == 0 {
		c.Scan.VideoExtensions = Default().Scan.VideoExtensions
	}
}
