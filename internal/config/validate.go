package config

import (
	"fmt"
	"strings"
)

var supportedHashAlgorithms = map[string]struct{}{
	"sha256": {},
	"sha1":   {},
	"md5":    {},
}

var supportedLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Validate checks every configuration value that later phases depend on.
// Validation failures are reported before any filesystem mutation happens.
func (c *Config) Validate() error {
	if _, err := ParseGranularity(c.Organize.Granularity); err != nil {
		return err
	}

	algorithm := strings.ToLower(strings.TrimSpace(c.Hashing.Algorithm))
	if _, ok := supportedHashAlgorithms[algorithm]; !ok {
		return fmt.Errorf("hash algorithm: unsupported value %q", c.Hashing.Algorithm)
	}

	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if _, ok := supportedLogFormats[format]; !ok {
		return fmt.Errorf("log format: unsupported value %q", c.Logging.Format)
	}

	for _, ext := range append(append([]string{}, c.Scan.PhotoExtensions...), c.Scan.VideoExtensions...) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return fmt.Errorf("scan extensions: empty extension entry")
		}
		if strings.ContainsAny(trimmed, "/\\") {
			return fmt.Errorf("scan extensions: %q is not a file extension", ext)
		}
	}
	return nil
}
