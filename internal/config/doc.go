// Package config loads, validates, and defaults the photosift configuration.
//
// Configuration comes from a TOML file (default
// ~/.config/photosift/config.toml, project-local photosift.toml fallback)
// merged over built-in defaults. All path handling expands ~ and produces
// absolute paths.
package config
