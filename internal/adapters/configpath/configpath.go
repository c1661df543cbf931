// Package configpath resolves the XDG-style config file location:
// $XDG_CONFIG_HOME/<cli>/config.toml, falling back to
// ~/.config/<cli>/config.toml. This is a thin, non-domain collaborator and
// deliberately has no third-party dependency.
package configpath

import (
	"os"
	"path/filepath"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Resolve returns the config file path for cliName.
func Resolve(cliName string) (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, cliName, "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", domain.ErrHomeNotFound
	}
	return filepath.Join(home, ".config", cliName, "config.toml"), nil
}

// ResolveCacheDir returns the cache directory for cliName.
func ResolveCacheDir(cliName string) (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, cliName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", domain.ErrHomeNotFound
	}
	return filepath.Join(home, ".cache", cliName), nil
}
