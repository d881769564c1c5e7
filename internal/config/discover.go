package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./petesky.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "petesky", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. PETESKY_CONFIG environment variable
//  2. ./petesky.toml (current directory)
//  3. $XDG_CONFIG_HOME/petesky/config.toml
//  4. /etc/petesky/config.toml
//
// A missing config is not an error: ok is false and the caller falls back
// to Default(). A PETESKY_CONFIG that points nowhere is an error, since the
// operator asked for that file explicitly.
func Discover() (path string, ok bool, err error) {
	if envPath := os.Getenv("PETESKY_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", false, fmt.Errorf("PETESKY_CONFIG=%s: %w", envPath, err)
		}
		return envPath, true, nil
	}

	paths := []string{
		"./petesky.toml",
		DefaultPath(),
		"/etc/petesky/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, true, nil
		}
	}
	return "", false, nil
}
