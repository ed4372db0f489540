package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./vodarr.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vodarr", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. VODARR_CONFIG environment variable
//  2. ./vodarr.toml (current directory)
//  3. $XDG_CONFIG_HOME/vodarr/config.toml
//  4. /etc/vodarr/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("VODARR_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("VODARR_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./vodarr.toml",
		DefaultPath(),
		"/etc/vodarr/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", formatPaths(paths))
}

func formatPaths(paths []string) string {
	return strings.Join(paths, ", ")
}
