package config

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default data directory based on the host OS.
// It prefers standard locations when available and falls back to a dotdir
// in the user's home directory.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./data"
	}

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "siphon")
	}

	// Common Linux/Unix system dir
	if isDir("/var/lib") {
		return "/var/lib/siphon"
	}

	// macOS: ~/Library/Application Support/Siphon
	if isDir(filepath.Join(homeDir, "Library")) {
		return filepath.Join(homeDir, "Library", "Application Support", "Siphon")
	}

	// Windows: %USERPROFILE%/AppData/Local/Siphon
	if isDir(filepath.Join(homeDir, "AppData")) {
		return filepath.Join(homeDir, "AppData", "Local", "Siphon")
	}

	// Fallback: ~/.siphon
	return filepath.Join(homeDir, ".siphon")
}

// DefaultPath returns the config file to load when none was given on the
// command line: $SIPHON_CONFIG if set, then ~/.siphon/config.yaml or
// ./siphon.yaml when one exists. Empty means run on built-in defaults.
func DefaultPath() string {
	if p := os.Getenv("SIPHON_CONFIG"); p != "" {
		return p
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		p := filepath.Join(homeDir, ".siphon", "config.yaml")
		if isFile(p) {
			return p
		}
	}
	if isFile("siphon.yaml") {
		return "siphon.yaml"
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
