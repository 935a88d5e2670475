package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.libro)
	ConfigDir string

	// DatabasePath is the SQLite database file holding books, writers and reviews
	DatabasePath string

	// DebugLogPath is where the TUI writes its debug log when LIBRO_DEBUG is set
	DebugLogPath string
)

// Initialize sets up the configuration directory and resolves the database
// path. LIBRO_DB overrides the default location, which keeps tests and
// throwaway databases away from the real library.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".libro")
	DatabasePath = filepath.Join(ConfigDir, "libro.db")
	DebugLogPath = filepath.Join(ConfigDir, "debug.log")

	if override := os.Getenv("LIBRO_DB"); override != "" {
		DatabasePath = override
	}

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// DebugEnabled reports whether TUI debug logging was requested.
func DebugEnabled() bool {
	return os.Getenv("LIBRO_DEBUG") != ""
}
