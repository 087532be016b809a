package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the base data directory for ledgerview.
// It follows the XDG Base Directory Specification:
// - $LEDGERVIEW_DATA_DIR (full override)
// - $XDG_DATA_HOME/ledgerview
// - ~/.local/share/ledgerview (fallback)
func DataDir() (string, error) {
	// Check for full override
	if dir := os.Getenv("LEDGERVIEW_DATA_DIR"); dir != "" {
		return dir, nil
	}

	// Check XDG_DATA_HOME
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "ledgerview"), nil
	}

	// Fallback to ~/.local/share/ledgerview
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "ledgerview"), nil
}

// DocsDir returns the directory holding the documentation store,
// honoring the config override when set.
func DocsDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.Docs.Dir != "" {
		return cfg.Docs.Dir, nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", fmt.Errorf("failed to get data directory: %w", err)
	}
	return filepath.Join(dataDir, "docs"), nil
}
