package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StoragePaths holds the resolved locations of tabstash's own files.
type StoragePaths struct {
	BaseDir    string // per-user data directory
	StateDB    string // sqlite state database
	ConfigFile string // yaml settings file
}

// DetectStoragePaths resolves the per-OS default storage locations.
func DetectStoragePaths() (StoragePaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var baseDir string
	switch runtime.GOOS {
	case "darwin":
		baseDir = filepath.Join(home, "Library/Application Support/tabstash")
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			baseDir = filepath.Join(xdg, "tabstash")
		} else {
			baseDir = filepath.Join(home, ".config/tabstash")
		}
	default:
		return StoragePaths{}, fmt.Errorf("unsupported OS: %s (only macOS and Linux are supported)", runtime.GOOS)
	}

	return StoragePaths{
		BaseDir:    baseDir,
		StateDB:    filepath.Join(baseDir, "state.db"),
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
	}, nil
}

// GetStoragePaths returns the default paths, with the state database
// overridden when a custom location was given.
func GetStoragePaths(customStateDB string) (StoragePaths, error) {
	paths, err := DetectStoragePaths()
	if customStateDB == "" {
		return paths, err
	}
	if err != nil {
		// A custom state path makes the home-dir lookup failure moot.
		paths = StoragePaths{}
	}
	paths.StateDB = customStateDB
	return paths, nil
}
