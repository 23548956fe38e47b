package internal

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user settings read from config.yaml. Zero values mean
// "use the default", so a missing or partial file is fine.
type Config struct {
	// SortOrder lists extensions (no dot) that the sort command puts
	// first, in this order.
	SortOrder []string `yaml:"sortOrder"`
	// CloseSettleMs is waited after the batch close before reopening.
	CloseSettleMs int `yaml:"closeSettleMs"`
	// OpenPacingMs is waited between successive reopens.
	OpenPacingMs int `yaml:"openPacingMs"`
	// DocumentScheme is the resource scheme eligible for restore.
	DocumentScheme string `yaml:"documentScheme"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		CloseSettleMs:  100,
		OpenPacingMs:   50,
		DocumentScheme: "file",
	}
}

// LoadConfig reads settings from path, overlaying them on the defaults.
// A missing file yields the defaults; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &StorageError{Path: path, Op: "read", Err: err}
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, &StorageError{Path: path, Op: "parse", Err: err}
	}

	if len(overlay.SortOrder) > 0 {
		cfg.SortOrder = overlay.SortOrder
	}
	if overlay.CloseSettleMs > 0 {
		cfg.CloseSettleMs = overlay.CloseSettleMs
	}
	if overlay.OpenPacingMs > 0 {
		cfg.OpenPacingMs = overlay.OpenPacingMs
	}
	if overlay.DocumentScheme != "" {
		cfg.DocumentScheme = overlay.DocumentScheme
	}
	return cfg, nil
}

// Delays converts the configured pacing into executor delays.
func (c Config) Delays() Delays {
	return Delays{
		CloseSettle: time.Duration(c.CloseSettleMs) * time.Millisecond,
		OpenPacing:  time.Duration(c.OpenPacingMs) * time.Millisecond,
	}
}
