// Package config loads and saves the user's device settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-launchpad/grid"
)

const defaultScanTimeoutMs = 3000

// Config is the persisted settings file.
type Config struct {
	// ProfileName names the device model ("mk2" or "pro").
	ProfileName string `json:"profile,omitempty"`

	// PortName pins the MIDI port pair to use instead of autodetecting.
	PortName string `json:"portName,omitempty"`

	// PalettePath is an optional GIMP palette used for previews.
	PalettePath string `json:"palettePath,omitempty"`

	// ShortMessages sends flash/pulse as 3-byte note messages.
	ShortMessages bool `json:"shortMessages,omitempty"`

	Debug bool `json:"debug,omitempty"`

	// ScanTimeoutMs bounds MIDI port enumeration.
	ScanTimeoutMs int `json:"scanTimeoutMs,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		ProfileName:   grid.Mk2.Name,
		ScanTimeoutMs: defaultScanTimeoutMs,
	}
}

// ConfigDir returns ~/.config/go-launchpad
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(home, ".config", "go-launchpad"), nil
}

// ConfigPath returns ~/.config/go-launchpad/config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads ConfigPath. Without a home directory or a file it returns the
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. Fields missing from the file keep their
// defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return cfg, nil
	case err != nil:
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to ConfigPath.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Profile resolves the configured device profile.
func (c *Config) Profile() (*grid.Profile, error) {
	return grid.ProfileByName(c.ProfileName)
}

// ScanTimeout returns the port scan timeout.
func (c *Config) ScanTimeout() time.Duration {
	if c.ScanTimeoutMs <= 0 {
		return defaultScanTimeoutMs * time.Millisecond
	}
	return time.Duration(c.ScanTimeoutMs) * time.Millisecond
}
