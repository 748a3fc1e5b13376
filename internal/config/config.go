// Package config defines the MiniWheel configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "io.github.edward-ap.miniwheel"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "MiniWheel"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 720
	// DefaultHeight is the preferred window height.
	DefaultHeight = 560
	// MinWindowWidth keeps the wheel and the editor side by side.
	MinWindowWidth = 480
	// MinWindowHeight keeps the wheel legible.
	MinWindowHeight = 420
	// DefaultVolume sets the initial click and chime level.
	DefaultVolume = 60
)

// Config aggregates the user preferences persisted between sessions. The
// option list and the last result are not stored.
type Config struct {
	WindowW         int  `json:"windowW"`
	WindowH         int  `json:"windowH"`
	WindowX         int  `json:"windowX,omitempty"`
	WindowY         int  `json:"windowY,omitempty"`
	WindowPosValid  bool `json:"windowPosValid,omitempty"`
	EditorCollapsed bool `json:"editorCollapsed"`
	Muted           bool `json:"muted"`
	Volume          int  `json:"volume"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk, writing defaults on first run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := newDefaultConfig()
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := newDefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

func newDefaultConfig() *Config {
	cfg := &Config{
		WindowW: DefaultWidth,
		WindowH: DefaultHeight,
		Volume:  DefaultVolume,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes values after a load so the UI always
// receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH == 0 {
		c.WindowH = DefaultHeight
	}
	if c.WindowH < MinWindowHeight {
		c.WindowH = MinWindowHeight
	}
	if c.Volume < 0 || c.Volume > 100 {
		c.Volume = DefaultVolume
	}
	if !c.WindowPosValid && (c.WindowX != 0 || c.WindowY != 0) {
		c.WindowPosValid = true
	}
}
