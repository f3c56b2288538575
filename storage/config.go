package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted application configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Triage TriageConfig `toml:"triage"`
}

// WindowConfig persists the last window geometry.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// TriageConfig holds the queue/texture tuning knobs.
type TriageConfig struct {
	// PreloadRadius is how many images beyond the visible page are
	// kept decoded ahead and behind the cursor.
	PreloadRadius int `toml:"preload_radius"`
	// MaxTextureSize caps decode resolution on the longest axis.
	MaxTextureSize int `toml:"max_texture_size"`
	// FeedbackSound toggles the confirmation blip on accept actions.
	FeedbackSound bool `toml:"feedback_sound"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 900, Height: 700},
		Triage: TriageConfig{
			PreloadRadius:  3,
			MaxTextureSize: 1080,
			FeedbackSound:  true,
		},
	}
}

// normalize clamps out-of-range values back to usable defaults so a
// hand-edited file cannot produce a zero-sized window or a negative
// preload radius.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Window.Width < 400 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height < 300 {
		c.Window.Height = def.Window.Height
	}
	if c.Triage.PreloadRadius < 0 {
		c.Triage.PreloadRadius = def.Triage.PreloadRadius
	}
	if c.Triage.MaxTextureSize < 64 {
		c.Triage.MaxTextureSize = def.Triage.MaxTextureSize
	}
}

// LoadConfigFrom reads the config at path. A missing file returns
// defaults; a malformed file is an error.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.normalize()
	return config, nil
}

// SaveConfigTo writes the config to path atomically (temp file plus
// rename).
func SaveConfigTo(path string, config *Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// LoadConfig loads the config from the platform config path.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

// SaveConfig saves the config to the platform config path.
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, config)
}
