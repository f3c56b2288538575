package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults %+v", config, DefaultConfig())
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	saved := &Config{
		Window: WindowConfig{Width: 1280, Height: 800},
		Triage: TriageConfig{PreloadRadius: 5, MaxTextureSize: 2048, FeedbackSound: false},
	}
	if err := SaveConfigTo(path, saved); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestLoadConfigMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("window = not toml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfigFrom(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[triage]\npreload_radius = 7\nfeedback_sound = false\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Triage.PreloadRadius != 7 {
		t.Errorf("PreloadRadius = %d, want 7", config.Triage.PreloadRadius)
	}
	if config.Triage.FeedbackSound {
		t.Error("FeedbackSound = true, want false")
	}
	if config.Window.Width != DefaultConfig().Window.Width {
		t.Errorf("Window.Width = %d, want default %d", config.Window.Width, DefaultConfig().Window.Width)
	}
}

func TestLoadConfigClampsNonsenseValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	bad := "[window]\nwidth = 10\nheight = -5\n[triage]\npreload_radius = -1\nmax_texture_size = 2\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if config.Window.Width != def.Window.Width || config.Window.Height != def.Window.Height {
		t.Errorf("window = %+v, want defaults", config.Window)
	}
	if config.Triage.PreloadRadius != def.Triage.PreloadRadius {
		t.Errorf("PreloadRadius = %d, want default", config.Triage.PreloadRadius)
	}
	if config.Triage.MaxTextureSize != def.Triage.MaxTextureSize {
		t.Errorf("MaxTextureSize = %d, want default", config.Triage.MaxTextureSize)
	}
}
