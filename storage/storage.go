// Package storage locates platform data directories and persists the
// application configuration as TOML.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var appName = "pictriage"

// Init overrides the application data directory name. Call before any
// other storage operation.
func Init(dataDirName string) {
	appName = dataDirName
}

const configFile = "config.toml"

// GetBaseDir returns the base directory for application data:
// - macOS: ~/Library/Application Support/<appName>
// - Linux: $XDG_CONFIG_HOME/<appName> or ~/.config/<appName>
// - Windows: %APPDATA%/<appName>
func GetBaseDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		baseDir = filepath.Join(appData, appName)
	default:
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			baseDir = filepath.Join(configHome, appName)
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			baseDir = filepath.Join(home, ".config", appName)
		}
	}
	return baseDir, nil
}

// GetConfigPath returns the full path of the config file.
func GetConfigPath() (string, error) {
	base, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configFile), nil
}

// EnsureDirectories creates the application data directory tree.
func EnsureDirectories() error {
	base, err := GetBaseDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(base, 0o755)
}
