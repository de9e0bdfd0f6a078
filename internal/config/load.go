package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileNames are searched in order in each candidate directory.
var fileNames = []string{"meshmerge.yaml", "meshmerge.yml", "meshmerge.toml"}

// Load loads configuration with priority: defaults < file < flags.
// A nil f applies no flag overrides.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	configPath := ""
	if f != nil {
		configPath = f.ConfigPath()
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if f != nil {
		f.apply(cfg)
	}
	return cfg, nil
}

// findConfigFile looks in the working directory, then the user config dir.
func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MeshMerge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MeshMerge")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshmerge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshmerge")
	}
}

// loadFromFile decodes path over cfg. Files ending in .toml are TOML,
// everything else is YAML.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
