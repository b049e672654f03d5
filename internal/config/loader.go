package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.minesweeper/config.yaml ->
// ./configs/minesweeper.yaml -> embedded default.
// The returned config is always normalized.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Explicit path: errors are reported, not silently skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/minesweeper.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minesweeper", filename)
}
