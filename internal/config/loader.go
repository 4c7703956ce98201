package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.tui-2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Keys missing from the file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(userCfgPath, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "t2048.yaml")); err == nil {
		if cfg, err := parse("configs/t2048.yaml", data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse("embedded default", defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults and validates the result.
func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-2048", "config.yaml")
}
