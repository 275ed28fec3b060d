package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNumblast loads the game configuration.
// Search order: customPath -> ~/.numblast/configs/numblast.yaml ->
// ./configs/numblast.yaml -> embedded default.
func LoadNumblast(customPath string) (NumblastConfig, error) {
	var cfg NumblastConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Sanitize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("numblast.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Sanitize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/numblast.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Sanitize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultNumblastYAML, &cfg); err != nil {
		return DefaultNumblastConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Sanitize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numblast", "configs", filename)
}
