package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCampus loads the campus walk configuration.
// Search order: customPath -> ~/.quizwalk/configs/campus.yaml -> ./configs/campus.yaml -> embedded default
func LoadCampus(customPath string) (CampusConfig, error) {
	var cfg CampusConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		fillKeyDefaults(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("campus.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				fillKeyDefaults(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/campus.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			fillKeyDefaults(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCampusYAML, &cfg); err != nil {
		return DefaultCampusConfig(), nil // Fallback to hardcoded if embed fails
	}
	fillKeyDefaults(&cfg)
	return cfg, nil
}

// fillKeyDefaults backfills bindings a partial config file left out.
func fillKeyDefaults(cfg *CampusConfig) {
	def := DefaultCampusConfig()
	if cfg.Keys.Up == "" {
		cfg.Keys.Up = def.Keys.Up
	}
	if cfg.Keys.Down == "" {
		cfg.Keys.Down = def.Keys.Down
	}
	if cfg.Keys.Left == "" {
		cfg.Keys.Left = def.Keys.Left
	}
	if cfg.Keys.Right == "" {
		cfg.Keys.Right = def.Keys.Right
	}
	if cfg.Keys.Interact == "" {
		cfg.Keys.Interact = def.Keys.Interact
	}
	if cfg.Keys.Submit == "" {
		cfg.Keys.Submit = def.Keys.Submit
	}
	if cfg.Player.Name == "" {
		cfg.Player.Name = def.Player.Name
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quizwalk", "configs", filename)
}
