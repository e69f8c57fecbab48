package config

import (
	_ "embed"
)

//go:embed defaults/campus.yaml
var defaultCampusYAML []byte

// DefaultCampusConfig returns the default campus walk configuration.
func DefaultCampusConfig() CampusConfig {
	return CampusConfig{
		Player: PlayerConfig{
			Name: "student",
		},
		Keys: KeysConfig{
			Up:       "w",
			Down:     "s",
			Left:     "a",
			Right:    "d",
			Interact: "e",
			Submit:   "ctrl+u",
		},
		Levels: LevelsConfig{
			Dir: "",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCampusYAML
}
