// Package config provides YAML-based configuration loading for the
// quizwalk platform.
package config

// CampusConfig contains all configuration for the campus walk game.
type CampusConfig struct {
	Player PlayerConfig `yaml:"player"`
	Keys   KeysConfig   `yaml:"keys"`
	Levels LevelsConfig `yaml:"levels"`
}

// PlayerConfig identifies the player for result records.
type PlayerConfig struct {
	Name string `yaml:"name"`
}

// KeysConfig defines the default key bindings. A level's player descriptor
// may override the movement keys for that level.
type KeysConfig struct {
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	Left     string `yaml:"left"`
	Right    string `yaml:"right"`
	Interact string `yaml:"interact"`
	Submit   string `yaml:"submit"`
}

// LevelsConfig points the loader at a directory of level files.
// Empty means the embedded default levels.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}
