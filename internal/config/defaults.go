package config

import (
	_ "embed"

	"github.com/vovakirdan/rollingcubes/internal/cubes"
)

//go:embed defaults/cubes.yaml
var defaultCubesYAML []byte

// DefaultCubesConfig returns the default Rolling Cubes configuration.
func DefaultCubesConfig() CubesConfig {
	return CubesConfig{
		Goal:   cubes.DefaultGoal.Int(),
		Layout: nil,
		Player: "",
		Timer:  true,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCubesYAML
}
