// Package config provides YAML-based puzzle configuration loading for
// Rolling Cubes.
package config

import (
	"fmt"

	"github.com/vovakirdan/rollingcubes/internal/cubes"
)

// CubesConfig contains all configuration for a Rolling Cubes game.
type CubesConfig struct {
	Goal   int     `yaml:"goal"`   // Orientation code every cube must show
	Layout [][]int `yaml:"layout"` // Start layout; empty means canonical start
	Player string  `yaml:"player"` // Name recorded with results
	Timer  bool    `yaml:"timer"`  // Show elapsed time in the HUD
}

// GoalOrientation returns the configured goal as an orientation.
func (c CubesConfig) GoalOrientation() (cubes.Orientation, error) {
	goal, err := cubes.OrientationOf(c.Goal)
	if err != nil {
		return cubes.Empty, fmt.Errorf("config: goal: %w", err)
	}
	if goal == cubes.Empty {
		return cubes.Empty, fmt.Errorf("config: goal must be between 1 and 6")
	}
	return goal, nil
}

// Board builds the start board described by the configuration.
// A layout that already satisfies the goal is rejected: there is nothing to solve.
func (c CubesConfig) Board() (*cubes.Board, error) {
	goal, err := c.GoalOrientation()
	if err != nil {
		return nil, err
	}

	layout := c.Layout
	if len(layout) == 0 {
		layout = cubes.InitialLayout()
	}

	b, err := cubes.FromLayout(layout, cubes.WithGoal(goal))
	if err != nil {
		return nil, fmt.Errorf("config: layout: %w", err)
	}
	if b.IsSolved() {
		return nil, fmt.Errorf("config: layout is already solved for goal %d", c.Goal)
	}
	return b, nil
}

// Validate checks that the configuration describes a playable board.
func (c CubesConfig) Validate() error {
	_, err := c.Board()
	return err
}
