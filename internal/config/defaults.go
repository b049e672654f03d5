package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration: beginner board, marks
// and sound enabled.
func Default() Config {
	return Config{
		Difficulty: DifficultyBeginner,
		Custom:     BoardConfig{Width: 9, Height: 9, Mines: 10},
		Marks:      true,
		Sound:      true,
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
