// Package config provides YAML-based configuration loading and
// difficulty presets for the minesweeper platform.
package config

// Config contains all user-facing settings. The engine receives only a
// validated board description; everything here is clamped by Normalize
// before it reaches the game.
type Config struct {
	Difficulty Difficulty  `yaml:"difficulty"`
	Custom     BoardConfig `yaml:"custom"` // used when difficulty is "custom"
	Marks      bool        `yaml:"marks"`  // question marks in the flag cycle
	Sound      bool        `yaml:"sound"`
}

// BoardConfig describes the minefield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Board resolves the active board for the configured difficulty.
func (c Config) Board() BoardConfig {
	if c.Difficulty == DifficultyCustom {
		return c.Custom
	}
	return c.Difficulty.Board()
}

// Normalize clamps every value into the engine's supported ranges, so
// the session can treat its inputs as valid by contract. Unknown
// difficulty names fall back to beginner.
func (c *Config) Normalize() {
	if !c.Difficulty.Valid() {
		c.Difficulty = DifficultyBeginner
	}
	c.Custom.Normalize()
}

// Normalize clamps the board into the supported ranges: width 9-30,
// height 9-24, mines 10 to (width-1)*(height-1).
func (b *BoardConfig) Normalize() {
	b.Width = clamp(b.Width, 9, 30)
	b.Height = clamp(b.Height, 9, 24)
	b.Mines = clamp(b.Mines, 10, (b.Width-1)*(b.Height-1))
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
