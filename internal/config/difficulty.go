package config

// Difficulty is a named board preset. The three standard levels carry
// per-level best-time records; custom boards do not.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
	DifficultyCustom       Difficulty = "custom"
)

// Difficulties lists the selectable presets in display order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyExpert,
		DifficultyCustom,
	}
}

// Valid reports whether d names a known preset.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, DifficultyCustom:
		return true
	}
	return false
}

// Board returns the classic board for a standard preset. Custom
// returns the beginner board; callers resolve custom dimensions via
// Config.Board.
func (d Difficulty) Board() BoardConfig {
	switch d {
	case DifficultyIntermediate:
		return BoardConfig{Width: 16, Height: 16, Mines: 40}
	case DifficultyExpert:
		return BoardConfig{Width: 30, Height: 16, Mines: 99}
	default:
		return BoardConfig{Width: 9, Height: 9, Mines: 10}
	}
}

// Tracked reports whether best times are recorded for this preset.
func (d Difficulty) Tracked() bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyExpert
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyExpert:
		return "Expert"
	case DifficultyCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}
