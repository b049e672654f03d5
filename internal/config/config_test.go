package config

import "testing"

func TestDifficultyBoards(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		w, h, m    int
	}{
		{DifficultyBeginner, 9, 9, 10},
		{DifficultyIntermediate, 16, 16, 40},
		{DifficultyExpert, 30, 16, 99},
	}
	for _, tc := range tests {
		b := tc.difficulty.Board()
		if b.Width != tc.w || b.Height != tc.h || b.Mines != tc.m {
			t.Errorf("%s board = %+v, expected %dx%d/%d", tc.difficulty, b, tc.w, tc.h, tc.m)
		}
	}
}

func TestBoardNormalizeClamps(t *testing.T) {
	tests := []struct {
		name    string
		in, out BoardConfig
	}{
		{"too small", BoardConfig{Width: 1, Height: 1, Mines: 1}, BoardConfig{Width: 9, Height: 9, Mines: 10}},
		{"too large", BoardConfig{Width: 99, Height: 99, Mines: 9999}, BoardConfig{Width: 30, Height: 24, Mines: 29 * 23}},
		{"valid passes through", BoardConfig{Width: 16, Height: 16, Mines: 40}, BoardConfig{Width: 16, Height: 16, Mines: 40}},
		{"mines capped to board", BoardConfig{Width: 9, Height: 9, Mines: 80}, BoardConfig{Width: 9, Height: 9, Mines: 64}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.in
			b.Normalize()
			if b != tc.out {
				t.Errorf("Normalize(%+v) = %+v, expected %+v", tc.in, b, tc.out)
			}
		})
	}
}

func TestConfigNormalizeUnknownDifficulty(t *testing.T) {
	cfg := Config{Difficulty: "nightmare"}
	cfg.Normalize()
	if cfg.Difficulty != DifficultyBeginner {
		t.Errorf("difficulty = %s, expected beginner fallback", cfg.Difficulty)
	}
}

func TestCustomBoardResolution(t *testing.T) {
	cfg := Config{
		Difficulty: DifficultyCustom,
		Custom:     BoardConfig{Width: 20, Height: 12, Mines: 50},
	}
	if b := cfg.Board(); b != cfg.Custom {
		t.Errorf("Board() = %+v, expected the custom board", b)
	}

	cfg.Difficulty = DifficultyExpert
	if b := cfg.Board(); b != DifficultyExpert.Board() {
		t.Errorf("Board() = %+v, expected the expert preset", b)
	}
}

func TestTracked(t *testing.T) {
	if !DifficultyBeginner.Tracked() || !DifficultyExpert.Tracked() {
		t.Error("standard presets should be tracked")
	}
	if DifficultyCustom.Tracked() {
		t.Error("custom boards should not be tracked")
	}
}
