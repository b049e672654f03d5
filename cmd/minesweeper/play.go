package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/sound"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagMines      int
	flagNoMarks    bool
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of minesweeper.

Controls:
  Arrows/hjkl   - Move cursor
  Space/Enter   - Reveal cell (also left click)
  F             - Flag/question/unflag (also right click)
  C             - Chord a numbered cell (also middle click)
  P/Esc         - Pause
  R             - Restart with a fresh board
  Q/Ctrl+C      - Quit

Difficulty presets:
  beginner       9x9,   10 mines
  intermediate   16x16, 40 mines
  expert         30x16, 99 mines

Examples:
  minesweeper play
  minesweeper play --difficulty expert
  minesweeper play --width 24 --height 20 --mines 99
  minesweeper play --config ./my-config.yaml --no-marks`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: beginner, intermediate, expert")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width (9-30)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height (9-24)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
	playCmd.Flags().BoolVar(&flagNoMarks, "no-marks", false, "Disable question marks in the flag cycle")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound cues")
}

// resolveConfig merges the config file with command line overrides.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		d := config.Difficulty(flagDifficulty)
		if !d.Valid() {
			return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		cfg.Difficulty = d
	}

	// Any explicit board dimension switches to a custom game
	if flagWidth > 0 || flagHeight > 0 || flagMines > 0 {
		board := cfg.Board()
		if flagWidth > 0 {
			board.Width = flagWidth
		}
		if flagHeight > 0 {
			board.Height = flagHeight
		}
		if flagMines > 0 {
			board.Mines = flagMines
		}
		cfg.Difficulty = config.DifficultyCustom
		cfg.Custom = board
	}

	if flagNoMarks {
		cfg.Marks = false
	}
	if flagNoSound {
		cfg.Sound = false
	}

	cfg.Normalize()
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open best times storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open times database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Start audio; failure just means a silent game
	sounds := sound.NewManager(cfg.Sound)
	if initErr := sounds.Initialize(); initErr != nil {
		sounds.SetEnabled(false)
	}

	runErr := tui.Run(cfg, store, sounds, flagSeed)

	sounds.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
