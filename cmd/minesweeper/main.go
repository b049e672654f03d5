// minesweeper is a terminal minesweeper with mouse support, best time
// tracking, and an SSH server for remote play.
//
// Usage:
//
//	minesweeper play             - Play a game
//	minesweeper scores           - Show best times
//	minesweeper serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.minesweeper/times.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Classic minesweeper played directly in the terminal.

Available commands:
  play     - Start a game
  scores   - View best times per difficulty
  serve    - Start SSH server for remote play

Examples:
  minesweeper play
  minesweeper play --difficulty expert
  minesweeper play --width 24 --height 20 --mines 99
  minesweeper scores
  minesweeper serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minesweeper/times.db", "Path to best times database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
