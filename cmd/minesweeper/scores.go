package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times",
	Long: `Display the fastest recorded times.

Without arguments, prints the top times for every standard difficulty.
With a difficulty argument, prints only that leaderboard.

Examples:
  minesweeper scores
  minesweeper scores expert
  minesweeper scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse times in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of times to show per difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening times database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if tuiErr := tui.RunScoreboard(store, width, height); tuiErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tuiErr)
			os.Exit(1)
		}
		return
	}

	difficulties := []config.Difficulty{
		config.DifficultyBeginner,
		config.DifficultyIntermediate,
		config.DifficultyExpert,
	}
	if len(args) == 1 {
		d := config.Difficulty(args[0])
		if !d.Valid() || !d.Tracked() {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Tracked difficulties: beginner, intermediate, expert")
			os.Exit(1)
		}
		difficulties = []config.Difficulty{d}
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		printTimes(store, d)
	}
}

// printTimes prints one difficulty's leaderboard as a plain table.
func printTimes(store *storage.Store, d config.Difficulty) {
	fmt.Printf("Best Times - %s\n", d.Title())
	fmt.Println()

	times, err := store.TopTimes(string(d), flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
		return
	}

	if len(times) == 0 {
		fmt.Println("  No times recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-20s  %s\n", "Rank", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-20s  %s\n", "----", "----", "------", "----")
	for i, entry := range times {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-20s  %s\n", i+1, fmt.Sprintf("%ds", entry.Seconds), entry.Player, dateStr)
	}
}
