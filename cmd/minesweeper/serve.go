package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagIdleTimeout    int
	flagServeDifficult string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minesweeper SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own board. Best times are stored
per-server, so all connected players share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.minesweeper/host_key

Examples:
  minesweeper serve                       # Listen on :23235
  minesweeper serve --ssh :2222           # Listen on port 2222
  minesweeper serve --difficulty expert   # Serve expert boards

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeDifficult, "difficulty", "", "Difficulty preset served to all connections")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg := config.Default()
	if flagServeDifficult != "" {
		d := config.Difficulty(flagServeDifficult)
		if !d.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagServeDifficult)
			os.Exit(1)
		}
		gameCfg.Difficulty = d
	}
	gameCfg.Sound = false // No speaker for remote sessions
	gameCfg.Normalize()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Game:        gameCfg,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting minesweeper SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
