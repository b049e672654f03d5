// Package tui provides the Bubble Tea integration: the game screen,
// input mapping, the scoreboard, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to advance the game timer.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires the next timer tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
