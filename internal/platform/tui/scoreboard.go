package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

const maxTimes = 100 // Max records to load per difficulty

// ScoreboardKeyMap defines the key bindings for the best times screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextDiff key.Binding
	PrevDiff key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDiff, k.PrevDiff, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextDiff, k.PrevDiff, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDiff: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevDiff: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the best times screen.
type ScoreboardModel struct {
	difficulties []config.Difficulty
	cursor       int
	store        *storage.Store
	times        []storage.TimeEntry
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
}

// NewScoreboardModel creates a new best times model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		difficulties: trackedDifficulties(),
		store:        store,
		keys:         keys,
		help:         h,
		width:        width,
		height:       height,
	}

	m.table = m.createTable()
	m.loadTimes(m.difficulties[0])

	return m
}

// trackedDifficulties returns the presets that keep records.
func trackedDifficulties() []config.Difficulty {
	var tracked []config.Difficulty
	for _, d := range config.Difficulties() {
		if d.Tracked() {
			tracked = append(tracked, d)
		}
	}
	return tracked
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 16},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8 // Leave room for title, tabs, help, margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadTimes loads records for the given difficulty.
func (m *ScoreboardModel) loadTimes(d config.Difficulty) {
	if m.store == nil {
		m.times = nil
		m.updateTableRows()
		return
	}

	times, err := m.store.TopTimes(string(d), maxTimes)
	if err != nil {
		m.times = nil
	} else {
		m.times = times
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current records.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.times))
	for i, e := range m.times {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%ds", e.Seconds),
			e.Player,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDiff):
			m.cursor = (m.cursor + 1) % len(m.difficulties)
			m.loadTimes(m.difficulties[m.cursor])
			return m, nil

		case key.Matches(msg, m.keys.PrevDiff):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.difficulties) - 1
			}
			m.loadTimes(m.difficulties[m.cursor])
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("BEST TIMES"))
	b.WriteString("\n\n")

	// Difficulty tabs
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.difficulties))
	for i, d := range m.difficulties {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(d.Title())
		} else {
			tabs[i] = tabStyle.Render(" " + d.Title() + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	// Table or empty message
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.times) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No times recorded yet.\nClear a board to set the first record!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunScoreboard runs the best times screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
