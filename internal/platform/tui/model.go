package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/game"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/sound"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// eventSink collects session notifications raised during an input
// event, so the model can react after the call returns. The session
// notifies synchronously and the model is a Bubble Tea value type, so
// the sink is the shared pointer between them.
type eventSink struct {
	ticked  bool
	ended   bool
	won     bool
	newBest int // seconds, 0 when none
}

func (e *eventSink) CellChanged(x, y int)             {}
func (e *eventSink) MineCounterChanged(remaining int) {}
func (e *eventSink) TimerChanged(seconds int)         { e.ticked = true }
func (e *eventSink) GameEnded(won bool)               { e.ended = true; e.won = won }
func (e *eventSink) NewBest(seconds int)              { e.newBest = seconds }

func (e *eventSink) reset() { *e = eventSink{} }

// Model is the Bubble Tea model for the game screen.
type Model struct {
	session *game.Session
	sink    *eventSink
	screen  *core.Screen
	store   *storage.Store
	sounds  *sound.Manager
	cfg     config.Config

	keys KeyMap
	help help.Model

	cursorX, cursorY int
	board            core.Rect

	// Best time for the current difficulty, NoRecord when unset
	bestTime   int
	bestHolder string

	// Name entry overlay, shown after beating the record
	nameInput    textinput.Model
	enteringName bool
	recordToSave int

	quitting bool
}

// NewModel creates the game screen model.
func NewModel(cfg config.Config, store *storage.Store, sounds *sound.Manager, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := cfg.Board()
	sink := &eventSink{}
	session := game.NewSession(game.Config{
		Width:  board.Width,
		Height: board.Height,
		Mines:  board.Mines,
		Marks:  cfg.Marks,
	}, seed)
	session.SetListener(sink)

	h := help.New()
	h.ShowAll = false

	ti := textinput.New()
	ti.Placeholder = "Anonymous"
	ti.CharLimit = 20
	ti.Width = 22

	m := Model{
		session:   session,
		sink:      sink,
		store:     store,
		sounds:    sounds,
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		cursorX:   1,
		cursorY:   1,
		bestTime:  storage.NoRecord,
		board:     boardRect(board.Width, board.Height),
		nameInput: ti,
	}

	frameW, frameH := frameSize(board.Width, board.Height)
	m.screen = core.NewScreen(frameW, frameH)

	m.loadBestTime()
	return m
}

// loadBestTime fetches the stored record for the current difficulty.
func (m *Model) loadBestTime() {
	m.bestTime = storage.NoRecord
	m.bestHolder = ""
	if m.store == nil || !m.cfg.Difficulty.Tracked() {
		return
	}
	if seconds, player, err := m.store.BestTime(string(m.cfg.Difficulty)); err == nil {
		m.bestTime = seconds
		m.bestHolder = player
	}
	m.session.SetBestTime(m.bestTime)
}

// Init starts the timer loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.enteringName {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// Pause when the terminal loses focus
		m.session.Pause()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, h := m.session.Width(), m.session.Height()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursorY = core.Clamp(m.cursorY-1, 1, h)
	case key.Matches(msg, m.keys.Down):
		m.cursorY = core.Clamp(m.cursorY+1, 1, h)
	case key.Matches(msg, m.keys.Left):
		m.cursorX = core.Clamp(m.cursorX-1, 1, w)
	case key.Matches(msg, m.keys.Right):
		m.cursorX = core.Clamp(m.cursorX+1, 1, w)

	case key.Matches(msg, m.keys.Reveal):
		m.session.RevealAt(m.cursorX, m.cursorY)
		return m.drainEvents()

	case key.Matches(msg, m.keys.Flag):
		m.session.ToggleFlagAt(m.cursorX, m.cursorY)
		return m.drainEvents()

	case key.Matches(msg, m.keys.Chord):
		m.session.ChordAt(m.cursorX, m.cursorY)
		return m.drainEvents()

	case key.Matches(msg, m.keys.Pause):
		if m.session.State() == game.StatePaused {
			m.session.Resume()
		} else {
			m.session.Pause()
		}

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse maps mouse clicks to board operations: left reveals,
// right flags, middle chords.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.enteringName || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	x, y, ok := cellAt(m.board, msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursorX, m.cursorY = x, y

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.session.RevealAt(x, y)
	case tea.MouseButtonRight:
		m.session.ToggleFlagAt(x, y)
	case tea.MouseButtonMiddle:
		m.session.ChordAt(x, y)
	default:
		return m, nil
	}
	return m.drainEvents()
}

// handleNameKey processes input while the record name prompt is open.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveTime(string(m.cfg.Difficulty), m.recordToSave, name)
		}
		m.enteringName = false
		m.loadBestTime()
		return m, nil
	case "esc", "ctrl+c":
		m.enteringName = false
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleTick advances the game timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Tick()
	model, _ := m.drainEvents()
	return model, tickCmd()
}

// restart begins a fresh game with a new random layout.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.session.NewGame(m.session.Config(), time.Now().UnixNano())
	m.session.SetBestTime(m.bestTime)
	m.sink.reset()
	m.enteringName = false
	return m, nil
}

// drainEvents reacts to notifications raised by the last session call:
// sound cues and the record name prompt.
func (m Model) drainEvents() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.sink.ticked && m.session.State() == game.StatePlaying {
		m.sounds.PlayTick()
	}
	if m.sink.ended {
		if m.sink.won {
			m.sounds.PlayWin()
		} else {
			m.sounds.PlayLose()
		}
	}
	if m.sink.newBest > 0 && m.store != nil && m.cfg.Difficulty.Tracked() {
		m.recordToSave = m.sink.newBest
		m.enteringName = true
		m.nameInput.SetValue("")
		cmd = m.nameInput.Focus()
	}

	m.sink.reset()
	return m, cmd
}

// statusLine renders the text under the board.
func (m Model) statusLine() string {
	switch m.session.State() {
	case game.StateWon:
		return fmt.Sprintf("Cleared in %d seconds! Press r to play again.", m.session.Elapsed())
	case game.StateLost:
		return "Boom. Press r to try again."
	case game.StatePaused:
		return "Paused. Press p to resume."
	}

	if m.cfg.Difficulty.Tracked() && m.bestTime != storage.NoRecord {
		holder := m.bestHolder
		if holder == "" {
			holder = "Anonymous"
		}
		return fmt.Sprintf("Best: %ds by %s", m.bestTime, holder)
	}
	return ""
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.session, m.cursorX, m.cursorY)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	if m.enteringName {
		promptStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
		b.WriteString(promptStyle.Render(fmt.Sprintf("New record: %d seconds! Enter your name:", m.recordToSave)))
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		return b.String()
	}

	if status := m.statusLine(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.Config, store *storage.Store, sounds *sound.Manager, seed int64) error {
	model := NewModel(cfg, store, sounds, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Left/right/middle click support
		tea.WithReportFocus(),     // Pause on focus loss
	)

	_, err := p.Run()
	return err
}
