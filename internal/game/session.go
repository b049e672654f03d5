package game

import "math/rand"

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StatePaused
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Config describes one game. The engine treats it as valid by contract;
// the config layer clamps ranges before it gets here.
type Config struct {
	Width  int
	Height int
	Mines  int
	Marks  bool // question marks enabled in the flag cycle
}

// Listener receives change notifications from a session. All callbacks
// fire synchronously from inside the mutating call, on the caller's
// goroutine.
type Listener interface {
	CellChanged(x, y int)
	MineCounterChanged(remaining int)
	TimerChanged(seconds int)
	GameEnded(won bool)
	NewBest(seconds int)
}

// TileKind is the public view of a cell, decoupled from the packed
// internal encoding.
type TileKind int

const (
	TileHidden TileKind = iota
	TileFlagged
	TileQuestioned
	TileRevealed // Adjacent holds the 0-8 neighbor mine count
	TileMine     // unflagged mine shown at game end
	TileWrongFlag
	TileExploded
)

// Tile is what the renderer sees at one coordinate.
type Tile struct {
	Kind     TileKind
	Adjacent int
}

// Session owns one game: the board, the counters, the flood queue and
// the lifecycle state. It is single-threaded by design; every operation
// runs to completion before returning and callers must serialize access.
type Session struct {
	cfg   Config
	board *Board
	queue floodQueue

	state      State
	totalMines int
	remaining  int // totalMines minus flags placed; may go negative
	revealed   int
	target     int // playable cells minus mines, the win threshold

	elapsed    int // seconds, capped at 999
	timerOn    bool
	timerSaved bool // timer status remembered across pause

	bestTime int // current best for this difficulty, 0 = untracked
	listener Listener
}

// NewSession creates a session and starts its first game with the given
// seed.
func NewSession(cfg Config, seed int64) *Session {
	s := &Session{}
	s.NewGame(cfg, seed)
	return s
}

// SetListener installs the notification sink. Pass nil to detach.
func (s *Session) SetListener(l Listener) {
	s.listener = l
}

// SetBestTime tells the session the stored best time for the current
// difficulty, so a win can be recognized as a new record. Zero disables
// record tracking (custom boards).
func (s *Session) SetBestTime(seconds int) {
	s.bestTime = seconds
}

// NewGame atomically recreates the grid and counters for a fresh game.
// Terminal states are left behind; the session returns to NotStarted.
func (s *Session) NewGame(cfg Config, seed int64) {
	s.cfg = cfg
	s.board = NewBoard(cfg.Width, cfg.Height)
	s.queue = newFloodQueue((cfg.Width + 2) * (cfg.Height + 2))
	s.board.placeMines(rand.New(rand.NewSource(seed)), cfg.Mines)

	s.state = StateNotStarted
	s.totalMines = cfg.Mines
	s.remaining = cfg.Mines
	s.revealed = 0
	s.target = cfg.Width*cfg.Height - cfg.Mines
	s.elapsed = 0
	s.timerOn = false
	s.timerSaved = false

	s.notifyCounter()
	s.notifyTimer()
}

// Config returns the configuration of the current game.
func (s *Session) Config() Config { return s.cfg }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Width returns the playable width.
func (s *Session) Width() int { return s.cfg.Width }

// Height returns the playable height.
func (s *Session) Height() int { return s.cfg.Height }

// RemainingMines returns the displayed mine counter: total mines minus
// flags placed. Negative when over-flagged; never clamped.
func (s *Session) RemainingMines() int { return s.remaining }

// Elapsed returns the timer value in seconds.
func (s *Session) Elapsed() int { return s.elapsed }

// Revealed returns the number of revealed cells.
func (s *Session) Revealed() int { return s.revealed }

// TileAt returns the public view of the cell at (x, y). Coordinates
// outside 1..Width / 1..Height read as hidden.
func (s *Session) TileAt(x, y int) Tile {
	if !s.board.inBounds(x, y) {
		return Tile{Kind: TileHidden}
	}
	t := s.board.tile(x, y)
	switch {
	case t <= 8:
		if s.board.isVisited(x, y) {
			return Tile{Kind: TileRevealed, Adjacent: int(t)}
		}
		return Tile{Kind: TileHidden}
	case t == tileFlag:
		return Tile{Kind: TileFlagged}
	case t == tileQuestion || t == tileQuestionDown:
		return Tile{Kind: TileQuestioned}
	case t == tileMineShown:
		return Tile{Kind: TileMine}
	case t == tileWrongFlag:
		return Tile{Kind: TileWrongFlag}
	case t == tileExploded:
		return Tile{Kind: TileExploded}
	default:
		return Tile{Kind: TileHidden}
	}
}

// RevealAt reveals the cell at (x, y). The very first reveal of a
// session starts the timer, and if it lands on a mine the mine is
// relocated first so the opening move can never lose. Revealing a mine
// later detonates it. Visited and flagged cells are silent no-ops.
func (s *Session) RevealAt(x, y int) {
	if s.state != StateNotStarted && s.state != StatePlaying {
		return
	}
	if !s.board.inBounds(x, y) {
		return
	}
	if s.board.isVisited(x, y) || s.board.isFlagged(x, y) {
		return
	}

	s.start()

	if s.board.hasMine(x, y) {
		if s.revealed == 0 {
			s.board.relocateMine(x, y)
		} else {
			s.detonate(x, y)
			s.endGame(false)
			return
		}
	}

	s.floodReveal(x, y)
	if s.checkVictory() {
		s.endGame(true)
	}
}

// ChordAt reveals all neighbors of a satisfied numbered cell: the
// center must be revealed, unflagged, numbered 1-8, and its number must
// equal the count of flagged neighbors. Anything else is a no-op (the
// UI shows it as the pressed blocks popping back up). Unflagged mined
// neighbors detonate; loss wins over victory when both would apply.
func (s *Session) ChordAt(x, y int) {
	if s.state != StatePlaying {
		return
	}
	if !s.board.inBounds(x, y) {
		return
	}

	t := s.board.tile(x, y)
	if !s.board.isVisited(x, y) || s.board.isFlagged(x, y) ||
		t < 1 || t > 8 || int(t) != s.board.adjacentFlags(x, y) {
		return
	}

	detonated := false
	for cy := y - 1; cy <= y+1; cy++ {
		for cx := x - 1; cx <= x+1; cx++ {
			if !s.board.isFlagged(cx, cy) && s.board.hasMine(cx, cy) {
				detonated = true
				s.detonate(cx, cy)
			} else {
				s.floodReveal(cx, cy)
			}
		}
	}

	if detonated {
		s.endGame(false)
	} else if s.checkVictory() {
		s.endGame(true)
	}
}

// ToggleFlagAt cycles the marker on a hidden cell: unflagged to
// flagged, flagged to questioned (or straight back when marks are
// disabled), questioned to unflagged. Visited cells are no-ops. When a
// flag lands and the counter reaches zero with every flag on a real
// mine, the game is won.
func (s *Session) ToggleFlagAt(x, y int) {
	if s.state != StateNotStarted && s.state != StatePlaying {
		return
	}
	if !s.board.inBounds(x, y) || s.board.isVisited(x, y) {
		return
	}

	switch {
	case s.board.isFlagged(x, y):
		if s.cfg.Marks {
			s.board.setTile(x, y, tileQuestion)
		} else {
			s.board.setTile(x, y, tileHidden)
		}
		s.adjustCounter(+1)
	case s.board.isQuestioned(x, y):
		s.board.setTile(x, y, tileHidden)
	default:
		s.board.setTile(x, y, tileFlag)
		s.adjustCounter(-1)
	}
	s.notifyCell(x, y)

	if s.board.isFlagged(x, y) && s.remaining == 0 && s.allMinesFlagged() {
		s.endGame(true)
	}
}

// Tick advances the timer by one second. The caller delivers ticks;
// the engine only clamps at 999 and ignores ticks while paused, before
// the first reveal, and after the game ends.
func (s *Session) Tick() {
	if s.state == StatePlaying && s.timerOn && s.elapsed < 999 {
		s.elapsed++
		s.notifyTimer()
	}
}

// Pause suspends time counting. The grid cannot be mutated while
// paused. No-op outside Playing.
func (s *Session) Pause() {
	if s.state != StatePlaying {
		return
	}
	s.timerSaved = s.timerOn
	s.timerOn = false
	s.state = StatePaused
}

// Resume restores the timer to its pre-pause status.
func (s *Session) Resume() {
	if s.state != StatePaused {
		return
	}
	s.state = StatePlaying
	s.timerOn = s.timerSaved
}

// start moves NotStarted to Playing on the first successful reveal.
// The timer shows 1 immediately, then advances on external ticks.
func (s *Session) start() {
	if s.state != StateNotStarted {
		return
	}
	s.state = StatePlaying
	s.elapsed = 1
	s.timerOn = true
	s.notifyTimer()
}

// detonate marks an exploded mine. The cell is flagged visited so the
// end-of-game overlay leaves it alone, but it never counts as revealed.
func (s *Session) detonate(x, y int) {
	s.board.markVisited(x, y)
	s.board.setTile(x, y, tileExploded)
	s.notifyCell(x, y)
}

// checkVictory is the O(1) win test: every non-mine cell revealed.
func (s *Session) checkVictory() bool {
	return s.revealed == s.target
}

// allMinesFlagged reports whether every mine carries a flag. Only
// called when the counter is at zero, where it is equivalent to "all
// flags are correct".
func (s *Session) allMinesFlagged() bool {
	for y := 1; y <= s.board.height; y++ {
		for x := 1; x <= s.board.width; x++ {
			if s.board.hasMine(x, y) && !s.board.isFlagged(x, y) {
				return false
			}
		}
	}
	return true
}

// endGame freezes the session in a terminal state and runs the overlay
// pass: on a win the remaining mines are auto-flagged and the counter
// zeroed, on a loss unflagged mines are shown and wrong flags marked.
func (s *Session) endGame(won bool) {
	s.timerOn = false
	if won {
		s.state = StateWon
	} else {
		s.state = StateLost
	}

	for y := 1; y <= s.board.height; y++ {
		for x := 1; x <= s.board.width; x++ {
			if s.board.isVisited(x, y) {
				continue
			}
			if s.board.hasMine(x, y) {
				if !s.board.isFlagged(x, y) {
					if won {
						s.board.setTile(x, y, tileFlag)
					} else {
						s.board.setTile(x, y, tileMineShown)
					}
					s.notifyCell(x, y)
				}
			} else if s.board.isFlagged(x, y) && !won {
				s.board.setTile(x, y, tileWrongFlag)
				s.notifyCell(x, y)
			}
		}
	}

	if won && s.remaining != 0 {
		s.adjustCounter(-s.remaining)
	}

	s.notifyGameEnded(won)

	if won && s.bestTime > 0 && s.elapsed < s.bestTime {
		s.notifyNewBest(s.elapsed)
	}
}

func (s *Session) adjustCounter(delta int) {
	s.remaining += delta
	s.notifyCounter()
}

func (s *Session) notifyCell(x, y int) {
	if s.listener != nil {
		s.listener.CellChanged(x, y)
	}
}

func (s *Session) notifyCounter() {
	if s.listener != nil {
		s.listener.MineCounterChanged(s.remaining)
	}
}

func (s *Session) notifyTimer() {
	if s.listener != nil {
		s.listener.TimerChanged(s.elapsed)
	}
}

func (s *Session) notifyGameEnded(won bool) {
	if s.listener != nil {
		s.listener.GameEnded(won)
	}
}

func (s *Session) notifyNewBest(seconds int) {
	if s.listener != nil {
		s.listener.NewBest(seconds)
	}
}
