package game

import "strings"

// Snapshot captures the observable session state for determinism
// testing and replay comparison.
type Snapshot struct {
	State     State
	Width     int
	Height    int
	Mines     int
	Remaining int
	Revealed  int
	Target    int
	Elapsed   int
	Grid      string // row-major tile render, one rune per cell
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Width:     s.cfg.Width,
		Height:    s.cfg.Height,
		Mines:     s.totalMines,
		Remaining: s.remaining,
		Revealed:  s.revealed,
		Target:    s.target,
		Elapsed:   s.elapsed,
		Grid:      s.renderGrid(),
	}
}

// renderGrid flattens the board into a compact string, one row per
// line. Hidden '.', flag 'F', question '?', revealed counts '0'-'8',
// shown mine '*', wrong flag 'X', exploded '!'.
func (s *Session) renderGrid() string {
	var b strings.Builder
	b.Grow((s.cfg.Width + 1) * s.cfg.Height)
	for y := 1; y <= s.cfg.Height; y++ {
		if y > 1 {
			b.WriteByte('\n')
		}
		for x := 1; x <= s.cfg.Width; x++ {
			t := s.TileAt(x, y)
			switch t.Kind {
			case TileRevealed:
				b.WriteByte(byte('0' + t.Adjacent))
			case TileFlagged:
				b.WriteByte('F')
			case TileQuestioned:
				b.WriteByte('?')
			case TileMine:
				b.WriteByte('*')
			case TileWrongFlag:
				b.WriteByte('X')
			case TileExploded:
				b.WriteByte('!')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
