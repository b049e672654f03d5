package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/game"
)

// Board layout constants. Cells are drawn on a 2-column stride so the
// grid stays roughly square in a terminal font.
const (
	boardOriginX = 2 // First cell column inside the frame
	boardOriginY = 3 // First cell row, below the HUD
	cellStride   = 2
)

// frameSize returns the screen dimensions needed for a board.
func frameSize(w, h int) (int, int) {
	return w*cellStride + 3, h + boardOriginY + 1
}

// boardRect returns the screen region covered by the board cells,
// used for mouse hit testing.
func boardRect(w, h int) core.Rect {
	return core.NewRect(boardOriginX, boardOriginY, w*cellStride-1, h)
}

// cellAt maps a screen position to 1-based board coordinates.
// Returns false when the position is outside the board.
func cellAt(rect core.Rect, sx, sy int) (int, int, bool) {
	if !rect.Contains(sx, sy) {
		return 0, 0, false
	}
	return (sx-rect.X)/cellStride + 1, sy - rect.Y + 1, true
}

// tileGlyph returns the rune and color for a tile.
func tileGlyph(t game.Tile) (rune, core.Color) {
	switch t.Kind {
	case game.TileFlagged:
		return '⚑', core.ColorBrightRed
	case game.TileQuestioned:
		return '?', core.ColorBrightYellow
	case game.TileRevealed:
		if t.Adjacent == 0 {
			return ' ', core.ColorDefault
		}
		return rune('0' + t.Adjacent), core.NumberColor(t.Adjacent)
	case game.TileMine:
		return '*', core.ColorBrightWhite
	case game.TileWrongFlag:
		return 'X', core.ColorBrightRed
	case game.TileExploded:
		return '*', core.ColorBrightRed
	default:
		return '·', core.ColorGray
	}
}

// face returns the status indicator for the HUD, in the spirit of the
// classic smiley button.
func face(state game.State) string {
	switch state {
	case game.StateWon:
		return ":D"
	case game.StateLost:
		return "X("
	case game.StatePaused:
		return "zz"
	default:
		return ":)"
	}
}

// drawFrame renders the HUD and board into the screen buffer.
func drawFrame(s *core.Screen, sess *game.Session, cursorX, cursorY int) {
	w, h := sess.Width(), sess.Height()
	frameW, _ := frameSize(w, h)

	s.Clear()

	// HUD box with the board attached below
	s.DrawBox(core.NewRect(0, 0, frameW, 3))
	s.DrawBox(core.NewRect(0, 2, frameW, h+2))
	s.Set(0, 2, '├')
	s.Set(frameW-1, 2, '┤')

	// Mine counter, face, timer
	counter := sess.RemainingMines()
	if counter < -99 {
		counter = -99
	}
	s.DrawTextColored(2, 1, fmt.Sprintf("%03d", counter), core.ColorBrightRed)
	s.DrawText((frameW-2)/2, 1, face(sess.State()))
	s.DrawTextColored(frameW-5, 1, fmt.Sprintf("%03d", sess.Elapsed()), core.ColorBrightRed)

	// Board cells
	paused := sess.State() == game.StatePaused
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			sx := boardOriginX + (x-1)*cellStride
			sy := boardOriginY + (y - 1)
			if paused {
				// Hide the board while paused, no peeking
				s.SetCell(sx, sy, '░', core.ColorGray)
				continue
			}
			r, c := tileGlyph(sess.TileAt(x, y))
			s.SetCell(sx, sy, r, c)
		}
	}

	// Cursor brackets around the selected cell
	if paused {
		s.DrawTextCentered(boardOriginY+(h-1)/2, " PAUSED ")
	} else {
		sx := boardOriginX + (cursorX-1)*cellStride
		sy := boardOriginY + (cursorY - 1)
		s.SetCell(sx-1, sy, '[', core.ColorBrightWhite)
		s.SetCell(sx+1, sy, ']', core.ColorBrightWhite)
	}
}
