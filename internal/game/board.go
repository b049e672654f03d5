// Package game implements the minesweeper engine: grid state, mine
// placement, flood-fill revealing, flag cycling and the session state
// machine. It contains pure logic with no external dependencies
// (especially no Bubble Tea). The platform handles input mapping,
// timing, rendering and persistence.
package game

// Grid size limits for the playable area.
const (
	MinWidth  = 9
	MaxWidth  = 30
	MinHeight = 9
	MaxHeight = 24
	MinMines  = 10
)

// cell is the packed per-position state byte.
//
// Bit 7: mine present. Bit 6: revealed. Low five bits: the tile value
// drawn at this position. The tile value and the mine/revealed bits are
// independent; setTile must never touch the high bits.
type cell uint8

const (
	maskMine  cell = 0x80
	maskVisit cell = 0x40
	maskHigh  cell = 0xE0
	maskTile  cell = 0x1F
)

// Tile values stored in the low bits of a cell. Values 0-8 are revealed
// cells showing the adjacent mine count.
const (
	tileBlank        cell = 0  // revealed, zero adjacent mines
	tileQuestionDown cell = 9  // question mark, pressed
	tileMineShown    cell = 10 // unflagged mine shown at game end
	tileWrongFlag    cell = 11 // flag on a non-mine, shown at game end
	tileExploded     cell = 12 // the mine that ended the game
	tileQuestion     cell = 13 // question mark
	tileFlag         cell = 14 // flagged
	tileHidden       cell = 15 // unrevealed
	tileBorder       cell = 16 // sentinel ring outside the playable area
)

// Board is the padded mine grid. The playable area spans 1..width by
// 1..height; a one-cell ring of border sentinels surrounds it so that
// 3x3 neighbor scans never need bounds checks (a border cell is never a
// mine and never flagged, so it drops out of every count).
type Board struct {
	width  int
	height int
	stride int
	cells  []cell
}

// NewBoard creates a board with all playable cells hidden and the
// border ring set to the sentinel value. Dimensions are a caller
// contract (the config layer clamps them); they are not validated here.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		stride: width + 2,
	}
	b.cells = make([]cell, b.stride*(height+2))
	b.reset()
	return b
}

// reset rewrites every cell: playable area hidden, ring bordered.
func (b *Board) reset() {
	for i := range b.cells {
		b.cells[i] = tileHidden
	}
	for x := 0; x < b.width+2; x++ {
		b.cells[b.index(x, 0)] = tileBorder
		b.cells[b.index(x, b.height+1)] = tileBorder
	}
	for y := 0; y < b.height+2; y++ {
		b.cells[b.index(0, y)] = tileBorder
		b.cells[b.index(b.width+1, y)] = tileBorder
	}
}

func (b *Board) index(x, y int) int {
	return y*b.stride + x
}

// Width returns the playable width.
func (b *Board) Width() int { return b.width }

// Height returns the playable height.
func (b *Board) Height() int { return b.height }

// Cells returns the number of playable cells.
func (b *Board) Cells() int { return b.width * b.height }

// inBounds reports whether (x, y) addresses a playable cell.
func (b *Board) inBounds(x, y int) bool {
	return x > 0 && y > 0 && x <= b.width && y <= b.height
}

// tile returns the visual tile value, ignoring the mine/revealed bits.
func (b *Board) tile(x, y int) cell {
	return b.cells[b.index(x, y)] & maskTile
}

// setTile replaces the tile value while preserving the mine and
// revealed bits.
func (b *Board) setTile(x, y int, t cell) {
	i := b.index(x, y)
	b.cells[i] = (b.cells[i] & maskHigh) | t
}

func (b *Board) isBorder(x, y int) bool {
	return b.tile(x, y) == tileBorder
}

func (b *Board) hasMine(x, y int) bool {
	return b.cells[b.index(x, y)]&maskMine != 0
}

func (b *Board) placeMine(x, y int) {
	b.cells[b.index(x, y)] |= maskMine
}

func (b *Board) removeMine(x, y int) {
	b.cells[b.index(x, y)] &^= maskMine
}

func (b *Board) isVisited(x, y int) bool {
	return b.cells[b.index(x, y)]&maskVisit != 0
}

func (b *Board) markVisited(x, y int) {
	b.cells[b.index(x, y)] |= maskVisit
}

func (b *Board) isFlagged(x, y int) bool {
	return b.tile(x, y) == tileFlag
}

func (b *Board) isQuestioned(x, y int) bool {
	return b.tile(x, y) == tileQuestion
}

// adjacentMines counts mines in the whole 3x3 block around (x, y),
// center included; the center only matters for cells that are
// themselves mined, which are never asked.
func (b *Board) adjacentMines(x, y int) int {
	n := 0
	for cy := y - 1; cy <= y+1; cy++ {
		for cx := x - 1; cx <= x+1; cx++ {
			if b.hasMine(cx, cy) {
				n++
			}
		}
	}
	return n
}

// adjacentFlags counts flags in the 3x3 block around (x, y).
func (b *Board) adjacentFlags(x, y int) int {
	n := 0
	for cy := y - 1; cy <= y+1; cy++ {
		for cx := x - 1; cx <= x+1; cx++ {
			if b.isFlagged(cx, cy) {
				n++
			}
		}
	}
	return n
}
