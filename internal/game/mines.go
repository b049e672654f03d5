package game

import "math/rand"

// placeMines scatters count mines uniformly over the playable area.
// Occupied draws are simply redrawn, so exactly count distinct cells
// end up mined. The caller guarantees count < width*height.
func (b *Board) placeMines(rng *rand.Rand, count int) {
	for placed := 0; placed < count; {
		x := rng.Intn(b.width) + 1
		y := rng.Intn(b.height) + 1
		if b.hasMine(x, y) {
			continue
		}
		b.placeMine(x, y)
		placed++
	}
}

// relocateMine moves the mine at (x, y) to the first mine-free cell in
// row-major scan order. Used when the very first reveal of a session
// lands on a mine, so the first click can never lose. The scan is
// deterministic on purpose: replays stay reproducible.
func (b *Board) relocateMine(x, y int) {
	for ty := 1; ty <= b.height; ty++ {
		for tx := 1; tx <= b.width; tx++ {
			if !b.hasMine(tx, ty) {
				b.removeMine(x, y)
				b.placeMine(tx, ty)
				return
			}
		}
	}
}
