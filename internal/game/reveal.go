package game

// floodQueue is a fixed-capacity ring buffer of coordinates awaiting
// neighbor expansion during a flood fill. Capacity is the padded grid
// cell count, which strictly exceeds the playable cell count; combined
// with the visited-before-enqueue rule in revealCell this makes
// overflow impossible. Hitting it anyway is a bug, not a condition to
// recover from.
type floodQueue struct {
	xs   []int
	ys   []int
	head int
	tail int
}

func newFloodQueue(capacity int) floodQueue {
	return floodQueue{
		xs: make([]int, capacity),
		ys: make([]int, capacity),
	}
}

func (q *floodQueue) reset() {
	q.head = 0
	q.tail = 0
}

func (q *floodQueue) empty() bool {
	return q.head == q.tail
}

func (q *floodQueue) push(x, y int) {
	q.xs[q.tail] = x
	q.ys[q.tail] = y
	q.tail++
	if q.tail == len(q.xs) {
		q.tail = 0
	}
	if q.tail == q.head {
		panic("game: flood queue overflow")
	}
}

func (q *floodQueue) pop() (int, int) {
	x, y := q.xs[q.head], q.ys[q.head]
	q.head++
	if q.head == len(q.xs) {
		q.head = 0
	}
	return x, y
}

// revealCell reveals a single safe cell: a no-op on border, visited,
// flagged or mined cells (mines are the caller's problem; flood fill
// only ever reaches them as fringe neighbors, which stay hidden).
// Marks the cell visited before enqueueing it, which is what bounds the
// whole algorithm: a coordinate can enter the queue at most once.
func (s *Session) revealCell(x, y int) {
	b := s.board
	if b.isBorder(x, y) || b.isVisited(x, y) || b.isFlagged(x, y) || b.hasMine(x, y) {
		return
	}

	n := b.adjacentMines(x, y)
	b.markVisited(x, y)
	b.setTile(x, y, cell(n))
	s.revealed++
	s.notifyCell(x, y)

	if n == 0 {
		s.queue.push(x, y)
	}
}

// floodReveal reveals (x, y) and expands every connected zero-count
// cell breadth-first, revealing the numbered fringe around the region.
// The final revealed set does not depend on the neighbor order (reveals
// are idempotent and monotonic); the fixed order below keeps the
// incremental notification sequence stable: the row above, the sides,
// the row below.
func (s *Session) floodReveal(x, y int) {
	s.queue.reset()
	s.revealCell(x, y)

	for !s.queue.empty() {
		cx, cy := s.queue.pop()

		s.revealCell(cx-1, cy-1)
		s.revealCell(cx, cy-1)
		s.revealCell(cx+1, cy-1)

		s.revealCell(cx-1, cy)
		s.revealCell(cx+1, cy)

		s.revealCell(cx-1, cy+1)
		s.revealCell(cx, cy+1)
		s.revealCell(cx+1, cy+1)
	}
}
