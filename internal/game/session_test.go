package game

import "testing"

// recorder is a Listener that counts notifications.
type recorder struct {
	cells    int
	counters []int
	timers   []int
	ended    []bool
	bests    []int
}

func (r *recorder) CellChanged(x, y int)     { r.cells++ }
func (r *recorder) MineCounterChanged(n int) { r.counters = append(r.counters, n) }
func (r *recorder) TimerChanged(sec int)     { r.timers = append(r.timers, sec) }
func (r *recorder) GameEnded(won bool)       { r.ended = append(r.ended, won) }
func (r *recorder) NewBest(sec int)          { r.bests = append(r.bests, sec) }

func TestNewGameCounters(t *testing.T) {
	tests := []struct {
		width, height, mines int
	}{
		{9, 9, 10},
		{16, 16, 40},
		{30, 16, 99},
		{30, 24, 200},
	}
	for _, tc := range tests {
		s := NewSession(Config{Width: tc.width, Height: tc.height, Mines: tc.mines}, 7)
		if s.Revealed() != 0 {
			t.Errorf("%dx%d: revealed = %d, expected 0", tc.width, tc.height, s.Revealed())
		}
		if s.RemainingMines() != tc.mines {
			t.Errorf("%dx%d: remaining = %d, expected %d", tc.width, tc.height, s.RemainingMines(), tc.mines)
		}
		if s.target != tc.width*tc.height-tc.mines {
			t.Errorf("%dx%d: target = %d, expected %d", tc.width, tc.height, s.target, tc.width*tc.height-tc.mines)
		}
		if s.State() != StateNotStarted {
			t.Errorf("%dx%d: state = %v, expected not started", tc.width, tc.height, s.State())
		}
	}
}

func TestFlagCycleWithMarks(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, true)

	s.ToggleFlagAt(5, 5)
	if s.TileAt(5, 5).Kind != TileFlagged {
		t.Fatal("first toggle should flag")
	}
	if s.RemainingMines() != 0 {
		t.Errorf("remaining = %d, expected 0", s.RemainingMines())
	}

	s.ToggleFlagAt(5, 5)
	if s.TileAt(5, 5).Kind != TileQuestioned {
		t.Fatal("second toggle should question when marks are enabled")
	}
	if s.RemainingMines() != 1 {
		t.Errorf("remaining = %d, expected 1 after unflagging", s.RemainingMines())
	}

	s.ToggleFlagAt(5, 5)
	if s.TileAt(5, 5).Kind != TileHidden {
		t.Fatal("third toggle should clear")
	}
	if s.RemainingMines() != 1 {
		t.Errorf("remaining = %d, expected 1", s.RemainingMines())
	}
}

func TestFlagCycleWithoutMarks(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)

	s.ToggleFlagAt(5, 5)
	s.ToggleFlagAt(5, 5)
	if s.TileAt(5, 5).Kind != TileHidden {
		t.Error("flag should clear directly when marks are disabled")
	}
	if s.RemainingMines() != 1 {
		t.Errorf("remaining = %d, expected 1", s.RemainingMines())
	}
}

func TestFlagOnVisitedCellIsNoOp(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	s.RevealAt(2, 2)

	s.ToggleFlagAt(2, 2)
	if s.TileAt(2, 2).Kind != TileRevealed {
		t.Error("revealed cell must not accept a flag")
	}
	if s.RemainingMines() != 1 {
		t.Errorf("remaining = %d, expected 1", s.RemainingMines())
	}
}

func TestRemainingMinesGoesNegative(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}, {2, 1}}, false)

	s.ToggleFlagAt(5, 5)
	s.ToggleFlagAt(6, 5)
	s.ToggleFlagAt(7, 5)

	if s.RemainingMines() != -1 {
		t.Errorf("remaining = %d, expected -1 when over-flagged", s.RemainingMines())
	}
}

func TestFlaggingAllMinesWins(t *testing.T) {
	mines := [][2]int{{1, 1}, {4, 4}, {9, 9}}
	s := newFixedSession(t, 9, 9, mines, false)

	for _, m := range mines {
		s.ToggleFlagAt(m[0], m[1])
	}

	if s.State() != StateWon {
		t.Fatalf("state = %v, expected won after flagging all mines", s.State())
	}
	if s.RemainingMines() != 0 {
		t.Errorf("remaining = %d, expected 0", s.RemainingMines())
	}
}

func TestWrongFlagsDoNotWin(t *testing.T) {
	mines := [][2]int{{1, 1}, {4, 4}}
	s := newFixedSession(t, 9, 9, mines, false)

	s.ToggleFlagAt(1, 1)
	s.ToggleFlagAt(5, 5) // counter hits zero but one flag is wrong

	if s.State() == StateWon {
		t.Error("session won with a wrong flag placed")
	}
	if s.RemainingMines() != 0 {
		t.Errorf("remaining = %d, expected 0", s.RemainingMines())
	}
}

func TestChordSafe(t *testing.T) {
	// Fourth mine far away keeps the flag cycle from winning outright
	mines := [][2]int{{1, 1}, {2, 1}, {3, 1}, {9, 9}}
	s := newFixedSession(t, 9, 9, mines, false)

	s.RevealAt(2, 2)
	got := s.TileAt(2, 2)
	if got.Kind != TileRevealed || got.Adjacent != 3 {
		t.Fatalf("TileAt(2,2) = %+v, expected revealed 3", got)
	}

	for _, m := range mines[:3] {
		s.ToggleFlagAt(m[0], m[1])
	}
	s.ChordAt(2, 2)

	if s.State() == StateLost {
		t.Fatal("correctly flagged chord must not detonate")
	}
	for _, p := range [][2]int{{1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		if !s.board.isVisited(p[0], p[1]) {
			t.Errorf("(%d,%d) should be revealed by the chord", p[0], p[1])
		}
	}
}

func TestChordWithWrongFlagDetonates(t *testing.T) {
	mines := [][2]int{{1, 1}, {2, 1}}
	s := newFixedSession(t, 9, 9, mines, false)

	s.RevealAt(2, 2) // shows 2
	s.ToggleFlagAt(1, 1)
	s.ToggleFlagAt(3, 1) // wrong: flag count satisfied, but (2,1) is live
	s.ChordAt(2, 2)

	if s.State() != StateLost {
		t.Fatalf("state = %v, expected lost", s.State())
	}
	if s.TileAt(2, 1).Kind != TileExploded {
		t.Errorf("unflagged mine shows %v, expected exploded", s.TileAt(2, 1).Kind)
	}
}

func TestChordPreconditions(t *testing.T) {
	mines := [][2]int{{1, 1}, {2, 1}}
	s := newFixedSession(t, 9, 9, mines, false)

	s.RevealAt(2, 2) // shows 2
	snap := s.Snapshot()

	s.ChordAt(2, 2) // no flags yet: count mismatch
	s.ChordAt(5, 5) // not revealed
	s.ChordAt(0, 0) // out of bounds

	if s.Snapshot() != snap {
		t.Error("unsatisfied chord must be a complete no-op")
	}
}

func TestTimerStartsOnFirstReveal(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)

	s.Tick()
	s.Tick()
	if s.Elapsed() != 0 {
		t.Fatalf("elapsed = %d before first reveal, expected 0", s.Elapsed())
	}

	s.RevealAt(2, 2)
	if s.Elapsed() != 1 {
		t.Fatalf("elapsed = %d after first reveal, expected 1", s.Elapsed())
	}

	s.Tick()
	if s.Elapsed() != 2 {
		t.Errorf("elapsed = %d after tick, expected 2", s.Elapsed())
	}
}

func TestTimerCapsAt999(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	s.RevealAt(2, 2)

	for i := 0; i < 2000; i++ {
		s.Tick()
	}
	if s.Elapsed() != 999 {
		t.Errorf("elapsed = %d, expected cap at 999", s.Elapsed())
	}
}

func TestPauseSuspendsTimerAndGrid(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	s.RevealAt(2, 2)
	s.Tick()
	elapsed := s.Elapsed()

	s.Pause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", s.State())
	}

	s.Tick()
	s.Tick()
	if s.Elapsed() != elapsed {
		t.Errorf("elapsed advanced to %d while paused", s.Elapsed())
	}

	revealed := s.Revealed()
	s.RevealAt(5, 5)
	s.ToggleFlagAt(6, 6)
	if s.Revealed() != revealed || s.TileAt(6, 6).Kind != TileHidden {
		t.Error("grid mutated while paused")
	}

	s.Resume()
	if s.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing after resume", s.State())
	}
	s.Tick()
	if s.Elapsed() != elapsed+1 {
		t.Errorf("elapsed = %d after resume+tick, expected %d", s.Elapsed(), elapsed+1)
	}
}

func TestPauseBeforeStartIsNoOp(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	s.Pause()
	if s.State() != StateNotStarted {
		t.Errorf("state = %v, expected not started", s.State())
	}
}

func TestNotifications(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	rec := &recorder{}
	s.SetListener(rec)

	s.ToggleFlagAt(5, 5)
	if len(rec.counters) != 1 || rec.counters[0] != 0 {
		t.Errorf("counters = %v, expected [0]", rec.counters)
	}
	if rec.cells != 1 {
		t.Errorf("cells = %d, expected 1", rec.cells)
	}

	s.RevealAt(2, 2) // one cell, starts timer
	if rec.cells != 2 {
		t.Errorf("cells = %d, expected 2", rec.cells)
	}
	if len(rec.timers) != 1 || rec.timers[0] != 1 {
		t.Errorf("timers = %v, expected [1]", rec.timers)
	}

	s.RevealAt(2, 2) // no-op: no new notification
	if rec.cells != 2 {
		t.Errorf("cells = %d after repeated reveal, expected 2", rec.cells)
	}
}

func TestGameEndedAndNewBestNotifications(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	rec := &recorder{}
	s.SetListener(rec)
	s.SetBestTime(50)

	s.RevealAt(9, 9) // floods to a win at 1 second

	if len(rec.ended) != 1 || !rec.ended[0] {
		t.Fatalf("ended = %v, expected single win", rec.ended)
	}
	if len(rec.bests) != 1 || rec.bests[0] != 1 {
		t.Errorf("bests = %v, expected [1]", rec.bests)
	}
}

func TestSlowerWinIsNotANewBest(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	rec := &recorder{}
	s.SetListener(rec)
	s.SetBestTime(1) // already at the floor

	s.RevealAt(9, 9)

	if len(rec.bests) != 0 {
		t.Errorf("bests = %v, expected none", rec.bests)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := Config{Width: 16, Height: 16, Mines: 40, Marks: true}

	s1 := NewSession(cfg, 12345)
	s2 := NewSession(cfg, 12345)

	ops := func(s *Session) {
		s.RevealAt(8, 8)
		s.ToggleFlagAt(1, 1)
		s.RevealAt(3, 12)
		s.Tick()
		s.ChordAt(8, 8)
	}
	ops(s1)
	ops(s2)

	if s1.Snapshot() != s2.Snapshot() {
		t.Error("same seed and operations must give identical snapshots")
	}
}

func TestNewGameResetsTerminalState(t *testing.T) {
	s := newFixedSession(t, 9, 9, [][2]int{{1, 1}}, false)
	s.RevealAt(9, 9) // win

	s.NewGame(Config{Width: 9, Height: 9, Mines: 10}, 99)

	if s.State() != StateNotStarted {
		t.Errorf("state = %v, expected not started", s.State())
	}
	if s.Revealed() != 0 || s.Elapsed() != 0 || s.RemainingMines() != 10 {
		t.Error("counters not reset by new game")
	}
}
