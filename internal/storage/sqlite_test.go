package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("failed to close store: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := newTestStore(t)

	id, err := store.SaveTime("beginner", 42, "alice")
	if err != nil {
		t.Fatalf("failed to save time: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero record ID")
	}

	seconds, player, err := store.BestTime("beginner")
	if err != nil {
		t.Fatalf("failed to query best time: %v", err)
	}
	if seconds != 42 || player != "alice" {
		t.Errorf("best time = %d by %q, expected 42 by alice", seconds, player)
	}
}

func TestStoreBestTimeIsFastest(t *testing.T) {
	store := newTestStore(t)

	for _, rec := range []struct {
		seconds int
		player  string
	}{
		{120, "alice"},
		{35, "bob"},
		{77, "carol"},
	} {
		if _, err := store.SaveTime("expert", rec.seconds, rec.player); err != nil {
			t.Fatalf("failed to save time: %v", err)
		}
	}

	seconds, player, err := store.BestTime("expert")
	if err != nil {
		t.Fatalf("failed to query best time: %v", err)
	}
	if seconds != 35 || player != "bob" {
		t.Errorf("best time = %d by %q, expected 35 by bob", seconds, player)
	}
}

func TestStoreBestTimeEmpty(t *testing.T) {
	store := newTestStore(t)

	seconds, player, err := store.BestTime("intermediate")
	if err != nil {
		t.Fatalf("failed to query best time: %v", err)
	}
	if seconds != NoRecord {
		t.Errorf("best time = %d, expected the %d sentinel", seconds, NoRecord)
	}
	if player != "" {
		t.Errorf("player = %q, expected empty", player)
	}
}

func TestStoreTopTimesLimitAndOrder(t *testing.T) {
	store := newTestStore(t)

	for i := 10; i >= 1; i-- {
		if _, err := store.SaveTime("beginner", i*10, "player"); err != nil {
			t.Fatalf("failed to save time: %v", err)
		}
	}

	entries, err := store.TopTimes("beginner", 5)
	if err != nil {
		t.Fatalf("failed to query top times: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, expected 5", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Seconds < entries[i-1].Seconds {
			t.Errorf("entries not sorted fastest first: %d before %d",
				entries[i-1].Seconds, entries[i].Seconds)
		}
	}
	if entries[0].Seconds != 10 {
		t.Errorf("fastest entry = %d, expected 10", entries[0].Seconds)
	}
}

func TestStoreTopTimesFiltersDifficulty(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveTime("beginner", 20, "alice"); err != nil {
		t.Fatalf("failed to save time: %v", err)
	}
	if _, err := store.SaveTime("expert", 200, "bob"); err != nil {
		t.Fatalf("failed to save time: %v", err)
	}

	entries, err := store.TopTimes("beginner", 10)
	if err != nil {
		t.Fatalf("failed to query top times: %v", err)
	}
	if len(entries) != 1 || entries[0].Difficulty != "beginner" {
		t.Errorf("got %+v, expected one beginner entry", entries)
	}
}

func TestStoreSaveEmptyPlayerDefaults(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveTime("beginner", 50, ""); err != nil {
		t.Fatalf("failed to save time: %v", err)
	}

	_, player, err := store.BestTime("beginner")
	if err != nil {
		t.Fatalf("failed to query best time: %v", err)
	}
	if player != "Anonymous" {
		t.Errorf("player = %q, expected Anonymous", player)
	}
}

func TestStoreClearTimes(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveTime("beginner", 30, "alice"); err != nil {
		t.Fatalf("failed to save time: %v", err)
	}
	if _, err := store.SaveTime("expert", 300, "bob"); err != nil {
		t.Fatalf("failed to save time: %v", err)
	}

	if err := store.ClearTimes("beginner"); err != nil {
		t.Fatalf("failed to clear times: %v", err)
	}

	seconds, _, err := store.BestTime("beginner")
	if err != nil {
		t.Fatalf("failed to query best time: %v", err)
	}
	if seconds != NoRecord {
		t.Errorf("best time after clear = %d, expected the %d sentinel", seconds, NoRecord)
	}

	// Other difficulties are untouched
	seconds, _, err = store.BestTime("expert")
	if err != nil {
		t.Fatalf("failed to query best time: %v", err)
	}
	if seconds != 300 {
		t.Errorf("expert best time = %d, expected 300", seconds)
	}
}
