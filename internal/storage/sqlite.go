// Package storage provides SQLite-based persistence for best times.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// NoRecord is the sentinel best time reported when a difficulty has no
// stored record yet: one tick above the timer cap, so any finished win
// beats it.
const NoRecord = 999

// Store manages the SQLite database connection for record persistence.
type Store struct {
	db *sql.DB
}

// TimeEntry represents a single recorded win.
type TimeEntry struct {
	ID         int64
	Difficulty string
	Seconds    int
	Player     string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT 'Anonymous',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_best_times_difficulty ON best_times(difficulty);
		CREATE INDEX IF NOT EXISTS idx_best_times_fastest ON best_times(difficulty, seconds ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTime records a finished win for the given difficulty.
// Returns the ID of the inserted record.
func (s *Store) SaveTime(difficulty string, seconds int, player string) (int64, error) {
	if player == "" {
		player = "Anonymous"
	}
	result, err := s.db.Exec(
		"INSERT INTO best_times (difficulty, seconds, player) VALUES (?, ?, ?)",
		difficulty, seconds, player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save time: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTime returns the fastest recorded time and its holder for the
// given difficulty. Returns NoRecord and an empty name when nothing is
// stored yet.
func (s *Store) BestTime(difficulty string) (int, string, error) {
	var seconds int
	var player string
	err := s.db.QueryRow(
		`SELECT seconds, player
		 FROM best_times
		 WHERE difficulty = ?
		 ORDER BY seconds ASC, created_at ASC
		 LIMIT 1`,
		difficulty,
	).Scan(&seconds, &player)

	if err == sql.ErrNoRows {
		return NoRecord, "", nil
	}
	if err != nil {
		return 0, "", fmt.Errorf("storage: cannot query best time: %w", err)
	}

	return seconds, player, nil
}

// TopTimes retrieves the fastest N wins for the given difficulty,
// ordered fastest first.
func (s *Store) TopTimes(difficulty string, limit int) ([]TimeEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, seconds, player, created_at
		 FROM best_times
		 WHERE difficulty = ?
		 ORDER BY seconds ASC, created_at ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query times: %w", err)
	}
	defer rows.Close()

	var entries []TimeEntry
	for rows.Next() {
		var e TimeEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Seconds, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearTimes deletes all records for the given difficulty.
func (s *Store) ClearTimes(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM best_times WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear times: %w", err)
	}
	return nil
}
