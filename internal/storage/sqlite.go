// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is the number of results returned when a query limit is not positive.
const DefaultLimit = 10

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// GameResult is the outcome of one puzzle session.
type GameResult struct {
	ID        int64
	SessionID string        // Front-end generated session id
	Puzzle    string        // Start position key, results are ranked per puzzle
	Player    string        // Player name, never empty
	Solved    bool          // Whether the puzzle was solved
	Steps     int           // Number of rolls, meaningful when solved
	Duration  time.Duration // Play time
	CreatedAt time.Time     // Assigned by the store on save
}

// PlayerStats contains aggregated statistics for a player on one puzzle.
type PlayerStats struct {
	Player       string
	Puzzle       string
	GamesCount   int
	SolvedCount  int
	BestDuration time.Duration // Zero when nothing was solved
	FewestSteps  int           // Zero when nothing was solved
	LastPlayed   time.Time
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Durations are stored in milliseconds, creation times in Unix nanoseconds.
// Databases created before results were keyed by puzzle get the column
// added; their old rows keep an empty key and rank on no leaderboard.
func (s *Store) migrate() error {
	table := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL DEFAULT '',
			puzzle TEXT NOT NULL DEFAULT '',
			player TEXT NOT NULL,
			solved INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
	`
	if _, err := s.db.Exec(table); err != nil {
		return err
	}

	var hasPuzzle int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info('results') WHERE name = 'puzzle'`,
	).Scan(&hasPuzzle)
	if err != nil {
		return err
	}
	if hasPuzzle == 0 {
		if _, err := s.db.Exec(`ALTER TABLE results ADD COLUMN puzzle TEXT NOT NULL DEFAULT ''`); err != nil {
			return err
		}
	}

	indexes := `
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(puzzle, solved, duration_ms ASC, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player, puzzle);
	`
	_, err = s.db.Exec(indexes)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game. CreatedAt is assigned by the store;
// any value set by the caller is ignored.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r GameResult) (int64, error) {
	if r.Player == "" {
		return 0, errors.New("storage: player must not be empty")
	}
	if r.Puzzle == "" {
		return 0, errors.New("storage: puzzle must not be empty")
	}
	if r.Steps < 0 {
		return 0, fmt.Errorf("storage: negative step count %d", r.Steps)
	}
	if r.Duration < 0 {
		return 0, fmt.Errorf("storage: negative duration %s", r.Duration)
	}

	result, err := s.db.Exec(
		`INSERT INTO results (session_id, puzzle, player, solved, steps, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Puzzle, r.Player, r.Solved, r.Steps, r.Duration.Milliseconds(), s.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestResults retrieves the best n solved games of one puzzle: shortest
// duration first, newer results first among equal durations.
func (s *Store) BestResults(puzzle string, n int) ([]GameResult, error) {
	if n <= 0 {
		n = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, puzzle, player, solved, steps, duration_ms, created_at
		 FROM results
		 WHERE puzzle = ? AND solved = 1
		 ORDER BY duration_ms ASC, created_at DESC, id DESC
		 LIMIT ?`,
		puzzle, n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the most recent games, solved or not.
func (s *Store) RecentResults(n int) ([]GameResult, error) {
	if n <= 0 {
		n = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, puzzle, player, solved, steps, duration_ms, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

// scanResults reads all rows into results and closes them.
func scanResults(rows *sql.Rows) ([]GameResult, error) {
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var durationMS, createdAt int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Puzzle, &r.Player, &r.Solved, &r.Steps, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = time.Unix(0, createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// PlayerStats retrieves aggregated statistics for a player on one puzzle.
func (s *Store) PlayerStats(player, puzzle string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player, Puzzle: puzzle}

	var bestMS, fewest, last sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(solved), 0),
		        MIN(CASE WHEN solved = 1 THEN duration_ms END),
		        MIN(CASE WHEN solved = 1 THEN steps END),
		        MAX(created_at)
		 FROM results WHERE player = ? AND puzzle = ?`,
		player, puzzle,
	).Scan(&stats.GamesCount, &stats.SolvedCount, &bestMS, &fewest, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}

	if bestMS.Valid {
		stats.BestDuration = time.Duration(bestMS.Int64) * time.Millisecond
	}
	if fewest.Valid {
		stats.FewestSteps = int(fewest.Int64)
	}
	if last.Valid {
		stats.LastPlayed = time.Unix(0, last.Int64)
	}

	return stats, nil
}

// ClearResults deletes all stored results.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
