// Package storage provides SQLite-based records of finished games.
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

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			board_rows INTEGER NOT NULL,
			board_columns INTEGER NOT NULL,
			amount_to_win INTEGER NOT NULL,
			winner_color TEXT,
			moves INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);

		CREATE TABLE IF NOT EXISTS participants (
			result_id INTEGER NOT NULL REFERENCES results(id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			name TEXT NOT NULL,
			strategy TEXT NOT NULL,
			color TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (result_id, seat)
		);
		CREATE INDEX IF NOT EXISTS idx_participants_name ON participants(name);
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

// SaveResult records a finished game and its participants.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	var winner sql.NullString
	if r.WinnerColor != "" {
		winner = sql.NullString{String: r.WinnerColor, Valid: true}
	}

	res, err := tx.Exec(
		`INSERT INTO results (match_id, board_rows, board_columns, amount_to_win, winner_color, moves, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Rows, r.Columns, r.AmountToWin, winner, r.Moves, r.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for seat, p := range r.Participants {
		if _, err := tx.Exec(
			`INSERT INTO participants (result_id, seat, name, strategy, color, winner)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, seat, p.Name, p.Strategy, p.Color, p.Winner,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save participant %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, board_rows, board_columns, amount_to_win, winner_color, moves, source, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range results {
		if results[i].Participants, err = s.participants(results[i].ID); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ResultByMatchID retrieves a result by its match ID.
// Returns nil if no such match was recorded.
func (s *Store) ResultByMatchID(matchID string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, board_rows, board_columns, amount_to_win, winner_color, moves, source, created_at
		 FROM results
		 WHERE match_id = ?`,
		matchID,
	)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if r.Participants, err = s.participants(r.ID); err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearResults deletes every recorded result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM participants; DELETE FROM results;"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func (s *Store) participants(resultID int64) ([]Participant, error) {
	rows, err := s.db.Query(
		`SELECT name, strategy, color, winner
		 FROM participants
		 WHERE result_id = ?
		 ORDER BY seat`,
		resultID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query participants: %w", err)
	}
	defer rows.Close()

	var ps []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.Name, &p.Strategy, &p.Color, &p.Winner); err != nil {
			return nil, fmt.Errorf("storage: cannot scan participant: %w", err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ps, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var (
		r         Result
		winner    sql.NullString
		createdAt any
	)
	err := row.Scan(&r.ID, &r.MatchID, &r.Rows, &r.Columns, &r.AmountToWin,
		&winner, &r.Moves, &r.Source, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan result: %w", err)
	}
	if winner.Valid {
		r.WinnerColor = winner.String
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
