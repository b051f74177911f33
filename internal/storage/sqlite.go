// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// ErrRunNotFound is returned by GetRun for an unknown id.
var ErrRunNotFound = errors.New("storage: run not found")

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			arena_w INTEGER NOT NULL,
			arena_h INTEGER NOT NULL,
			settings TEXT NOT NULL,
			intents BLOB NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			phase TEXT NOT NULL,
			final_hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
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

// SaveRun stores a finished recording and returns its ID.
func (s *Store) SaveRun(rec breakout.Recording) (int64, error) {
	settings, err := yaml.Marshal(rec.Settings)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode settings: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (seed, arena_w, arena_h, settings, intents, ticks, score, misses, phase, final_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Seed,
		rec.Arena.X,
		rec.Arena.Y,
		string(settings),
		encodeIntents(rec.Intents),
		int64(rec.Ticks), //#nosec G115 -- tick counts stay far below 2^63
		rec.Score,
		rec.Misses,
		rec.Phase.String(),
		int64(rec.FinalHash), //#nosec G115 -- stored bit pattern, restored on read
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// GetRun loads a full recording, intents included.
func (s *Store) GetRun(id int64) (breakout.Recording, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, arena_w, arena_h, settings, intents, ticks, score, misses, phase, final_hash, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	var (
		rec       breakout.Recording
		settings  string
		intents   []byte
		ticks     int64
		phase     string
		hash      int64
		createdAt any
	)
	err := row.Scan(&rec.ID, &rec.Seed, &rec.Arena.X, &rec.Arena.Y, &settings, &intents,
		&ticks, &rec.Score, &rec.Misses, &phase, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return breakout.Recording{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return breakout.Recording{}, fmt.Errorf("storage: cannot query run: %w", err)
	}

	if err := yaml.Unmarshal([]byte(settings), &rec.Settings); err != nil {
		return breakout.Recording{}, fmt.Errorf("storage: run %d: cannot decode settings: %w", id, err)
	}
	if rec.Phase, err = breakout.ParsePhase(phase); err != nil {
		return breakout.Recording{}, fmt.Errorf("storage: run %d: %w", id, err)
	}
	rec.Intents = decodeIntents(intents)
	rec.Ticks = uint64(ticks)    //#nosec G115 -- written from a uint64
	rec.FinalHash = uint64(hash) //#nosec G115 -- stored bit pattern
	rec.CreatedAt = parseTime(createdAt)

	return rec, nil
}

// ListRuns returns up to limit recordings, newest first. Intents are not
// loaded; use GetRun for a replayable recording.
func (s *Store) ListRuns(limit int) ([]breakout.Recording, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, arena_w, arena_h, ticks, score, misses, phase, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []breakout.Recording
	for rows.Next() {
		var (
			rec       breakout.Recording
			ticks     int64
			phase     string
			createdAt any
		)
		if err := rows.Scan(&rec.ID, &rec.Seed, &rec.Arena.X, &rec.Arena.Y,
			&ticks, &rec.Score, &rec.Misses, &phase, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Ticks = uint64(ticks) //#nosec G115 -- written from a uint64
		rec.Phase, _ = breakout.ParsePhase(phase)
		rec.CreatedAt = parseTime(createdAt)
		runs = append(runs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score of any stored run, 0 when there are none.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// DeleteRun removes a recording.
func (s *Store) DeleteRun(id int64) error {
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	return nil
}

func encodeIntents(intents []int8) []byte {
	out := make([]byte, len(intents))
	for i, d := range intents {
		out[i] = byte(d) //#nosec G115 -- two's complement round trip
	}
	return out
}

func decodeIntents(data []byte) []int8 {
	out := make([]int8, len(data))
	for i, b := range data {
		out[i] = int8(b) //#nosec G115 -- two's complement round trip
	}
	return out
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
