// Package storage provides SQLite-based persistence for match replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

var (
	// ErrNotFound is returned when no replay matches an id.
	ErrNotFound = errors.New("storage: replay not found")
	// ErrAmbiguous is returned when an id prefix matches several replays.
	ErrAmbiguous = errors.New("storage: replay id prefix is ambiguous")
)

// Fixed width so that text order equals time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is a recorded match: the configuration it ran with and every
// frame fed to it.
type Replay struct {
	ID        string
	CreatedAt time.Time
	Config    []byte // YAML-encoded match configuration
	Banner    string // Banner shown after the last frame
	FinalHash uint64 // Snapshot hash after the last frame
	Frames    []pong.RecordedFrame
}

// ReplaySummary is a replay without its frames.
type ReplaySummary struct {
	ID         string
	CreatedAt  time.Time
	FrameCount int
	Duration   time.Duration // Simulated time, sum of frame deltas
	Banner     string
	FinalHash  uint64
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
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			config TEXT NOT NULL,
			frame_count INTEGER NOT NULL,
			duration_secs REAL NOT NULL,
			banner TEXT NOT NULL DEFAULT '',
			final_hash INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			dt REAL NOT NULL,
			held INTEGER NOT NULL,
			pressed INTEGER NOT NULL,
			PRIMARY KEY (replay_id, seq)
		);
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

// SaveReplay stores a replay with all of its frames in one transaction.
// A new id is generated when r.ID is empty, and CreatedAt defaults to now.
// Returns the replay id.
func (s *Store) SaveReplay(r Replay) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	var duration float64
	for _, f := range r.Frames {
		duration += f.DT
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.Exec(
		`INSERT INTO replays (id, created_at, config, frame_count, duration_secs, banner, final_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.CreatedAt.UTC().Format(timeLayout),
		string(r.Config),
		len(r.Frames),
		duration,
		r.Banner,
		int64(r.FinalHash), //#nosec G115 -- stored as raw bits
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO replay_frames (replay_id, seq, dt, held, pressed) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range r.Frames {
		held, pressed := f.Input.Bits()
		if _, err := stmt.Exec(r.ID, i, f.DT, held, pressed); err != nil {
			return "", fmt.Errorf("storage: cannot save frame %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return r.ID, nil
}

// Replays retrieves the most recent replay summaries, newest first.
func (s *Store) Replays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, frame_count, duration_secs, banner, final_hash
		 FROM replays
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var summaries []ReplaySummary
	for rows.Next() {
		var (
			sum       ReplaySummary
			createdAt string
			duration  float64
			hash      int64
		)
		if err := rows.Scan(&sum.ID, &createdAt, &sum.FrameCount, &duration, &sum.Banner, &hash); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.CreatedAt = parseTime(createdAt)
		sum.Duration = time.Duration(duration * float64(time.Second))
		sum.FinalHash = uint64(hash) //#nosec G115 -- stored as raw bits
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// LoadReplay retrieves a replay with all of its frames.
// Returns ErrNotFound if no replay has the given id.
func (s *Store) LoadReplay(id string) (*Replay, error) {
	var (
		r         Replay
		createdAt string
		cfg       string
		hash      int64
	)
	err := s.db.QueryRow(
		`SELECT id, created_at, config, banner, final_hash FROM replays WHERE id = ?`,
		id,
	).Scan(&r.ID, &createdAt, &cfg, &r.Banner, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	r.Config = []byte(cfg)
	r.FinalHash = uint64(hash) //#nosec G115 -- stored as raw bits

	rows, err := s.db.Query(
		`SELECT dt, held, pressed FROM replay_frames WHERE replay_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dt            float64
			held, pressed uint16
		)
		if err := rows.Scan(&dt, &held, &pressed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		r.Frames = append(r.Frames, pong.RecordedFrame{
			DT:    dt,
			Input: core.FrameFromBits(held, pressed),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// ResolveID expands an id prefix to the full replay id.
func (s *Store) ResolveID(prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrNotFound
	}
	if _, err := uuid.Parse(prefix); err == nil {
		return prefix, nil
	}

	rows, err := s.db.Query(
		`SELECT id FROM replays WHERE substr(id, 1, ?) = ? LIMIT 2`,
		len(prefix), prefix,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query replay ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", ErrNotFound
	case 1:
		return ids[0], nil
	default:
		return "", ErrAmbiguous
	}
}

// DeleteReplay removes a replay and its frames.
// Returns ErrNotFound if no replay has the given id.
func (s *Store) DeleteReplay(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec("DELETE FROM replay_frames WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// Count returns the number of stored replays.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM replays").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count replays: %w", err)
	}
	return n, nil
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
