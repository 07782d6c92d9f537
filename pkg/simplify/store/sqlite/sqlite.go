package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	// SQLite has a single writer; serialize instead of surfacing SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	producer TEXT NOT NULL,
	seed INTEGER DEFAULT 0,
	input TEXT NOT NULL,
	outputs TEXT NOT NULL,
	fell_back INTEGER DEFAULT 0,
	violations TEXT,
	grade REAL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id: %w", internalerr.ErrInvalidInput)
	}
	outputsJSON, err := json.Marshal(r.Outputs)
	if err != nil {
		return err
	}
	violationsJSON, err := json.Marshal(r.Violations)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO runs (id, created_at, producer, seed, input, outputs, fell_back, violations, grade)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	producer=excluded.producer,
	seed=excluded.seed,
	input=excluded.input,
	outputs=excluded.outputs,
	fell_back=excluded.fell_back,
	violations=excluded.violations,
	grade=excluded.grade;
`, r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Producer, int64(r.Seed), r.Input,
		string(outputsJSON), boolToInt(r.FellBack), string(violationsJSON), r.Grade)
	return err
}

const selectRun = `SELECT id, created_at, producer, seed, input, outputs, fell_back, violations, grade FROM runs`

// GetRun retrieves a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?;`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// ListRuns returns the newest runs first. IDs are ULIDs, so ID order is
// creation order.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, selectRun+`
ORDER BY id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.Run, error) {
	var (
		r              store.Run
		createdAt      string
		seed           int64
		outputsJSON    string
		fellBack       int
		violationsJSON sql.NullString
	)
	if err := sc.Scan(&r.ID, &createdAt, &r.Producer, &seed, &r.Input, &outputsJSON, &fellBack, &violationsJSON, &r.Grade); err != nil {
		return store.Run{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("run %s: bad created_at: %w", r.ID, err)
	}
	r.CreatedAt = t
	r.Seed = uint64(seed)
	r.FellBack = fellBack != 0

	if err := json.Unmarshal([]byte(outputsJSON), &r.Outputs); err != nil {
		return store.Run{}, err
	}
	if violationsJSON.Valid && violationsJSON.String != "" {
		if err := json.Unmarshal([]byte(violationsJSON.String), &r.Violations); err != nil {
			return store.Run{}, err
		}
	}
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
