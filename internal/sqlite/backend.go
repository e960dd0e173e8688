// Package sqlite implements the answer log: every recorded solve is kept in
// runs.jsonl, the source of truth, and loaded into an SQLite database on
// Attach for querying.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// dbFile is the query database inside DataDir. It is rebuilt from
// runs.jsonl on every Attach.
const dbFile = "answers.db"

// Backend is the answer log.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   puzzle.Config
	db       *sql.DB
	log      *zap.Logger

	// now stamps new runs.
	now func() time.Time
}

// NewBackend creates a detached answer log. A nil logger discards output.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log, now: time.Now}
}

// Attach creates DataDir if needed, builds a fresh answers.db, creates an
// empty runs.jsonl if none exists and loads it.
// Returns puzzle.ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config puzzle.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return puzzle.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFile)
	// The database is a cache of runs.jsonl; start from an empty schema.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := initJSONLFile(config.DataDir); err != nil {
		db.Close()
		return err
	}
	loaded, err := loadRunsJSONL(db, config.DataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}
	b.log.Debug("answer log attached", zap.String("data_dir", config.DataDir), zap.Int("runs", loaded))

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// generateUUID generates a new UUID v7 for run IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// Record stores run. An empty RunID is replaced with a new UUID v7 and a
// zero CreatedAt with the current time; both are written back into run.
// The run is inserted and runs.jsonl is rewritten atomically.
func (b *Backend) Record(run *puzzle.Run) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return puzzle.ErrLogDetached
	}
	if run.Day < 1 {
		return fmt.Errorf("recording run: day %d is not a puzzle day", run.Day)
	}
	if run.RunID == "" {
		run.RunID = generateUUID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = b.now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	if _, err := b.db.Exec(insertRunSQL, toRunJSON(*run).args()...); err != nil {
		return fmt.Errorf("inserting run %s: %w", run.RunID, err)
	}
	if err := b.persistRunsJSONL(); err != nil {
		return fmt.Errorf("persisting %s: %w", runsJSONL, err)
	}
	b.log.Debug("run recorded", zap.String("run_id", run.RunID), zap.Int("day", run.Day))
	return nil
}

// persistRunsJSONL rewrites runs.jsonl from the runs table, oldest first.
// The caller must hold b.mu.
func (b *Backend) persistRunsJSONL() error {
	runs, err := b.query("ORDER BY created_at ASC, run_id ASC")
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(runs))
	for _, r := range runs {
		data, err := json.Marshal(toRunJSON(r))
		if err != nil {
			return fmt.Errorf("marshaling run for JSONL: %w", err)
		}
		records = append(records, data)
	}
	return writeJSONL(filepath.Join(b.config.DataDir, runsJSONL), records)
}

// Get returns the run with the given id.
func (b *Backend) Get(id string) (puzzle.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return puzzle.Run{}, puzzle.ErrLogDetached
	}
	runs, err := b.query("WHERE run_id = ?", id)
	if err != nil {
		return puzzle.Run{}, err
	}
	if len(runs) == 0 {
		return puzzle.Run{}, fmt.Errorf("%w: %s", puzzle.ErrNotFound, id)
	}
	return runs[0], nil
}

// Fetch returns the runs for day, newest first. Day 0 returns every run.
func (b *Backend) Fetch(day int) ([]puzzle.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, puzzle.ErrLogDetached
	}
	if day == 0 {
		return b.query("ORDER BY created_at DESC, run_id DESC")
	}
	return b.query("WHERE day = ? ORDER BY created_at DESC, run_id DESC", day)
}

// Latest returns the newest run of day computed from the input with the
// given digest.
func (b *Backend) Latest(day int, digest string) (puzzle.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return puzzle.Run{}, puzzle.ErrLogDetached
	}
	runs, err := b.query(
		"WHERE day = ? AND input_digest = ? ORDER BY created_at DESC, run_id DESC LIMIT 1",
		day, digest,
	)
	if err != nil {
		return puzzle.Run{}, err
	}
	if len(runs) == 0 {
		return puzzle.Run{}, fmt.Errorf("%w: day %d with input %s", puzzle.ErrNotFound, day, digest)
	}
	return runs[0], nil
}

// query selects runs with the given WHERE/ORDER clause. The caller must
// hold b.mu.
func (b *Backend) query(clause string, args ...any) ([]puzzle.Run, error) {
	rows, err := b.db.Query("SELECT "+strings.Join(runColumns, ", ")+" FROM runs "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []puzzle.Run
	for rows.Next() {
		var j runJSON
		if err := rows.Scan(&j.RunID, &j.Day, &j.Part1, &j.Part2, &j.InputDigest, &j.DurationMS, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r, err := j.run()
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
