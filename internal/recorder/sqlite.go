package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists poll diagnostics to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS poll_events (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			run_id       TEXT,
			request_id   INTEGER,
			symbol       TEXT,
			interval     TEXT,
			provider     TEXT,
			status       TEXT,
			sample_count INTEGER,
			error        TEXT,
			duration_ms  INTEGER,
			stale        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_poll_ts ON poll_events(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_poll_run ON poll_events(run_id, request_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPoll(evt *PollEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stale := 0
	if evt.Stale {
		stale = 1
	}
	_, err := r.db.Exec(`INSERT INTO poll_events
		(timestamp, run_id, request_id, symbol, interval, provider, status, sample_count, error, duration_ms, stale)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, int64(evt.RequestID), evt.Symbol, evt.Interval, evt.Provider,
		string(evt.Status), evt.Samples, evt.Error, evt.Duration.Milliseconds(), stale,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
