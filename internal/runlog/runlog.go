package runlog

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for batch run history.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// RunRecord is one batch invocation.
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time

	// DraftPath is the email draft written for this run, empty when
	// drafting was not requested.
	DraftPath string

	// OrderCount is the number of orders requested, including failures.
	OrderCount int
}

// OutcomeRecord is one order's result inside a run. Seq is the order's
// position in the batch input, starting at 0.
type OutcomeRecord struct {
	RunID   string
	Seq     int
	OrderID string
	State   string

	// Reason is the failure description, empty on success.
	Reason string

	Documents []DocumentRecord
}

// DocumentRecord is one generated file inside a run.
type DocumentRecord struct {
	OrderID     string
	Kind        string
	Path        string
	GeneratedAt time.Time
}

// Open creates or opens the run-history database at the given path.
// Applies required pragmas and the schema automatically; safe to call
// repeatedly against the same file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
