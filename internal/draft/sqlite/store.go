package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/artpar/auweb/internal/core"
	"github.com/artpar/auweb/internal/draft"
	_ "modernc.org/sqlite"
)

// Store implements draft.Store using SQLite.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// New creates a new SQLite-based draft store, creating the parent directory.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create draft directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open draft database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize draft database: %w", err)
	}

	return store, nil
}

// NewInMemory creates a new in-memory SQLite store (useful for testing).
func NewInMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
		CREATE TABLE IF NOT EXISTS request_draft (
			id        INTEGER PRIMARY KEY CHECK (id = 1),
			url       TEXT NOT NULL,
			method    TEXT NOT NULL,
			headers   TEXT NOT NULL,
			body      TEXT NOT NULL,
			highlight TEXT NOT NULL,
			saved_at  INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load returns the saved draft.
func (s *Store) Load(ctx context.Context) (*draft.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, draft.ErrStoreClosed
	}

	var (
		d       draft.Draft
		method  string
		savedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT url, method, headers, body, highlight, saved_at FROM request_draft WHERE id = 1",
	).Scan(&d.URL, &method, &d.Headers, &d.Body, &d.Highlight, &savedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, draft.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	d.Method = core.Method(method)
	d.SavedAt = time.Unix(savedAt, 0)
	return &d, nil
}

// Save replaces the saved draft.
func (s *Store) Save(ctx context.Context, d *draft.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return draft.ErrStoreClosed
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO request_draft (id, url, method, headers, body, highlight, saved_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?)`,
		d.URL, string(d.Method), d.Headers, d.Body, d.Highlight, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

// Clear removes the saved draft.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return draft.ErrStoreClosed
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM request_draft"); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}

	return nil
}

// Close closes the store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

var _ draft.Store = (*Store)(nil)
