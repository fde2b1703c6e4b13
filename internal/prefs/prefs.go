// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prefs persists process-wide UI preferences (color scheme,
// background scheme) in a small SQLite key-value store. It is an
// external collaborator of the rendering core: document rendering never
// depends on it.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound reports that no value is stored under the requested key.
var ErrNotFound = errors.New("preference not found")

// Store is a SQLite-backed key-value preference store with change
// subscriptions. Safe for concurrent use.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	subs map[string][]chan string
}

// Open opens or creates the preference database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening preference database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating prefs schema: %w", err)
	}

	return &Store{db: db, subs: map[string][]chan string{}}, nil
}

// Close releases the database and closes all subscription channels.
func (s *Store) Close() error {
	s.mu.Lock()
	for _, chans := range s.subs {
		for _, ch := range chans {
			close(ch)
		}
	}
	s.subs = map[string][]chan string{}
	s.mu.Unlock()

	return s.db.Close()
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key and notifies subscribers. A subscriber
// that is not keeping up misses intermediate values rather than
// blocking the writer.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("storing preference %s: %w", key, err)
	}

	s.mu.Lock()
	for _, ch := range s.subs[key] {
		select {
		case ch <- value:
		default:
		}
	}
	s.mu.Unlock()
	return nil
}

// Subscribe returns a channel receiving every subsequent value stored
// under key, plus a cancel function that removes the subscription and
// closes the channel.
func (s *Store) Subscribe(key string) (<-chan string, func()) {
	ch := make(chan string, 1)

	s.mu.Lock()
	s.subs[key] = append(s.subs[key], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		chans := s.subs[key]
		for i, c := range chans {
			if c == ch {
				s.subs[key] = append(chans[:i], chans[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}
