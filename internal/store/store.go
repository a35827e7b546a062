// Package store is the persistence layer for learner progress:
// per-question attempt counters, per-topic aggregates, the session
// log, and the subject/script filter index. All access goes through a
// single store-wide mutex because the underlying SQLite handle is
// shared by UI-triggered worker threads.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	mu     sync.Mutex
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Progress returns the per-question progress repository.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{client: s.client, mu: &s.mu}
}

// Topics returns the topic-progress repository.
func (s *Store) Topics() TopicRepo {
	return &topicRepo{client: s.client, mu: &s.mu}
}

// Sessions returns the learning-session repository.
func (s *Store) Sessions() SessionRepo {
	return &sessionRepo{client: s.client, mu: &s.mu}
}

// Subjects returns the subject/script repository.
func (s *Store) Subjects() SubjectRepo {
	return &subjectRepo{client: s.client, mu: &s.mu}
}

// ResetProgress wipes all learner data: per-question progress, topic
// aggregates, the session log, and the subject index. The question
// catalog on disk is untouched.
func (s *Store) ResetProgress(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	if _, err := tx.QuestionProgress.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("reset question progress: %w", err)
	}
	if _, err := tx.TopicProgress.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("reset topic progress: %w", err)
	}
	if _, err := tx.LearningSession.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("reset session log: %w", err)
	}
	if _, err := tx.SubjectScript.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("reset subject index: %w", err)
	}
	return tx.Commit()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LERNBOX_DB environment variable
// 2. $XDG_DATA_HOME/lernbox/progress.db
// 3. ~/.local/share/lernbox/progress.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LERNBOX_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lernbox", "progress.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
