// Package sqlite implements storage.Provider on an embedded SQLite file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/schema"
	"github.com/julianstephens/habitflow/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

// Store holds the single connection. mu is held for the whole of every
// operation, so statements from concurrent callers never interleave.
type Store struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

// Open creates the parent directories and the database file if needed and
// applies the schema. Calling it on an existing database keeps all rows.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := schema.Apply(db, schema.SQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Debug("Opened SQLite store", "path", path)
	return &Store{path: path, db: db}, nil
}

// dsn enables foreign keys on the connection; the cascade rules depend on it
func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) Path() string {
	return s.path
}

// Ping checks the file is reachable, foreign keys are enforced and the
// integrity check passes.
func (s *Store) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return apperrors.ErrClosed
	}
	if err := s.db.Ping(); err != nil {
		return apperrors.Storage("ping database", err)
	}

	var fk int
	if err := s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		return apperrors.Storage("read foreign_keys pragma", err)
	}
	if fk != 1 {
		return apperrors.Storage("check foreign keys", fmt.Errorf("foreign key enforcement is off"))
	}

	var result string
	if err := s.db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return apperrors.Storage("run integrity check", err)
	}
	if result != "ok" {
		return apperrors.Storage("run integrity check", fmt.Errorf("integrity check reported: %s", result))
	}
	return nil
}

// GetDB returns the underlying handle, nil once closed.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

// lock acquires exclusive access and fails if the store was closed
func (s *Store) lock() error {
	s.mu.Lock()
	if s.db == nil {
		s.mu.Unlock()
		return apperrors.ErrClosed
	}
	return nil
}

// insertError maps a failed INSERT to a conflict or a generic storage failure
func insertError(op string, err error) error {
	if isConflict(err) {
		return apperrors.Conflict(op, err)
	}
	return apperrors.Storage(op, err)
}

func isConflict(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// exec runs one statement and logs when it matched no row
func (s *Store) exec(op, query string, args ...any) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return apperrors.Storage(op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		logger.Debug("Statement matched no rows", "op", op)
	}
	return nil
}
