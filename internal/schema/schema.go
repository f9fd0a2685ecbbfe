// Package schema holds the embedded schema scripts and applies them.
//
// Every statement is create-if-absent, so applying the scripts on every
// startup never drops or alters existing data. There is no version
// table: new columns in later releases are not handled here.
package schema

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

// Dialect selects which set of scripts to apply
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

//go:embed sqlite/*.sql postgres/*.sql
var scripts embed.FS

// Tables lists every table the scripts create
var Tables = []string{"habits", "habit_completions", "mood_entries", "pomodoro_sessions", "achievements", "settings"}

// Script is a single schema file
type Script struct {
	Order int
	Name  string
	SQL   string
}

// ReadScripts returns the scripts for a dialect sorted by their numeric prefix
func ReadScripts(dialect Dialect) ([]Script, error) {
	sub, err := fs.Sub(scripts, string(dialect))
	if err != nil {
		return nil, fmt.Errorf("unknown schema dialect %q: %w", dialect, err)
	}
	return readScripts(sub)
}

func readScripts(fsys fs.FS) ([]Script, error) {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	var out []Script
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		// "001_tables.sql" -> 1, "tables"
		parts := strings.SplitN(file.Name(), "_", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid schema filename format: %s (expected NNN_name.sql)", file.Name())
		}
		order, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid order number in filename %s: %w", file.Name(), err)
		}

		content, err := fs.ReadFile(fsys, file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", file.Name(), err)
		}

		out = append(out, Script{
			Order: order,
			Name:  strings.TrimSuffix(parts[1], ".sql"),
			SQL:   string(content),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})

	for i := 1; i < len(out); i++ {
		if out[i].Order == out[i-1].Order {
			return nil, fmt.Errorf("duplicate schema order %d", out[i].Order)
		}
	}

	return out, nil
}

// Apply runs every script for the dialect inside one transaction, so a
// failure part way leaves the database as it was.
func Apply(db *sql.DB, dialect Dialect) error {
	list, err := ReadScripts(dialect)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("no schema scripts found for %s", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}

	for _, s := range list {
		if _, err := tx.Exec(s.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to apply schema script %d (%s): %w", s.Order, s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}
