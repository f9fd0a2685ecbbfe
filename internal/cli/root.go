package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitflow/internal/backup"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/storage"
)

// Context is handed to every command's Run method. Store is nil for
// commands that do not touch the database.
type Context struct {
	Store   storage.Provider
	Backend string
	DataDir string
	JSON    bool
	In      io.Reader
	Out     io.Writer
	Now     func() time.Time
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

// Confirm asks a yes/no question on Out and reads the answer from In.
// Anything but y or yes is a no.
func (c *Context) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out(), "%s [y/N]: ", question)
	response, err := bufio.NewReader(c.in()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// Printf writes human-readable output; suppressed in JSON mode
func (c *Context) Printf(format string, args ...any) {
	if c.JSON {
		return
	}
	fmt.Fprintf(c.out(), format, args...)
}

// PrintJSON writes v as indented JSON
func (c *Context) PrintJSON(v any) error {
	enc := json.NewEncoder(c.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result prints v as JSON in JSON mode, otherwise calls human
func (c *Context) Result(v any, human func()) error {
	if c.JSON {
		return c.PrintJSON(v)
	}
	human()
	return nil
}

// CurrentTime returns Now() or the wall clock
func (c *Context) CurrentTime() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// BackupManager returns a manager for the SQLite file, or an error for
// backends that are not a local file.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if c.Store == nil {
		return nil, fmt.Errorf("no database is open")
	}
	if c.Backend == constants.BackendPostgres {
		return nil, fmt.Errorf("backups are only supported for the %s backend", constants.BackendSQLite)
	}
	return backup.NewManager(c.Store.Path()), nil
}

// PerformAutomaticBackup snapshots the database before destructive
// commands and only logs on failure.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.BackupManager()
	if err != nil {
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseTimestamp accepts RFC 3339 or a YYYY-MM-DD date (midnight local).
// An empty string means now.
func ParseTimestamp(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(constants.DateFormat, s, now.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC 3339 or YYYY-MM-DD)", s)
}

// ParseTags splits a comma-separated list, trimming blanks. Duplicates and
// order are kept.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// Deref renders an optional string for tables
func Deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// FormatTime renders a timestamp in local time for humans
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
