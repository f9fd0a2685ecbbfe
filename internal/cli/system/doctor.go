package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
)

type DoctorCmd struct{}

type check struct {
	name string
	// warnOnly failures are reported but do not fail the command
	warnOnly bool
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
	run     func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Habit integrity", needsDB: true, run: checkHabits},
	{name: "Completion references", needsDB: true, run: checkCompletions},
	{name: "Mood entries", needsDB: true, run: checkMoodEntries},
	{name: "Pomodoro sessions", needsDB: true, run: checkPomodoroSessions},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Printf("Running diagnostics...\n\n")

	hasError := false
	dbReachable := true
	if err := ctx.Store.Ping(); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
		}
	}

	ctx.Printf("\n")
	if hasError {
		ctx.Printf("Diagnostics completed with errors.\n")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Printf("All diagnostics passed!\n")
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	return settings.Validate()
}

func checkHabits(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("habit %s: %w", h.ID, err)
		}
	}
	return nil
}

func checkCompletions(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}

	completions, err := ctx.Store.ListCompletions()
	if err != nil {
		return err
	}
	for _, c := range completions {
		if !known[c.HabitID] {
			return fmt.Errorf("completion %s references missing habit %s", c.ID, c.HabitID)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("completion %s: %w", c.ID, err)
		}
	}
	return nil
}

func checkMoodEntries(ctx *cli.Context) error {
	entries, err := ctx.Store.ListMoodEntries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("mood entry %s: %w", e.ID, err)
		}
	}
	return nil
}

func checkPomodoroSessions(ctx *cli.Context) error {
	sessions, err := ctx.Store.ListPomodoroSessions()
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("session %s: %w", s.ID, err)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if ctx.Backend == constants.BackendPostgres {
		return nil
	}
	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitflow backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.CurrentTime()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation(now.Location().String()); err != nil {
		return fmt.Errorf("cannot load local timezone %q: %w", now.Location(), err)
	}
	return nil
}
