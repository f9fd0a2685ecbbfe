package pomodoro

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/models"
)

type PomodoroCmd struct {
	List PomodoroListCmd `cmd:"" default:"withargs" help:"List pomodoro sessions, newest first."`
	Add  PomodoroAddCmd  `cmd:"" help:"Record a pomodoro session."`
}

type PomodoroListCmd struct {
	Habit string `help:"Only show sessions attached to this habit id."`
}

func (c *PomodoroListCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.ListPomodoroSessions()
	if err != nil {
		return err
	}

	if c.Habit != "" {
		filtered := []models.PomodoroSession{}
		for _, s := range sessions {
			if s.HabitID != nil && *s.HabitID == c.Habit {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	return ctx.Result(sessions, func() {
		if len(sessions) == 0 {
			ctx.Printf("No pomodoro sessions found.\n")
			return
		}
		for _, s := range sessions {
			done := " "
			if s.Completed {
				done = "✓"
			}
			ctx.Printf("%s  %s %-11s %5s  %-36s %s\n",
				cli.FormatTime(s.StartedAt), done, s.Type, time.Duration(s.Duration)*time.Second, cli.Deref(s.HabitID), s.ID)
		}
	})
}

type PomodoroAddCmd struct {
	Type      string  `help:"Session type." enum:"work,short_break,long_break" default:"work"`
	ID        string  `help:"Explicit id (default: random UUID)."`
	Duration  int     `help:"Length in seconds (default: from settings for the session type)."`
	Habit     *string `help:"Habit id the session was spent on."`
	Completed bool    `help:"Mark the session as finished."`
	StartedAt string  `name:"started-at" help:"Start time (RFC 3339 or YYYY-MM-DD, default: now)."`
	EndedAt   string  `name:"ended-at" help:"End time (RFC 3339 or YYYY-MM-DD)."`
}

func (c *PomodoroAddCmd) Run(ctx *cli.Context) error {
	startedAt, err := cli.ParseTimestamp(c.StartedAt, ctx.CurrentTime())
	if err != nil {
		return err
	}

	session := models.PomodoroSession{
		ID:        c.ID,
		HabitID:   c.Habit,
		Duration:  c.Duration,
		Type:      models.SessionType(c.Type),
		Completed: c.Completed,
		StartedAt: startedAt,
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if c.EndedAt != "" {
		endedAt, err := cli.ParseTimestamp(c.EndedAt, ctx.CurrentTime())
		if err != nil {
			return err
		}
		session.EndedAt = &endedAt
	}
	if session.Duration == 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		session.Duration = defaultDuration(settings, session.Type)
	}
	if err := session.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddPomodoroSession(session); err != nil {
		return fmt.Errorf("failed to add pomodoro session: %w", err)
	}

	return ctx.Result(session, func() {
		ctx.Printf("Recorded %s session of %s (%s)\n", session.Type, time.Duration(session.Duration)*time.Second, session.ID)
	})
}

func defaultDuration(s models.Settings, t models.SessionType) int {
	switch t {
	case models.SessionShortBreak:
		return s.ShortBreakDuration
	case models.SessionLongBreak:
		return s.LongBreakDuration
	default:
		return s.WorkDuration
	}
}
