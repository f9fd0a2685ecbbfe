package habits

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/stats"
)

type HabitCmd struct {
	List   HabitListCmd   `cmd:"" default:"withargs" help:"List habits."`
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	Update HabitUpdateCmd `cmd:"" help:"Change fields of a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completions."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show streaks and today's progress."`
}

type HabitListCmd struct {
	Active bool `help:"Hide archived habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	if c.Active {
		kept := habits[:0]
		for _, h := range habits {
			if !h.Archived {
				kept = append(kept, h)
			}
		}
		habits = kept
	}

	return ctx.Result(habits, func() {
		if len(habits) == 0 {
			ctx.Printf("No habits found.\n")
			return
		}
		for _, h := range habits {
			status := ""
			if h.Archived {
				status = " [ARCHIVED]"
			}
			ctx.Printf("%s %-30s %-8s x%d  %s%s\n", h.Icon, h.Name, h.Frequency, h.TargetCount, h.ID, status)
		}
	})
}

type HabitAddCmd struct {
	Name        string  `arg:"" help:"Habit name."`
	ID          string  `help:"Explicit id (default: random UUID)."`
	Description *string `help:"Longer description."`
	Icon        string  `help:"Display icon." default:"${default_icon}"`
	Color       string  `help:"Display color." default:"${default_color}"`
	Frequency   string  `help:"How often the habit is due." enum:"daily,weekly,custom" default:"daily"`
	Target      int     `help:"Completions needed per period." default:"1"`
	Archived    bool    `help:"Create the habit already archived."`
	CreatedAt   string  `name:"created-at" help:"Creation time (RFC 3339 or YYYY-MM-DD, default: now)."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	createdAt, err := cli.ParseTimestamp(c.CreatedAt, ctx.CurrentTime())
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:          c.ID,
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Frequency:   models.Frequency(c.Frequency),
		TargetCount: c.Target,
		CreatedAt:   createdAt,
		Archived:    c.Archived,
	}
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.Icon == "" {
		habit.Icon = constants.DefaultHabitIcon
	}
	if habit.Color == "" {
		habit.Color = constants.DefaultHabitColor
	}
	if err := habit.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}

	return ctx.Result(habit, func() {
		ctx.Printf("Added habit: %s (%s)\n", habit.Name, habit.ID)
	})
}

type HabitUpdateCmd struct {
	ID          string  `arg:"" help:"Habit id."`
	Name        *string `help:"New name."`
	Description *string `help:"New description."`
	Icon        *string `help:"New icon."`
	Color       *string `help:"New color."`
	Archived    *bool   `help:"Archive (true) or unarchive (false)." negatable:""`
}

func (c *HabitUpdateCmd) Run(ctx *cli.Context) error {
	update := models.HabitUpdate{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Archived:    c.Archived,
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if update.IsEmpty() {
		return ctx.Result(map[string]any{"id": c.ID, "updated": false}, func() {
			ctx.Printf("Nothing to update.\n")
		})
	}

	if err := ctx.Store.UpdateHabit(c.ID, update); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	return ctx.Result(map[string]any{"id": c.ID, "updated": true}, func() {
		ctx.Printf("Updated habit %s\n", c.ID)
	})
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(c.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	return ctx.Result(map[string]any{"id": c.ID, "deleted": true}, func() {
		ctx.Printf("Deleted habit %s\n", c.ID)
	})
}

type HabitStatsCmd struct{}

type statsReport struct {
	Habits []stats.HabitStats `json:"habits"`
	Today  stats.Progress     `json:"today"`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}
	completions, err := ctx.Store.ListCompletions()
	if err != nil {
		return err
	}

	now := ctx.CurrentTime()
	report := statsReport{
		Habits: stats.ForHabits(habits, completions, now),
		Today:  stats.TodayProgress(habits, completions, now),
	}

	return ctx.Result(report, func() {
		if len(report.Habits) == 0 {
			ctx.Printf("No active habits.\n")
			return
		}
		ctx.Printf("%-30s %7s %7s %7s %6s\n", "Habit", "Today", "Streak", "Best", "Total")
		ctx.Printf("%s\n", strings.Repeat("-", 62))
		for _, s := range report.Habits {
			today := fmt.Sprintf("%d/%d", s.TodayCount, s.TargetCount)
			if s.CompletedToday {
				today += "✓"
			}
			ctx.Printf("%-30s %7s %7d %7d %6d\n", s.Name, today, s.CurrentStreak, s.LongestStreak, s.TotalCompletions)
		}
		ctx.Printf("\nToday: %d of %d habits done (%d%%)\n", report.Today.Completed, report.Today.Total, report.Today.Percentage)
	})
}
