package completions

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/models"
)

type CompletionCmd struct {
	List   CompletionListCmd   `cmd:"" default:"withargs" help:"List completions, newest first."`
	Add    CompletionAddCmd    `cmd:"" help:"Record a completion for a habit."`
	Delete CompletionDeleteCmd `cmd:"" help:"Delete a completion."`
}

type CompletionListCmd struct {
	Habit string `help:"Only show completions of this habit id."`
}

func (c *CompletionListCmd) Run(ctx *cli.Context) error {
	completions, err := ctx.Store.ListCompletions()
	if err != nil {
		return err
	}

	if c.Habit != "" {
		filtered := []models.HabitCompletion{}
		for _, comp := range completions {
			if comp.HabitID == c.Habit {
				filtered = append(filtered, comp)
			}
		}
		completions = filtered
	}

	return ctx.Result(completions, func() {
		if len(completions) == 0 {
			ctx.Printf("No completions found.\n")
			return
		}
		for _, comp := range completions {
			ctx.Printf("%s  %-36s x%d  %s  %s\n", cli.FormatTime(comp.CompletedAt), comp.HabitID, comp.Count, comp.ID, cli.Deref(comp.Notes))
		}
	})
}

type CompletionAddCmd struct {
	Habit string  `arg:"" help:"Habit id."`
	ID    string  `help:"Explicit id (default: random UUID)."`
	Count int     `help:"How many times the habit was done." default:"1"`
	Notes *string `help:"Optional note."`
	At    string  `help:"Completion time (RFC 3339 or YYYY-MM-DD, default: now)."`
}

func (c *CompletionAddCmd) Run(ctx *cli.Context) error {
	at, err := cli.ParseTimestamp(c.At, ctx.CurrentTime())
	if err != nil {
		return err
	}

	comp := models.HabitCompletion{
		ID:          c.ID,
		HabitID:     c.Habit,
		CompletedAt: at,
		Count:       c.Count,
		Notes:       c.Notes,
	}
	if comp.ID == "" {
		comp.ID = uuid.New().String()
	}
	if err := comp.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddCompletion(comp); err != nil {
		return fmt.Errorf("failed to add completion: %w", err)
	}

	return ctx.Result(comp, func() {
		ctx.Printf("Recorded completion %s for habit %s\n", comp.ID, comp.HabitID)
	})
}

type CompletionDeleteCmd struct {
	ID string `arg:"" help:"Completion id."`
}

func (c *CompletionDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteCompletion(c.ID); err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return ctx.Result(map[string]any{"id": c.ID, "deleted": true}, func() {
		ctx.Printf("Deleted completion %s\n", c.ID)
	})
}
