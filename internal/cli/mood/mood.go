package mood

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/stats"
)

type MoodCmd struct {
	List   MoodListCmd   `cmd:"" default:"withargs" help:"List mood entries, newest first."`
	Add    MoodAddCmd    `cmd:"" help:"Log a mood entry."`
	Update MoodUpdateCmd `cmd:"" help:"Change fields of a mood entry."`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
}

type MoodListCmd struct{}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.ListMoodEntries()
	if err != nil {
		return err
	}

	return ctx.Result(entries, func() {
		if len(entries) == 0 {
			ctx.Printf("No mood entries found.\n")
			return
		}
		for _, e := range entries {
			tags := ""
			if len(e.Tags) > 0 {
				tags = " #" + strings.Join(e.Tags, " #")
			}
			ctx.Printf("%s  %s %d  %s%s\n", cli.FormatTime(e.CreatedAt), e.Emoji, e.MoodLevel, e.ID, tags)
			if e.Journal != nil {
				ctx.Printf("    %s\n", *e.Journal)
			}
		}
		ctx.Printf("\nMood streak: %d day(s)\n", stats.MoodStreak(entries, ctx.CurrentTime()))
	})
}

type MoodAddCmd struct {
	Level   int     `arg:"" help:"Mood level from 1 (worst) to 5 (best)."`
	ID      string  `help:"Explicit id (default: random UUID)."`
	Emoji   string  `help:"Emoji (default depends on level)."`
	Journal *string `help:"Journal text."`
	Tags    string  `help:"Comma-separated tags."`
	At      string  `help:"Entry time (RFC 3339 or YYYY-MM-DD, default: now)."`
}

func (c *MoodAddCmd) Run(ctx *cli.Context) error {
	at, err := cli.ParseTimestamp(c.At, ctx.CurrentTime())
	if err != nil {
		return err
	}

	entry := models.MoodEntry{
		ID:        c.ID,
		MoodLevel: c.Level,
		Emoji:     c.Emoji,
		Journal:   c.Journal,
		Tags:      cli.ParseTags(c.Tags),
		CreatedAt: at,
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Emoji == "" {
		entry.Emoji = models.MoodEmoji[entry.MoodLevel]
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddMoodEntry(entry); err != nil {
		return fmt.Errorf("failed to add mood entry: %w", err)
	}

	return ctx.Result(entry, func() {
		ctx.Printf("Logged mood %s %d (%s)\n", entry.Emoji, entry.MoodLevel, entry.ID)
	})
}

type MoodUpdateCmd struct {
	ID      string  `arg:"" help:"Mood entry id."`
	Level   *int    `help:"New mood level."`
	Emoji   *string `help:"New emoji."`
	Journal *string `help:"New journal text."`
	Tags    *string `help:"Replace tags with this comma-separated list (empty clears)."`
}

func (c *MoodUpdateCmd) Run(ctx *cli.Context) error {
	update := models.MoodEntryUpdate{
		MoodLevel: c.Level,
		Emoji:     c.Emoji,
		Journal:   c.Journal,
	}
	if c.Tags != nil {
		tags := cli.ParseTags(*c.Tags)
		update.Tags = &tags
	}
	if update.MoodLevel != nil && (*update.MoodLevel < models.MinMoodLevel || *update.MoodLevel > models.MaxMoodLevel) {
		return fmt.Errorf("mood level must be between %d and %d", models.MinMoodLevel, models.MaxMoodLevel)
	}
	if update.IsEmpty() {
		return ctx.Result(map[string]any{"id": c.ID, "updated": false}, func() {
			ctx.Printf("Nothing to update.\n")
		})
	}

	if err := ctx.Store.UpdateMoodEntry(c.ID, update); err != nil {
		return fmt.Errorf("failed to update mood entry: %w", err)
	}

	return ctx.Result(map[string]any{"id": c.ID, "updated": true}, func() {
		ctx.Printf("Updated mood entry %s\n", c.ID)
	})
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (c *MoodDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteMoodEntry(c.ID); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	return ctx.Result(map[string]any{"id": c.ID, "deleted": true}, func() {
		ctx.Printf("Deleted mood entry %s\n", c.ID)
	})
}
