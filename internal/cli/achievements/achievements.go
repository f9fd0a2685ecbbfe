package achievements

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/models"
)

type AchievementCmd struct {
	List AchievementListCmd `cmd:"" default:"withargs" help:"List unlocked achievements, newest first."`
	Add  AchievementAddCmd  `cmd:"" help:"Record an unlocked achievement."`
}

type AchievementListCmd struct {
	Locked bool `help:"Also show catalog achievements not yet unlocked."`
}

type achievementReport struct {
	Unlocked []models.Achievement           `json:"unlocked"`
	Locked   []models.AchievementDefinition `json:"locked,omitempty"`
}

func (c *AchievementListCmd) Run(ctx *cli.Context) error {
	unlocked, err := ctx.Store.ListAchievements()
	if err != nil {
		return err
	}

	report := achievementReport{Unlocked: unlocked}
	if c.Locked {
		report.Locked = models.LockedAchievements(unlocked)
	}

	return ctx.Result(report, func() {
		if len(unlocked) == 0 {
			ctx.Printf("No achievements unlocked yet.\n")
		}
		for _, a := range unlocked {
			name := string(a.Type)
			if def, ok := models.LookupAchievement(a.Type); ok {
				name = fmt.Sprintf("%s (%d XP)", def.Name, def.XPReward)
			}
			ctx.Printf("%s  %-32s %s\n", cli.FormatTime(a.UnlockedAt), name, a.ID)
		}
		if len(report.Locked) > 0 {
			ctx.Printf("\nLocked:\n")
			for _, def := range report.Locked {
				ctx.Printf("  %-20s %s\n", def.Name, def.Description)
			}
		}
	})
}

type AchievementAddCmd struct {
	Type string `arg:"" help:"Achievement type, e.g. streak_7."`
	ID   string `help:"Explicit id (default: random UUID)."`
	Data string `help:"Opaque JSON payload stored with the achievement."`
	At   string `help:"Unlock time (RFC 3339 or YYYY-MM-DD, default: now)."`
}

func (c *AchievementAddCmd) Run(ctx *cli.Context) error {
	at, err := cli.ParseTimestamp(c.At, ctx.CurrentTime())
	if err != nil {
		return err
	}

	a := models.Achievement{
		ID:         c.ID,
		Type:       models.AchievementType(c.Type),
		UnlockedAt: at,
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if c.Data != "" {
		a.Data = json.RawMessage(c.Data)
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddAchievement(a); err != nil {
		return fmt.Errorf("failed to add achievement: %w", err)
	}

	return ctx.Result(a, func() {
		ctx.Printf("Unlocked %s (%s)\n", a.Type, a.ID)
	})
}
