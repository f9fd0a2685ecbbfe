package settings

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/storage"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"withargs" help:"Show current settings."`
	Set  SettingsSetCmd  `cmd:"" help:"Change one setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	return ctx.Result(settings, func() {
		ctx.Printf("Current Settings:\n")
		for _, p := range storage.SettingsPairs(settings) {
			ctx.Printf("  %-36s %s\n", p.Key, p.Value)
		}
	})
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key, e.g. pomodoro_work_duration."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if !storage.IsSettingKey(c.Key) {
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := storage.ApplySetting(&settings, c.Key, c.Value); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	ctx.Printf("Settings updated successfully.\n")
	return nil
}
