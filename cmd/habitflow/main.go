package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/cli/achievements"
	"github.com/julianstephens/habitflow/internal/cli/backups"
	"github.com/julianstephens/habitflow/internal/cli/completions"
	"github.com/julianstephens/habitflow/internal/cli/habits"
	"github.com/julianstephens/habitflow/internal/cli/mood"
	"github.com/julianstephens/habitflow/internal/cli/pomodoro"
	"github.com/julianstephens/habitflow/internal/cli/settings"
	"github.com/julianstephens/habitflow/internal/cli/system"
	"github.com/julianstephens/habitflow/internal/config"
	"github.com/julianstephens/habitflow/internal/constants"
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/keyring"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/storage"
	"github.com/julianstephens/habitflow/internal/storage/postgres"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path (default: <config dir>/habitflow/config.yaml)." type:"path"`
	DataDir string `name:"data-dir" help:"Directory holding the database, backups and logs." type:"path"`
	Backend string `help:"Storage backend (sqlite or postgres). PostgreSQL reads its connection string from HABITFLOW_DB_CONNECTION or the OS keyring."`
	Debug   bool   `help:"Log debug output to stderr."`
	JSON    bool   `name:"json" help:"Print results as JSON."`

	Init   system.InitCmd   `cmd:"" help:"Initialize habitflow storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`

	Habit       habits.HabitCmd             `cmd:"" help:"Manage habits."`
	Completion  completions.CompletionCmd   `cmd:"" help:"Manage habit completions."`
	Mood        mood.MoodCmd                `cmd:"" help:"Manage mood entries."`
	Pomodoro    pomodoro.PomodoroCmd        `cmd:"" help:"Manage pomodoro sessions."`
	Achievement achievements.AchievementCmd `cmd:"" help:"Manage achievements."`
	Settings    settings.SettingsCmd        `cmd:"" help:"Manage application settings."`
	Backup      backups.BackupCmd           `cmd:"" help:"Manage database backups."`
	Keyring     system.KeyringCmd           `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habits, mood, pomodoro and achievements tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       constants.Version,
			"default_icon":  constants.DefaultHabitIcon,
			"default_color": constants.DefaultHabitColor,
		},
	)

	cfg, err := config.Load(config.Overrides{
		ConfigFile: CLI.Config,
		DataDir:    CLI.DataDir,
		Backend:    CLI.Backend,
		Debug:      CLI.Debug,
	})
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Loaded configuration", "backend", cfg.Backend, "data_dir", cfg.DataDir,
		"config_file", cfg.ConfigFile, "log_file", logger.FilePath(cfg.DataDir))

	appCtx := &cli.Context{
		Backend: cfg.Backend,
		DataDir: cfg.DataDir,
		JSON:    CLI.JSON,
	}

	// keyring commands must work before any database is reachable
	if !strings.HasPrefix(ctx.Command(), "keyring") {
		store, err := openStore(cfg)
		if err != nil {
			apperrors.Fatal(err)
		}
		appCtx.Store = store
	}

	err = ctx.Run(appCtx)
	if appCtx.Store != nil {
		if closeErr := appCtx.Store.Close(); closeErr != nil {
			logger.Warn("Failed to close database", "error", closeErr)
		}
	}
	apperrors.Fatal(err)
}

func openStore(cfg config.Config) (storage.Provider, error) {
	if cfg.Backend != constants.BackendPostgres {
		store, err := sqlite.Open(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	connStr, err := keyring.ResolveConnectionString()
	if err != nil {
		return nil, err
	}
	// a password is tolerated here: it came from the encrypted keyring or
	// the user's own environment
	if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return nil, err
	}
	store, err := postgres.Open(connStr)
	if err != nil {
		return nil, err
	}
	return store, nil
}
