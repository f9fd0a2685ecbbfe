package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

type InitCmd struct {
	Force bool `help:"Delete the existing SQLite database (after backing it up) and start fresh."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if ctx.Backend != constants.BackendSQLite {
			return fmt.Errorf("--force is only supported for the %s backend", constants.BackendSQLite)
		}
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	// Opening the store already applied the schema; Ping proves it
	if err := ctx.Store.Ping(); err != nil {
		return err
	}
	ctx.Printf("Initialized habitflow storage at: %s\n", ctx.Store.Path())
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.Path()
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backupPath, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("failed to back up existing database: %w", err)
	}
	ctx.Printf("Backed up existing database to: %s\n", backupPath)

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	ctx.Printf("Deleted existing database at: %s\n", dbPath)

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	ctx.Store = store
	return nil
}
