package system

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitflow/internal/backup"
	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, string, *bytes.Buffer) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitflow.db")
	store, err := sqlite.Open(dbPath)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	ctx := &cli.Context{Store: store, Backend: constants.BackendSQLite, Out: out}
	t.Cleanup(func() { _ = ctx.Store.Close() })
	return ctx, dbPath, out
}

func addHabit(t *testing.T, ctx *cli.Context, id string) {
	t.Helper()
	require.NoError(t, ctx.Store.AddHabit(models.Habit{
		ID: id, Name: id, Icon: "x", Color: "#000000",
		Frequency: models.FrequencyDaily, TargetCount: 1, CreatedAt: time.Now(),
	}))
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, out := setupTestDB(t)

	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Initialized habitflow storage at: "+dbPath)

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, _ := setupTestDB(t)
	addHabit(t, ctx, "h1")

	require.NoError(t, (&InitCmd{}).Run(ctx))
	require.NoError(t, (&InitCmd{}).Run(ctx))

	habits, err := ctx.Store.ListHabits()
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}

func TestInitCmd_Force(t *testing.T) {
	ctx, dbPath, _ := setupTestDB(t)
	addHabit(t, ctx, "h1")

	require.NoError(t, (&InitCmd{Force: true}).Run(ctx))

	habits, err := ctx.Store.ListHabits()
	require.NoError(t, err)
	assert.Empty(t, habits)

	backups, err := backup.NewManager(dbPath).List()
	require.NoError(t, err)
	assert.Len(t, backups, 1, "force keeps a backup of the old database")
}

func TestInitCmd_ForceRejectsPostgres(t *testing.T) {
	ctx, _, _ := setupTestDB(t)
	ctx.Backend = constants.BackendPostgres

	assert.Error(t, (&InitCmd{Force: true}).Run(ctx))
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, _, out := setupTestDB(t)
	addHabit(t, ctx, "h1")

	// missing backups is a warning, not a failure
	require.NoError(t, (&DoctorCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Database reachable: OK")
	assert.Contains(t, out.String(), "⚠ Backups present: WARNING")
	assert.Contains(t, out.String(), "All diagnostics passed!")
}

func TestDoctorCmd_WithBackup(t *testing.T) {
	ctx, dbPath, out := setupTestDB(t)
	_, err := backup.NewManager(dbPath).Create()
	require.NoError(t, err)

	require.NoError(t, (&DoctorCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Backups present: OK")
}

func TestDoctorCmd_ClosedStore(t *testing.T) {
	ctx, _, out := setupTestDB(t)
	require.NoError(t, ctx.Store.Close())

	assert.Error(t, (&DoctorCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "❌ Database reachable: FAIL")
	assert.Contains(t, out.String(), "⊘ Settings: SKIPPED")
}

func TestDoctorCmd_InvalidSettings(t *testing.T) {
	ctx, _, out := setupTestDB(t)
	db := ctx.Store.(*sqlite.Store).GetDB()
	_, err := db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, constants.SettingTheme, "neon")
	require.NoError(t, err)

	assert.Error(t, (&DoctorCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "❌ Settings: FAIL")
}
