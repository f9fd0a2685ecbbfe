package settings

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Out: out}, out
}

func TestSettingsShowCmd(t *testing.T) {
	ctx, out := setupTestDB(t)

	require.NoError(t, (&SettingsShowCmd{}).Run(ctx))
	assert.Contains(t, out.String(), constants.SettingWorkDuration)
	assert.Contains(t, out.String(), "1500")

	out.Reset()
	ctx.JSON = true
	require.NoError(t, (&SettingsShowCmd{}).Run(ctx))

	var got models.Settings
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestSettingsSetCmd(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s models.Settings)
	}{
		{
			name: "theme", key: constants.SettingTheme, value: "dark",
			check: func(t *testing.T, s models.Settings) { assert.Equal(t, "dark", s.Theme) },
		},
		{
			name: "bool", key: constants.SettingSoundEnabled, value: "false",
			check: func(t *testing.T, s models.Settings) { assert.False(t, s.SoundEnabled) },
		},
		{
			name: "int", key: constants.SettingSessionsUntilLongBreak, value: "6",
			check: func(t *testing.T, s models.Settings) { assert.Equal(t, 6, s.SessionsUntilLongBreak) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)

			require.NoError(t, (&SettingsSetCmd{Key: tt.key, Value: tt.value}).Run(ctx))

			got, err := ctx.Store.GetSettings()
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSettingsSetCmd_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "colour", "red"},
		{"unparsable int", constants.SettingWorkDuration, "soon"},
		{"invalid theme", constants.SettingTheme, "neon"},
		{"zero duration", constants.SettingShortBreakDuration, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)

			assert.Error(t, (&SettingsSetCmd{Key: tt.key, Value: tt.value}).Run(ctx))

			got, err := ctx.Store.GetSettings()
			require.NoError(t, err)
			assert.Equal(t, models.DefaultSettings(), got)
		})
	}
}
