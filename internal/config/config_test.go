package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitflow/internal/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// clearEnv blanks the variables; viper treats an empty value as unset
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HABITFLOW_DATA_DIR", "")
	t.Setenv("HABITFLOW_BACKEND", "")
	t.Setenv("HABITFLOW_DEBUG", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := Load(Overrides{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, DefaultDataDir(), cfg.DataDir)
	assert.Equal(t, constants.BackendSQLite, cfg.Backend)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join(DefaultDataDir(), "habitflow.db"), cfg.DatabasePath())
	assert.Equal(t, "habitflow", filepath.Base(DefaultDataDir()))
}

func TestLoadPrecedence(t *testing.T) {
	fileDir := filepath.Join(t.TempDir(), "from-file")
	envDir := filepath.Join(t.TempDir(), "from-env")
	flagDir := filepath.Join(t.TempDir(), "from-flag")
	path := writeConfig(t, "data_dir: "+fileDir+"\nbackend: postgres\ndebug: true\n")

	tests := []struct {
		name    string
		env     string
		flag    string
		wantDir string
	}{
		{"file only", "", "", fileDir},
		{"env beats file", envDir, "", envDir},
		{"flag beats env", envDir, flagDir, flagDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.env != "" {
				t.Setenv("HABITFLOW_DATA_DIR", tt.env)
			}

			cfg, err := Load(Overrides{ConfigFile: path, DataDir: tt.flag})
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, cfg.DataDir)
			assert.Equal(t, constants.BackendPostgres, cfg.Backend)
			assert.True(t, cfg.Debug)
			assert.Equal(t, path, cfg.ConfigFile)
		})
	}
}

func TestLoadBackendFlag(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "backend: postgres\n")

	cfg, err := Load(Overrides{ConfigFile: path, Backend: "SQLite"})
	require.NoError(t, err)
	assert.Equal(t, constants.BackendSQLite, cfg.Backend)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(Overrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err, "an explicit config file must exist")

	path := writeConfig(t, "backend: mysql\n")
	_, err = Load(Overrides{ConfigFile: path})
	assert.ErrorContains(t, err, "unknown backend")
}
