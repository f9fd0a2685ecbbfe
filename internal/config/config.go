// Package config resolves where habitflow keeps its data and which backend
// it talks to. Precedence: command-line flags, then HABITFLOW_* environment
// variables, then config.yaml, then built-in defaults.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/julianstephens/habitflow/internal/constants"
)

// Config keys, also the names of the HABITFLOW_* variables
const (
	KeyDataDir = "data_dir"
	KeyBackend = "backend"
	KeyDebug   = "debug"
)

// Config is the resolved configuration
type Config struct {
	DataDir    string
	Backend    string
	Debug      bool
	ConfigFile string // empty when no file was read
}

// Overrides carries command-line flags. Zero values mean "not given".
type Overrides struct {
	ConfigFile string
	DataDir    string
	Backend    string
	Debug      bool
}

// DefaultConfigDir is <platform config dir>/habitflow
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}

// DefaultDataDir is <platform data dir>/habitflow
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, constants.AppName)
}

// Load reads the config file if present and applies env and flag overrides.
// A missing file in the default location is not an error; a missing file
// named with --config is.
func Load(o Overrides) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyDataDir, DefaultDataDir())
	v.SetDefault(KeyBackend, constants.BackendSQLite)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	if o.ConfigFile != "" {
		v.SetConfigFile(o.ConfigFile)
	} else {
		v.SetConfigName(constants.ConfigFileName)
		v.SetConfigType(constants.ConfigFileType)
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if o.DataDir != "" {
		v.Set(KeyDataDir, o.DataDir)
	}
	if o.Backend != "" {
		v.Set(KeyBackend, o.Backend)
	}
	if o.Debug {
		v.Set(KeyDebug, true)
	}

	cfg := Config{
		DataDir:    v.GetString(KeyDataDir),
		Backend:    strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		Debug:      v.GetBool(KeyDebug),
		ConfigFile: v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case constants.BackendSQLite, constants.BackendPostgres:
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", c.Backend, constants.BackendSQLite, constants.BackendPostgres)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	return nil
}

// DatabasePath is the SQLite file inside the data directory
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, constants.DatabaseFileName)
}
