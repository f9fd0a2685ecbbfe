package constants

const (
	AppName            = "habitflow"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.1.0"

	// DatabaseFileName is the fixed name of the store inside the data directory
	DatabaseFileName = "habitflow.db"

	// ConfigFileName is the viper config name (without extension)
	ConfigFileName = "config"
	ConfigFileType = "yaml"

	// EnvPrefix prefixes every environment variable read by the config layer
	EnvPrefix = "HABITFLOW"

	// ConnectionEnvVar holds the PostgreSQL connection string when the
	// postgres backend is selected
	ConnectionEnvVar = "HABITFLOW_DB_CONNECTION"

	// TimestampFormat is fixed-width so lexical order matches chronological order.
	// Values are always written in UTC.
	TimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Defaults for new habits
	DefaultHabitIcon  = "💪"
	DefaultHabitColor = "#6366f1"

	// Backend names
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"
	BackupFileSuffix = ".db"

	// Logging
	LogDirName  = "logs"
	LogFileName = "habitflow.log"
)
