package config

const (
	defaultConfigPath   = "~/.config/lifelist/config.toml"
	projectConfigName   = "lifelist.toml"
	defaultDataDir      = "~/.local/share/lifelist"
	defaultLogDir       = "~/.local/share/lifelist/logs"
	defaultStoreBackend = BackendSQLite
	defaultMaxOpenConns = 4
	defaultMaxFileBytes = 64 << 20
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Environment variables consulted during normalization.
const (
	EnvDatabaseURL = "LIFELIST_DATABASE_URL"
	EnvLogLevel    = "LIFELIST_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			Backend:      defaultStoreBackend,
			MaxOpenConns: defaultMaxOpenConns,
		},
		Import: Import{
			MaxFileBytes: defaultMaxFileBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
