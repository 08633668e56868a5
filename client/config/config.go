// Package config loads the vaultd node configuration from file, environment
// and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"cosmossdk.io/log"
)

const (
	EnvPrefix      = "VAULTD"
	ConfigName     = "config"
	ConfigType     = "toml"
	DataDirName    = "data"
	LedgerDBName   = "ledger"
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"

	KeyHome      = "home"
	KeyDBBackend = "db_backend"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// DefaultNodeHome is the default home directory of the ledger.
var DefaultNodeHome = os.ExpandEnv("$HOME/.vaultd")

// Config defines the configuration of a local ledger node.
type Config struct {
	Home string `mapstructure:"home" json:"home"`

	// Storage backend for the ledger: goleveldb, pebbledb or memdb
	DBBackend string `mapstructure:"db_backend" json:"db_backend"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level" json:"log_level"`   // trace, debug, info, warn, error
	LogFormat string `mapstructure:"log_format" json:"log_format"` // plain, json
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Home:      DefaultNodeHome,
		DBBackend: string(dbm.GoLevelDBBackend),
		LogLevel:  zerolog.InfoLevel.String(),
		LogFormat: LogFormatPlain,
	}
}

// Load resolves the configuration from v. Values bound to v (flags) win over
// VAULTD_* environment variables, which win over $HOME/config.toml, which
// wins over the defaults.
func Load(v *viper.Viper) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault(KeyHome, def.Home)
	v.SetDefault(KeyDBBackend, def.DBBackend)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	v.AddConfigPath(v.GetString(KeyHome))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory is required")
	}

	validBackends := map[string]bool{
		string(dbm.GoLevelDBBackend): true,
		string(dbm.PebbleDBBackend):  true,
		string(dbm.MemDBBackend):     true,
	}
	if !validBackends[c.DBBackend] {
		return fmt.Errorf("invalid db backend: %s", c.DBBackend)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.LogFormat != LogFormatPlain && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}
	return nil
}

// File returns the path of the configuration file.
func (c *Config) File() string {
	return filepath.Join(c.Home, ConfigName+"."+ConfigType)
}

// DataDir returns the directory holding the ledger database.
func (c *Config) DataDir() string {
	return filepath.Join(c.Home, DataDirName)
}

// Save writes the configuration file, creating the home directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Home, 0o750); err != nil {
		return fmt.Errorf("failed to create home: %w", err)
	}

	v := viper.New()
	v.Set(KeyDBBackend, c.DBBackend)
	v.Set(KeyLogLevel, c.LogLevel)
	v.Set(KeyLogFormat, c.LogFormat)
	return v.WriteConfigAs(c.File())
}

// Logger builds the node logger writing to w.
func (c *Config) Logger(w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := []log.Option{log.LevelOption(level)}
	if c.LogFormat == LogFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}

// OpenDB opens the ledger database.
func (c *Config) OpenDB() (dbm.DB, error) {
	if c.DBBackend == string(dbm.MemDBBackend) {
		return dbm.NewMemDB(), nil
	}
	return dbm.NewDB(LedgerDBName, dbm.BackendType(c.DBBackend), c.DataDir())
}
