package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// TestConfigValidation tests configuration validation.
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectValid bool
	}{
		{
			name:        "default config",
			mutate:      func(*Config) {},
			expectValid: true,
		},
		{
			name:        "json logs on memdb",
			mutate:      func(c *Config) { c.LogFormat = LogFormatJSON; c.DBBackend = "memdb" },
			expectValid: true,
		},
		{
			name:        "missing home",
			mutate:      func(c *Config) { c.Home = "" },
			expectValid: false,
		},
		{
			name:        "unknown backend",
			mutate:      func(c *Config) { c.DBBackend = "rocksdb-custom" },
			expectValid: false,
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			expectValid: false,
		},
		{
			name:        "empty log level",
			mutate:      func(c *Config) { c.LogLevel = "" },
			expectValid: false,
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.LogFormat = "text" },
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectValid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

// TestLoadPrecedence tests that env overrides the file and the file overrides
// the defaults.
func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()

	saved := DefaultConfig()
	saved.Home = home
	saved.LogLevel = "debug"
	saved.LogFormat = LogFormatJSON
	require.NoError(t, saved.Save())
	require.FileExists(t, saved.File())

	v := viper.New()
	v.Set(KeyHome, home)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, home, cfg.Home)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
	require.Equal(t, saved.DBBackend, cfg.DBBackend)

	t.Setenv("VAULTD_LOG_LEVEL", "error")
	v = viper.New()
	v.Set(KeyHome, home)
	cfg, err = Load(v)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

// TestLoadWithoutFile tests that a missing file yields the defaults.
func TestLoadWithoutFile(t *testing.T) {
	v := viper.New()
	v.Set(KeyHome, t.TempDir())
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().LogLevel, cfg.LogLevel)
	require.Equal(t, LogFormatPlain, cfg.LogFormat)
}

// TestLoadRejectsInvalidFile tests that invalid file values are reported.
func TestLoadRejectsInvalidFile(t *testing.T) {
	home := t.TempDir()
	saved := DefaultConfig()
	saved.Home = home
	saved.LogFormat = "yaml"
	require.NoError(t, saved.Save())

	v := viper.New()
	v.Set(KeyHome, home)
	_, err := Load(v)
	require.Error(t, err)
}

func TestLoggerAndDB(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Home = t.TempDir()
	cfg.LogFormat = LogFormatJSON

	var buf bytes.Buffer
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	logger.Info("ledger opened", "height", 1)
	require.Contains(t, buf.String(), `"message":"ledger opened"`)

	buf.Reset()
	logger.Debug("hidden")
	require.Empty(t, buf.String())

	db, err := cfg.OpenDB()
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())
	require.DirExists(t, cfg.DataDir())
}
