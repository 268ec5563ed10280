package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/model"
)

var envKeys = []string{
	"DATA_PROVIDER", "TWELVEDATA_API_KEY", "TWELVEDATA_BASE_URL", "STOCK_SYMBOL", "STOCK_NAME",
	"REFRESH_CRON", "DEFAULT_INTERVAL", "SQLITE_PATH", "HTTPS_PROXY", "REQUEST_TIMEOUT_SEC", "NO_COLOR",
}

// clearEnv blanks every override so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ProviderTwelveData, cfg.DataSource.Provider)
	assert.Equal(t, "NVDA", cfg.DataSource.Symbol)
	assert.Equal(t, "NVIDIA", cfg.DataSource.DisplayName)
	assert.Equal(t, "@every 60s", cfg.Schedule.RefreshCron)
	assert.Equal(t, 72, cfg.Chart.Width)
	assert.Equal(t, 16, cfg.Chart.Height)
	assert.True(t, cfg.ColorEnabled())
	assert.Empty(t, cfg.DataSource.APIKey)

	iv, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, model.Interval1D, iv)

	// no credential ships with the defaults
	assert.ErrorContains(t, cfg.Validate(), "api_key")
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
data_source:
  provider: TwelveData
  api_key: from-file
  symbol: AMD
schedule:
  refresh_cron: "@every 30s"
chart:
  default_interval: 1y
  width: 60
  color: false
database:
  sqlite_path: data/polls.db
`)
	t.Setenv("TWELVEDATA_API_KEY", "from-env")
	t.Setenv("DEFAULT_INTERVAL", "5y")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ProviderTwelveData, cfg.DataSource.Provider)
	assert.Equal(t, "from-env", cfg.DataSource.APIKey)
	assert.Equal(t, "AMD", cfg.DataSource.Symbol)
	assert.Equal(t, "AMD", cfg.DataSource.DisplayName)
	assert.Equal(t, "@every 30s", cfg.Schedule.RefreshCron)
	assert.Equal(t, 60, cfg.Chart.Width)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "data/polls.db", cfg.Database.SQLitePath)

	iv, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, model.Interval5Y, iv)
}

func TestLoad_NoColorEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "data_source: [unterminated"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"yahoo needs no key", func(c *Config) { c.DataSource.Provider = ProviderYahoo }, ""},
		{"mock needs no key", func(c *Config) { c.DataSource.Provider = ProviderMock }, ""},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }, "not supported"},
		{"bad cron", func(c *Config) {
			c.DataSource.APIKey = "k"
			c.Schedule.RefreshCron = "sometimes"
		}, "refresh_cron"},
		{"bad interval", func(c *Config) {
			c.DataSource.APIKey = "k"
			c.Chart.DefaultInterval = "2D"
		}, "default_interval"},
		{"too small", func(c *Config) {
			c.DataSource.APIKey = "k"
			c.Chart.Width = 8
		}, "too small"},
		{"ok", func(c *Config) { c.DataSource.APIKey = "k" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
