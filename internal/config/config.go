package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"StockChart/internal/model"
)

// Providers understood by DataSource.Provider.
const (
	ProviderTwelveData = "twelvedata"
	ProviderYahoo      = "yahoo"
	ProviderMock       = "mock"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider    string `yaml:"provider"`
		BaseURL     string `yaml:"base_url"`
		APIKey      string `yaml:"api_key"`
		Symbol      string `yaml:"symbol"`
		DisplayName string `yaml:"display_name"`
		TimeoutSec  int    `yaml:"timeout_sec"`
	} `yaml:"data_source"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Chart struct {
		DefaultInterval string `yaml:"default_interval"`
		Width           int    `yaml:"width"`
		Height          int    `yaml:"height"`
		Color           *bool  `yaml:"color"`
	} `yaml:"chart"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("TWELVEDATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TWELVEDATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("STOCK_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("STOCK_NAME"); v != "" {
		cfg.DataSource.DisplayName = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("DEFAULT_INTERVAL"); v != "" {
		cfg.Chart.DefaultInterval = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			cfg.DataSource.TimeoutSec = x
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		off := false
		cfg.Chart.Color = &off
	}

	// Defaults
	cfg.DataSource.Provider = strings.ToLower(strings.TrimSpace(cfg.DataSource.Provider))
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = ProviderTwelveData
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "NVDA"
	}
	if cfg.DataSource.DisplayName == "" {
		if cfg.DataSource.Symbol == "NVDA" {
			cfg.DataSource.DisplayName = "NVIDIA"
		} else {
			cfg.DataSource.DisplayName = cfg.DataSource.Symbol
		}
	}
	if cfg.DataSource.TimeoutSec == 0 {
		cfg.DataSource.TimeoutSec = 15
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "@every 60s"
	}
	if cfg.Chart.DefaultInterval == "" {
		cfg.Chart.DefaultInterval = string(model.Interval1D)
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 72
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 16
	}
	if cfg.Chart.Color == nil {
		on := true
		cfg.Chart.Color = &on
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case ProviderTwelveData:
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for %s (or set TWELVEDATA_API_KEY)", ProviderTwelveData)
		}
	case ProviderYahoo, ProviderMock:
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if _, err := cron.ParseStandard(c.Schedule.RefreshCron); err != nil {
		return fmt.Errorf("schedule.refresh_cron: %w", err)
	}
	if _, err := c.Interval(); err != nil {
		return fmt.Errorf("chart.default_interval: %w", err)
	}
	if c.Chart.Width < 16 || c.Chart.Height < 4 {
		return fmt.Errorf("chart size %dx%d is too small (min 16x4)", c.Chart.Width, c.Chart.Height)
	}
	if c.DataSource.TimeoutSec < 0 {
		return fmt.Errorf("data_source.timeout_sec must not be negative")
	}
	return nil
}

// Interval returns the parsed default interval.
func (c *Config) Interval() (model.Interval, error) {
	return model.ParseInterval(c.Chart.DefaultInterval)
}

// ColorEnabled reports whether ANSI colours should be used.
func (c *Config) ColorEnabled() bool {
	return c.Chart.Color == nil || *c.Chart.Color
}
