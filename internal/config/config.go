package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Plan          PlanConfig   `toml:"plan"`
	Log           LogConfig    `toml:"log"`
	Notifications NotifyConfig `toml:"notifications"`
}

type PlanConfig struct {
	Catalog      string `toml:"catalog"`
	Availability string `toml:"availability"`
	Schedule     string `toml:"schedule"`
	CalendarHTML string `toml:"calendar_html"`
	Activities   int    `toml:"activities"`
	Months       int    `toml:"months"`
	Seed         int64  `toml:"seed"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

func DefaultConfig() Config {
	return Config{
		Plan: PlanConfig{
			Catalog:      "action_plan.json",
			Availability: "availability_data.json",
			Schedule:     "personalized_schedule.json",
			CalendarHTML: "personalized_schedule.html",
			Activities:   100,
			Months:       3,
			Seed:         42,
		},
		Log: LogConfig{
			Level: "info",
		},
		Notifications: NotifyConfig{
			Enabled: false,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "resalloc"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RESALLOC_CATALOG"); v != "" {
		cfg.Plan.Catalog = v
	}
	if v := os.Getenv("RESALLOC_AVAILABILITY"); v != "" {
		cfg.Plan.Availability = v
	}
	if v := os.Getenv("RESALLOC_SCHEDULE"); v != "" {
		cfg.Plan.Schedule = v
	}
	if v := os.Getenv("RESALLOC_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Plan.Seed = seed
		}
	}
	if v := os.Getenv("RESALLOC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
