package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/liftlog/internal/timer"
)

const appName = "liftlog"

type Config struct {
	DB      DBConfig      `toml:"database"`
	Timer   TimerConfig   `toml:"timer"`
	Log     LogConfig     `toml:"log"`
	Session SessionConfig `toml:"session"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // Local file path or libsql:// URL.
	AuthToken        string `toml:"auth_token"`
}

type TimerConfig struct {
	DefaultRest string `toml:"default_rest"` // "mmss", e.g. "0130".
	TickMS      int    `toml:"tick_ms"`
}

// TickInterval is the countdown refresh cadence.
func (t TimerConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"` // Empty means stderr.
}

type SessionConfig struct {
	Path string `toml:"path"`
}

// GetConfigDir returns ~/.config/liftlog.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no config file exists.
func Default(configDir string) *Config {
	return &Config{
		DB: DBConfig{
			ConnectionString: filepath.Join(configDir, appName+".db"),
		},
		Timer: TimerConfig{
			DefaultRest: timer.DefaultText,
			TickMS:      int(timer.DefaultTickInterval / time.Millisecond),
		},
		Log: LogConfig{
			Level: "warn",
		},
		Session: SessionConfig{
			Path: filepath.Join(configDir, "session.toml"),
		},
	}
}

// LoadConfig reads ~/.config/liftlog/config.toml and a .env file in the
// working directory, then applies environment overrides.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path, ".env")
}

// LoadFrom is LoadConfig with explicit file locations. Missing files are
// not an error; the defaults are relative to the config file's directory.
//
// Environment overrides, highest first:
//
//	LIFTLOG_DATABASE_URL, TURSO_DATABASE_URL, DEV_MODE=true (./local.db),
//	TURSO_AUTH_TOKEN, LIFTLOG_LOG_LEVEL, LIFTLOG_SESSION_PATH
func LoadFrom(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Default(filepath.Dir(path))
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "./local.db"
	}
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("LIFTLOG_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := os.Getenv("LIFTLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LIFTLOG_SESSION_PATH"); v != "" {
		cfg.Session.Path = v
	}
	if v := os.Getenv("LIFTLOG_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timer.TickMS = ms
		}
	}
}

func (c *Config) validate() error {
	if c.DB.ConnectionString == "" {
		return fmt.Errorf("database.connection_string is required")
	}
	if c.Session.Path == "" {
		return fmt.Errorf("session.path is required")
	}
	if c.Timer.TickMS <= 0 {
		return fmt.Errorf("timer.tick_ms must be positive, got %d", c.Timer.TickMS)
	}
	if c.Timer.DefaultRest == "" {
		c.Timer.DefaultRest = timer.DefaultText
	}
	c.Timer.DefaultRest = timer.NormalizeText(c.Timer.DefaultRest)
	return nil
}
