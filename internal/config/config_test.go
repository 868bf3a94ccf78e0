package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"DEV_MODE", "TURSO_DATABASE_URL", "LIFTLOG_DATABASE_URL", "TURSO_AUTH_TOKEN",
	"LIFTLOG_LOG_LEVEL", "LIFTLOG_SESSION_PATH", "LIFTLOG_TICK_MS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFrom(filepath.Join(dir, "config.toml"), "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "liftlog.db"), cfg.DB.ConnectionString)
	require.Equal(t, filepath.Join(dir, "session.toml"), cfg.Session.Path)
	require.Equal(t, "0200", cfg.Timer.DefaultRest)
	require.Equal(t, 16*time.Millisecond, cfg.Timer.TickInterval())
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFrom_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[database]
connection_string = "libsql://gym.turso.io"
auth_token = "secret"

[timer]
default_rest = "1:30"
tick_ms = 100

[log]
level = "debug"
path = "/tmp/liftlog.log"
`)

	cfg, err := LoadFrom(path, "")
	require.NoError(t, err)
	require.Equal(t, "libsql://gym.turso.io", cfg.DB.ConnectionString)
	require.Equal(t, "secret", cfg.DB.AuthToken)
	require.Equal(t, "0130", cfg.Timer.DefaultRest)
	require.Equal(t, 100*time.Millisecond, cfg.Timer.TickInterval())
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/liftlog.log", cfg.Log.Path)
	require.Equal(t, filepath.Join(filepath.Dir(path), "session.toml"), cfg.Session.Path)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[database]\nconnection_string = \"/data/file.db\"\n")

	t.Setenv("DEV_MODE", "true")
	cfg, err := LoadFrom(path, "")
	require.NoError(t, err)
	require.Equal(t, "./local.db", cfg.DB.ConnectionString)

	t.Setenv("TURSO_DATABASE_URL", "libsql://turso")
	t.Setenv("TURSO_AUTH_TOKEN", "tok")
	cfg, err = LoadFrom(path, "")
	require.NoError(t, err)
	require.Equal(t, "libsql://turso", cfg.DB.ConnectionString)
	require.Equal(t, "tok", cfg.DB.AuthToken)

	t.Setenv("LIFTLOG_DATABASE_URL", "/override.db")
	t.Setenv("LIFTLOG_LOG_LEVEL", "error")
	t.Setenv("LIFTLOG_TICK_MS", "50")
	cfg, err = LoadFrom(path, "")
	require.NoError(t, err)
	require.Equal(t, "/override.db", cfg.DB.ConnectionString)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, 50, cfg.Timer.TickMS)
}

func TestLoadFrom_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("TURSO_AUTH_TOKEN")
	t.Cleanup(func() { os.Unsetenv("TURSO_AUTH_TOKEN") })

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TURSO_AUTH_TOKEN=from-dotenv\n"), 0644))

	cfg, err := LoadFrom(filepath.Join(dir, "config.toml"), envFile)
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.DB.AuthToken)
}

func TestLoadFrom_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := LoadFrom(writeConfig(t, "[database\n"), "")
	require.ErrorContains(t, err, "parsing config file")

	_, err = LoadFrom(writeConfig(t, "[timer]\ntick_ms = -1\n"), "")
	require.ErrorContains(t, err, "tick_ms")
}
