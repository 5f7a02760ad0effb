package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 8742, cfg.Port)
	assert.Equal(t, "./data/todo.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "todo_session", cfg.CookieName)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL())
	assert.Equal(t, ":8742", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TODO_PORT", "9000")
	t.Setenv("TODO_DB_PATH", "/tmp/todo-test.db")
	t.Setenv("TODO_LOG_LEVEL", "DEBUG")
	t.Setenv("TODO_COOKIE_SECURE", "true")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/tmp/todo-test.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yml")
	content := "port: 8100\nhost: 127.0.0.1\nsession_ttl_hours: 2\ncookie_name: lists\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8100", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL())
	assert.Equal(t, "lists", cfg.CookieName)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "port too low", key: KeyPort, val: 0},
		{name: "port too high", key: KeyPort, val: 70000},
		{name: "empty db path", key: KeyDBPath, val: ""},
		{name: "unknown log level", key: KeyLogLevel, val: "verbose"},
		{name: "zero ttl", key: KeySessionTTLHours, val: 0},
		{name: "empty cookie name", key: KeyCookieName, val: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New("")
			require.NoError(t, err)
			v.Set(tt.key, tt.val)
			_, err = Load(v)
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("trace")
	assert.Error(t, err)
}
