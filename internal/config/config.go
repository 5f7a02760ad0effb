package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TODO_PORT.
const EnvPrefix = "TODO"

type Config struct {
	Port     int
	Host     string
	DBPath   string
	LogLevel string
	// Sessions
	SessionTTLHours int
	CookieName      string
	CookieSecure    bool
}

// Keys shared by the viper instance, config files and CLI flags.
const (
	KeyPort            = "port"
	KeyHost            = "host"
	KeyDBPath          = "db_path"
	KeyLogLevel        = "log_level"
	KeySessionTTLHours = "session_ttl_hours"
	KeyCookieName      = "cookie_name"
	KeyCookieSecure    = "cookie_secure"
)

// New returns a viper instance with defaults and TODO_* environment binding.
// A non-empty configFile is read as YAML and must exist.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyPort, 8742)
	v.SetDefault(KeyHost, "")
	v.SetDefault(KeyDBPath, "./data/todo.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySessionTTLHours, 720)
	v.SetDefault(KeyCookieName, "todo_session")
	v.SetDefault(KeyCookieSecure, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Load reads the effective configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetInt(KeyPort),
		Host:            v.GetString(KeyHost),
		DBPath:          v.GetString(KeyDBPath),
		LogLevel:        strings.ToLower(v.GetString(KeyLogLevel)),
		SessionTTLHours: v.GetInt(KeySessionTTLHours),
		CookieName:      v.GetString(KeyCookieName),
		CookieSecure:    v.GetBool(KeyCookieSecure),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("session_ttl_hours must be positive, got %d", c.SessionTTLHours)
	}
	if c.CookieName == "" {
		return fmt.Errorf("cookie_name must not be empty")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionTTL is how long an idle session survives.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// ParseLevel maps a log level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", level)
}
