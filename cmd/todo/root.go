package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iammorganparry/clive/apps/todo/internal/config"
)

var version = "dev"

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// configKeys are the flags that feed viper. Other flags (--config, --session,
// --help) are command inputs only.
var configKeys = map[string]bool{
	config.KeyPort:         true,
	config.KeyHost:         true,
	config.KeyDBPath:       true,
	config.KeyLogLevel:     true,
	config.KeyCookieSecure: true,
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Session-backed to-do list manager",
		Long: `todo serves a small web application where each browser session keeps its own
named lists of todos.

Configuration is read, highest priority first, from command-line flags,
TODO_* environment variables (TODO_PORT, TODO_DB_PATH, ...), and an optional
YAML file given with --config or TODO_CONFIG_FILE.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (or TODO_CONFIG_FILE)")
	root.PersistentFlags().String("db-path", "", "SQLite database path")
	root.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd(a), newExportCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfgFile := a.cfgFile
	if cfgFile == "" {
		cfgFile = os.Getenv(config.EnvPrefix + "_CONFIG_FILE")
	}

	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cfg.LogLevel)
	return nil
}

// bindFlags binds every config flag in fs that was set on the command line.
// Unset flags leave the viper default and environment in charge.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err != nil || !configKeys[key] {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

func newLogger(level string) *slog.Logger {
	lvl, _ := config.ParseLevel(level)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
