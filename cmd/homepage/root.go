package main

import (
	"fmt"
	"os"

	"github.com/npohome/internal/config"
	"github.com/npohome/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	databasePath string
	logLevel     string
	logFormat    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Block-based home page editor and render API",
	Long: `homepage stores a home page as ordered streams of typed content blocks
(hero, about, services, testimonials, call-to-action, gallery, newsletter),
validates every edit against the block schemas and serves render-ready views.

Quick start:
  homepage seed fixtures/home.yaml   # Load example content
  homepage serve                     # Start the HTTP API
  homepage schema                    # Print the block library`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "sqlite database path (overrides DATABASE_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or console (overrides LOG_FORMAT)")
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig() config.AppConfig {
	cfg := config.Load()
	if databasePath != "" {
		cfg.DatabasePath = databasePath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	return cfg
}

func newLogger(cfg config.AppConfig) zerolog.Logger {
	return logging.New(cfg.LogLevel, cfg.LogFormat)
}
