package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jchantrell/hogtool/internal/config"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	cfgFile string

	inputs     []string
	listFile   string
	output     string
	dbPath     string
	workers    int
	logLevel   string
	logFormat  string
	noProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "hogtool",
	Short: "Descent 3 HOG archive and OGF texture tool",
	Long: `hogtool reads, extracts and rebuilds HOG archives and exports the
mip levels of OGF textures as PNG files.

Inputs that are not HOG archives are taken as loose files, so several archives
and files can be combined into one new archive. Files ending in .hog must be
valid archives.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if cmd.Flags().Changed("database") {
			cfg.Database = dbPath
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid flags: %w", err)
		}

		slog.SetDefault(newLogger(cfg.LogLevel, cfg.LogFormat))

		slog.Debug("Configuration",
			"database", cfg.Database,
			"workers", cfg.Workers,
			"log_level", cfg.LogLevel,
			"log_format", cfg.LogFormat)

		return nil
	},
}

func newLogger(levelName, format string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
		})
	}

	return slog.New(handler)
}

// progressEnabled mirrors the rule that bars only make sense for a human at a terminal
func progressEnabled() bool {
	return !(noProgress || cfg.LogFormat == "json" || cfg.LogLevel == "debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is hogtool.yaml in home or pwd)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "database", "d", "", "catalog database path")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "number of files decoded in parallel")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress bar")
}
