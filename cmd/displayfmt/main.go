package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jchantrell/displayfmt/internal/config"
	"github.com/jchantrell/displayfmt/internal/datefmt"
	"github.com/jchantrell/displayfmt/internal/render"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	cfgFile   string
	formatter *render.Formatter
	layout    datefmt.Layout

	serverOffset int
	localOffset  string
	layoutName   string
	logLevel     string
	logFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "displayfmt",
	Short: "Render server timestamps and numbers for display",
	Long: `displayfmt renders raw server timestamps and numeric values the way the
client shows them: timestamps are shifted from the server clock (UTC+3 by
default) to local time and printed as DD/MM/YYYY HH:MM:SS or one of the
shorter layouts, numbers in scientific notation are expanded into plain
decimals, and large numbers are abbreviated with k, M and G suffixes.

Values can be given as arguments, read from a file with one value per line,
or taken from the columns of a SQLite query.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if cmd.Flags().Changed("server-offset") {
			cfg.ServerOffset = serverOffset
		}
		if cmd.Flags().Changed("local-offset") {
			cfg.LocalOffset = localOffset
		}
		if cmd.Flags().Changed("layout") {
			cfg.Layout = layoutName
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		setupLogger(cfg.LogLevel, cfg.LogFormat)

		offsets, err := cfg.Offsets()
		if err != nil {
			return err
		}
		layout, err = cfg.DateLayout()
		if err != nil {
			return err
		}
		formatter = render.NewFormatter(offsets)

		slog.Debug("Configuration",
			"server_offset", offsets.Server,
			"local_offset", offsets.Local,
			"layout", layout.String(),
			"database", cfg.Database,
			"workers", cfg.Workers,
			"log_level", cfg.LogLevel,
			"log_format", cfg.LogFormat)

		return nil
	},
}

func setupLogger(levelName, format string) {
	var level slog.Level
	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
		})
	}

	slog.SetDefault(slog.New(handler))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is displayfmt.yaml in home or pwd)")
	rootCmd.PersistentFlags().IntVar(&serverOffset, "server-offset", datefmt.DefaultServerOffset, "server clock offset east of UTC in minutes")
	rootCmd.PersistentFlags().StringVar(&localOffset, "local-offset", config.LocalOffsetAuto, "local offset east of UTC in minutes, or 'auto'")
	rootCmd.PersistentFlags().StringVarP(&layoutName, "layout", "l", "", "date layout (full, short, fulltime)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
}
