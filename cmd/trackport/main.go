// Package main provides the trackport CLI, which converts time-tracking
// export files between Jiffy JSON, Toggl Track CSV, and Clockify CSV, and
// optionally archives them into MySQL.
//
// Usage:
//
//	trackport convert export.json -m toggl --email you@example.com
//	trackport convert export.json -m clockify --email you@example.com -f 2025-08-01 -t 2025-08-31
//	trackport convert export.json              # print-only summary
//	trackport convert report.csv -m clockify -p projects.json
//	trackport archive export.json --dsn "$MYSQL_DSN"
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"trackport/internal/cli"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	configFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "trackport",
		Short:         "Convert time-tracking exports between Jiffy, Toggl Track, and Clockify",
		Long:          `Trackport converts time-tracking export files (Jiffy JSON, Toggl Track CSV) into Toggl or Clockify import CSVs, normalizing timestamps into a chosen output timezone and filtering by status and date range. The archive command mirrors the same pipeline into MySQL.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "trackport.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		convertCmd(),
		archiveCmd(),
	)

	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
		os.Exit(1)
	}
}

// newLogger builds the process logger honoring -v and installs it as the
// slog default.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
