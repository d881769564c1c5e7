package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yoclaire/petesky-image-bot/internal/config"
)

var version = "dev"

var (
	jsonOutput bool
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "petesky [imagequeue-dir]",
	Short: "Analyze screenshot distribution across episodes",
	Long: `petesky - screenshot distribution analyzer

Classifies queued screenshots into episode buckets by parsing
season/episode/title metadata out of their filenames, then reports
which episodes are underrepresented in the collection.

With no argument, analyzes ./imagequeue.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runAnalyze,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Failure details go to stdout alongside any report output.
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("petesky {{.Version}}\n")
}

// setupLogging keeps stdout clean for the report; diagnostics go to stderr.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig resolves the effective configuration: an explicit --config
// path, then the discovery search order, then built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	path, ok, err := config.Discover()
	if err != nil {
		return nil, err
	}
	if !ok {
		return config.Default(), nil
	}
	return config.Load(path)
}
