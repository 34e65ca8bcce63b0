// Package main implements the reflectd CLI for analyzing Claude Code
// reflection history, permission settings, and session state.
package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/config"
	"github.com/fyrsmithlabs/reflectd/internal/logging"
	"github.com/fyrsmithlabs/reflectd/internal/reflection"
)

var (
	// configPath overrides the default config file location
	configPath string
	// jsonOutput switches from the bounded summary to full JSON
	jsonOutput bool
	// version information
	version = "dev"

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logging.Sync(logger)
	}
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, reflection.ErrDirNotFound):
		os.Exit(2)
	case errors.Is(err, reflection.ErrNoReflections):
		os.Exit(3)
	}
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "reflectd",
	Short: "Analyze Claude Code reflection history and session state",
	Long: `reflectd mines the reflection documents a Claude Code workflow writes
after each session. It surfaces recurring themes across sessions, summarizes
the permission rules in effect, and snapshots current git and issue state.

Each command prints a bounded human-readable summary by default; pass --json
for the full structured report on stdout.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/reflectd/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit full JSON instead of the bounded summary")
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(permissionsCmd)
	rootCmd.AddCommand(sessionCmd)
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadWithFile(configPath)
	if err != nil {
		return err
	}
	logger, err = logging.New(cfg.Logging)
	return err
}

// writeJSON writes v as indented JSON, matching the report encoder.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
