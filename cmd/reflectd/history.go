package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/reflectd/internal/reflection"
)

// historyCmd analyzes the reflection document directory
var historyCmd = &cobra.Command{
	Use:   "history [dir]",
	Short: "Analyze reflection documents for recurring themes",
	Long: `Analyze the markdown reflection documents in a directory and report
per-session structure plus keyword themes that recur across sessions.

Examples:
  # Analyze the configured reflections directory
  reflectd history

  # Analyze a specific directory
  reflectd history ~/notes/reflections

  # Full structured report
  reflectd history --json | jq .recurring_themes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

// runHistory handles the history command
func runHistory(cmd *cobra.Command, args []string) error {
	dir := cfg.History.Dir
	if len(args) == 1 {
		dir = args[0]
	}

	reflections, err := reflection.Load(dir)
	if err != nil {
		return err
	}
	logger.Debug("loaded reflections", zap.String("dir", dir), zap.Int("count", len(reflections)))

	report := reflection.NewReport(dir, reflections)
	if jsonOutput {
		return reflection.WriteJSON(cmd.OutOrStdout(), report)
	}
	reflection.WriteSummary(cmd.OutOrStdout(), report)
	return nil
}
