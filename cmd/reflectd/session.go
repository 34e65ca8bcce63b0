package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/reflectd/internal/session"
)

// sessionCommits overrides the configured commit count when positive
var sessionCommits int

// sessionCmd snapshots current development session state
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Snapshot git, issue tracker, and GitHub state for this session",
	Long: `Collect a snapshot of the current working directory's session state:
recent commits, worktree status, bd issue tracker activity, and GitHub
issues when a token is configured. Sources that are unavailable degrade
to empty sections instead of failing.

Examples:
  # Summarize the current session
  reflectd session

  # Include more history in the snapshot
  reflectd session --commits 50 --json`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().IntVar(&sessionCommits, "commits", 0, "recent commits to include (default from config)")
}

// runSession handles the session command
func runSession(cmd *cobra.Command, args []string) error {
	commits := cfg.Session.Commits
	if sessionCommits > 0 {
		commits = sessionCommits
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Session.Timeout.Duration())
	defer cancel()

	g := session.NewGatherer(dir, logger)
	data := g.Gather(ctx, session.Options{
		Commits:     commits,
		GitHubToken: cfg.Session.GitHubToken,
	})

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), data)
	}
	session.WriteSummary(cmd.OutOrStdout(), data)
	return nil
}
