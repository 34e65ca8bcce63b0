package main

import (
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/reflectd/internal/permissions"
)

// permissionsCmd summarizes Claude Code permission settings
var permissionsCmd = &cobra.Command{
	Use:   "permissions [settings-file]",
	Short: "Summarize Claude Code permission settings",
	Long: `Summarize the tool permission rules from the project and home
Claude Code settings files. Missing or malformed files report as empty
rather than failing.

Examples:
  # Use the configured settings paths
  reflectd permissions

  # Inspect a specific project settings file
  reflectd permissions .claude/settings.local.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPermissions,
}

// runPermissions handles the permissions command
func runPermissions(cmd *cobra.Command, args []string) error {
	projectPath := cfg.Permissions.ProjectSettings
	if len(args) == 1 {
		projectPath = args[0]
	}

	report := permissions.GatherAll(projectPath, cfg.Permissions.HomeSettings)
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	permissions.WriteSummary(cmd.OutOrStdout(), report)
	return nil
}
