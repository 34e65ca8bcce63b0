package permissions

import (
	"fmt"
	"io"
	"strings"
)

// Summary display bounds.
const (
	summaryPermissionsPerScope = 10
	summaryBashPatterns        = 15
	summaryMCPPermissions      = 10
)

// WriteSummary writes the bounded human-readable permissions summary.
func WriteSummary(w io.Writer, report Report) {
	var sb strings.Builder
	bar := strings.Repeat("=", 60)

	sb.WriteString(bar + "\n")
	sb.WriteString("CLAUDE CODE PERMISSIONS SUMMARY\n")
	sb.WriteString(bar + "\n")

	writeScope(&sb, "Project Settings", report.ProjectSettings)
	writeScope(&sb, "Home Settings", report.HomeSettings)

	sb.WriteString("\nBash Command Patterns:\n")
	bash := mergeSorted(report.ProjectSettings.BashPatterns, report.HomeSettings.BashPatterns)
	for _, pattern := range headOf(bash, summaryBashPatterns) {
		sb.WriteString(fmt.Sprintf("  - %s\n", pattern))
	}

	sb.WriteString("\nMCP Tool Permissions:\n")
	mcp := mergeSorted(report.ProjectSettings.MCPPermissions, report.HomeSettings.MCPPermissions)
	for _, perm := range headOf(mcp, summaryMCPPermissions) {
		sb.WriteString(fmt.Sprintf("  - %s\n", perm))
	}

	sb.WriteString("\nRun with --json for full structured output\n")
	fmt.Fprint(w, sb.String())
}

func writeScope(sb *strings.Builder, label string, file FileReport) {
	sb.WriteString(fmt.Sprintf("\n%s: %s\n", label, file.SettingsPath))
	sb.WriteString(fmt.Sprintf("  Exists: %t\n", file.Exists))
	if !file.Exists {
		return
	}
	sb.WriteString(fmt.Sprintf("  Permissions: %d\n", len(file.CurrentPermissions)))
	for _, perm := range headOf(file.CurrentPermissions, summaryPermissionsPerScope) {
		sb.WriteString(fmt.Sprintf("    - %s\n", perm))
	}
	if extra := len(file.CurrentPermissions) - summaryPermissionsPerScope; extra > 0 {
		sb.WriteString(fmt.Sprintf("    ... and %d more\n", extra))
	}
}

func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
