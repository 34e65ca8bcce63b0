// Package permissions reads Claude Code settings files and parses the
// permission allow/deny lists into structured patterns.
//
// Both the project settings (.claude/settings.json) and the home settings
// (~/.claude/settings.json) are gathered; missing or malformed files degrade
// to an empty report rather than failing the run.
package permissions
