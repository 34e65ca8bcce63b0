package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/reflectd/internal/reflection"
)

// execute runs the CLI with a hermetic config file and captures its output.
func execute(t *testing.T, cfgYAML string, args ...string) (string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfgYAML), 0o600))

	// Flag values persist between Execute calls.
	jsonOutput = false
	sessionCommits = 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeReflection(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestHistoryCommand_JSON(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	dir := t.TempDir()
	writeReflection(t, dir, "2025-01-01-parser-work.md",
		"## Discoveries\n- Parser caching causes stale reads\n")
	writeReflection(t, dir, "2025-01-02-more-parser.md",
		"## Discoveries\n- Stale reads traced to parser caching\n")

	out, err := execute(t, "history:\n  dir: "+dir+"\n", "history", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"total_reflections": 2`)
	assert.Contains(t, out, `"recurring_across_sessions"`)
	assert.Contains(t, out, `"parser"`)
}

func TestHistoryCommand_Summary(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	dir := t.TempDir()
	writeReflection(t, dir, "2025-01-01-setup.md",
		"## Session Summary\nBootstrapped the project\n## Discoveries\n- Build cache misconfigured\n")

	out, err := execute(t, "logging:\n  level: error\n", "history", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "REFLECTION HISTORY SUMMARY")
	assert.Contains(t, out, "Bootstrapped the project")
}

func TestHistoryCommand_DirErrors(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	_, err := execute(t, "", "history", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, reflection.ErrDirNotFound)

	_, err = execute(t, "", "history", t.TempDir())
	assert.ErrorIs(t, err, reflection.ErrNoReflections)
}

func TestPermissionsCommand(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(settings,
		[]byte(`{"permissions":{"allow":["Bash(go test:*)","Read"],"deny":["WebFetch"]}}`), 0o644))

	cfgYAML := "permissions:\n  home_settings: " + filepath.Join(dir, "absent.json") + "\n"
	out, err := execute(t, cfgYAML, "permissions", settings)
	require.NoError(t, err)

	assert.Contains(t, out, "CLAUDE CODE PERMISSIONS SUMMARY")
	assert.Contains(t, out, "Bash(go test:*)")
	assert.Contains(t, out, "WebFetch")
}

func TestSessionCommand_OutsideRepository(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Chdir(t.TempDir())

	out, err := execute(t, "", "session", "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"available": false`)
	assert.Contains(t, out, `"timestamp"`)
	assert.Contains(t, out, `"files_edited"`)
}
