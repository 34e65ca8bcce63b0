package permissions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Permission
	}{
		{
			name: "bash with wildcard pattern",
			raw:  "Bash(go test:*)",
			want: Permission{Raw: "Bash(go test:*)", Kind: KindTool, Tool: "Bash", Pattern: "go test:*", HasWildcard: true},
		},
		{
			name: "read wildcard",
			raw:  "Read(*)",
			want: Permission{Raw: "Read(*)", Kind: KindTool, Tool: "Read", Pattern: "*", HasWildcard: true},
		},
		{
			name: "bare tool name",
			raw:  "WebFetch",
			want: Permission{Raw: "WebFetch", Kind: KindTool, Tool: "WebFetch"},
		},
		{
			name: "mcp tool",
			raw:  "mcp__contextd__checkpoint_save",
			want: Permission{Raw: "mcp__contextd__checkpoint_save", Kind: KindMCP, Tool: "contextd/checkpoint_save"},
		},
		{
			name: "mcp missing tool part",
			raw:  "mcp__broken",
			want: Permission{Raw: "mcp__broken", Kind: KindMCP},
		},
		{
			name: "unrecognized form",
			raw:  "not a permission!",
			want: Permission{Raw: "not a permission!", Kind: KindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGather(t *testing.T) {
	path := writeSettings(t, t.TempDir(), `{
		"permissions": {
			"allow": [
				"Bash(go build:*)",
				"Bash(go test:*)",
				"Read(*)",
				"mcp__contextd__checkpoint_save"
			],
			"deny": ["Bash(rm -rf:*)"]
		}
	}`)

	report := Gather(path)

	assert.True(t, report.Exists)
	assert.Len(t, report.CurrentPermissions, 4)
	assert.Equal(t, []string{"Bash(rm -rf:*)"}, report.DeniedPatterns)
	assert.Equal(t, []string{"go build:*", "go test:*"}, report.BashPatterns)
	assert.Equal(t, []string{"mcp__contextd__checkpoint_save"}, report.MCPPermissions)
	assert.Equal(t, []string{"Bash(go build:*)", "Bash(go test:*)"}, report.ByTool["Bash"])
	assert.Equal(t, []string{"Read(*)"}, report.ByTool["Read"])
	require.Len(t, report.PermissionPatterns, 4)
	assert.Equal(t, KindMCP, report.PermissionPatterns[3].Kind)
}

func TestGather_MissingFile(t *testing.T) {
	report := Gather(filepath.Join(t.TempDir(), "absent.json"))
	assert.False(t, report.Exists)
	assert.Empty(t, report.CurrentPermissions)
	assert.NotNil(t, report.ByTool)
}

func TestGather_MalformedJSON(t *testing.T) {
	path := writeSettings(t, t.TempDir(), "{not json")
	report := Gather(path)
	assert.False(t, report.Exists)
	assert.Empty(t, report.CurrentPermissions)
}

func TestGatherAll_CombinesScopes(t *testing.T) {
	projectDir := t.TempDir()
	homeDir := t.TempDir()
	project := writeSettings(t, projectDir, `{"permissions":{"allow":["Bash(go test:*)","Read(*)"]}}`)
	home := writeSettings(t, homeDir, `{"permissions":{"allow":["Read(*)","Bash(git status:*)"]}}`)

	report := GatherAll(project, home)

	assert.Equal(t, []string{
		"Bash(git status:*)",
		"Bash(go test:*)",
		"Read(*)",
	}, report.CombinedPermissions)
	assert.Equal(t, []string{"git status:*", "go test:*"}, report.CombinedBashPatterns)
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	project := writeSettings(t, dir, `{"permissions":{"allow":["Bash(go test:*)"]}}`)
	report := GatherAll(project, filepath.Join(dir, "absent.json"))

	var buf bytes.Buffer
	WriteSummary(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "CLAUDE CODE PERMISSIONS SUMMARY")
	assert.Contains(t, out, "Project Settings: "+project)
	assert.Contains(t, out, "Exists: true")
	assert.Contains(t, out, "Exists: false")
	assert.Contains(t, out, "go test:*")
}
