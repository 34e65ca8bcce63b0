package permissions

import (
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Kind classifies a parsed permission string.
type Kind string

const (
	// KindTool is a built-in tool permission, optionally with a pattern.
	KindTool Kind = "tool"
	// KindMCP is an MCP tool permission (mcp__server__tool).
	KindMCP Kind = "mcp"
	// KindUnknown is a permission string in no recognized form.
	KindUnknown Kind = "unknown"
)

// Permission is one parsed permission string.
type Permission struct {
	Raw         string `json:"raw"`
	Kind        Kind   `json:"type"`
	Tool        string `json:"tool"`
	Pattern     string `json:"pattern"`
	HasWildcard bool   `json:"has_wildcard"`
}

// toolPattern matches "Tool(pattern)" permission strings.
var toolPattern = regexp.MustCompile(`^(\w+)\((.+)\)$`)

// bareToolPattern matches a plain tool name with no pattern.
var bareToolPattern = regexp.MustCompile(`^\w+$`)

// Parse parses a single permission string.
//
// Recognized forms:
//
//	Bash(command:*)      tool with a pattern
//	Read(*)              tool with a wildcard pattern
//	WebFetch             bare tool name
//	mcp__server__tool    MCP tool
func Parse(raw string) Permission {
	p := Permission{
		Raw:         raw,
		Kind:        KindUnknown,
		HasWildcard: strings.Contains(raw, "*"),
	}

	if strings.HasPrefix(raw, "mcp__") {
		p.Kind = KindMCP
		if parts := strings.Split(raw, "__"); len(parts) >= 3 {
			p.Tool = parts[1] + "/" + parts[2]
		}
		return p
	}

	if m := toolPattern.FindStringSubmatch(raw); m != nil {
		p.Kind = KindTool
		p.Tool = m[1]
		p.Pattern = m[2]
		return p
	}

	if bareToolPattern.MatchString(raw) {
		p.Kind = KindTool
		p.Tool = raw
		return p
	}

	return p
}

// settingsFile is the subset of a Claude settings file this package reads.
type settingsFile struct {
	Permissions struct {
		Allow []string `json:"allow"`
		Deny  []string `json:"deny"`
	} `json:"permissions"`
}

// FileReport holds the permission state gathered from one settings file.
type FileReport struct {
	SettingsPath       string              `json:"settings_path"`
	Exists             bool                `json:"exists"`
	CurrentPermissions []string            `json:"current_permissions"`
	PermissionPatterns []Permission        `json:"permission_patterns"`
	DeniedPatterns     []string            `json:"denied_patterns"`
	ByTool             map[string][]string `json:"by_tool"`
	MCPPermissions     []string            `json:"mcp_permissions"`
	BashPatterns       []string            `json:"bash_patterns"`
}

// Gather reads one settings file and parses its permission lists. A missing
// or malformed file yields an empty report with Exists recorded.
func Gather(settingsPath string) FileReport {
	report := FileReport{
		SettingsPath:       settingsPath,
		CurrentPermissions: []string{},
		PermissionPatterns: []Permission{},
		DeniedPatterns:     []string{},
		ByTool:             map[string][]string{},
		MCPPermissions:     []string{},
		BashPatterns:       []string{},
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return report
	}
	report.Exists = true

	var settings settingsFile
	if err := json.Unmarshal(data, &settings); err != nil {
		report.Exists = false
		return report
	}

	report.CurrentPermissions = append(report.CurrentPermissions, settings.Permissions.Allow...)
	report.DeniedPatterns = append(report.DeniedPatterns, settings.Permissions.Deny...)

	for _, raw := range settings.Permissions.Allow {
		parsed := Parse(raw)
		report.PermissionPatterns = append(report.PermissionPatterns, parsed)

		tool := parsed.Tool
		if tool == "" {
			tool = "unknown"
		}
		report.ByTool[tool] = append(report.ByTool[tool], raw)

		switch {
		case parsed.Kind == KindMCP:
			report.MCPPermissions = append(report.MCPPermissions, raw)
		case parsed.Tool == "Bash":
			report.BashPatterns = append(report.BashPatterns, parsed.Pattern)
		}
	}

	return report
}

// Report combines project and home scope permission state.
type Report struct {
	ProjectSettings      FileReport `json:"project_settings"`
	HomeSettings         FileReport `json:"home_settings"`
	CombinedPermissions  []string   `json:"combined_permissions"`
	CombinedBashPatterns []string   `json:"combined_bash_patterns"`
}

// GatherAll gathers permissions from the project and home settings files and
// merges the two scopes. Merged lists are deduplicated and sorted.
func GatherAll(projectPath, homePath string) Report {
	project := Gather(projectPath)
	home := Gather(homePath)

	return Report{
		ProjectSettings:      project,
		HomeSettings:         home,
		CombinedPermissions:  mergeSorted(project.CurrentPermissions, home.CurrentPermissions),
		CombinedBashPatterns: mergeSorted(project.BashPatterns, home.BashPatterns),
	}
}

func mergeSorted(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			merged = append(merged, item)
		}
	}
	sort.Strings(merged)
	return merged
}
