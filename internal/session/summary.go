package session

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Summary display bounds.
const (
	summaryLatestCommits  = 5
	summaryFilesEdited    = 10
	summaryCommitTruncate = 50
)

// WriteSummary writes the bounded human-readable session summary.
func WriteSummary(w io.Writer, data Data) {
	var sb strings.Builder
	bar := strings.Repeat("=", 60)

	sb.WriteString(bar + "\n")
	sb.WriteString("SESSION DATA SUMMARY\n")
	sb.WriteString(bar + "\n")
	sb.WriteString(fmt.Sprintf("Timestamp: %s\n\n", data.Timestamp))

	writeGit(&sb, data.Git)
	writeBeads(&sb, data.Beads)
	writeGitHub(&sb, data.GitHub)

	sb.WriteString(fmt.Sprintf("Files Edited: %d\n", len(data.FilesEdited)))
	for i, file := range data.FilesEdited {
		if i >= summaryFilesEdited {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.FilesEdited)-summaryFilesEdited))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", file))
	}

	sb.WriteString("\nRun with --json for full structured output\n")
	fmt.Fprint(w, sb.String())
}

func writeGit(sb *strings.Builder, git GitData) {
	if !git.Available {
		sb.WriteString("Git: Not available (not in a git repository)\n\n")
		return
	}
	sb.WriteString(fmt.Sprintf("Git Branch: %s\n", git.Branch))
	sb.WriteString(fmt.Sprintf("Recent Commits: %d\n", len(git.Commits)))
	if len(git.Commits) > 0 {
		sb.WriteString("  Latest commits:\n")
		for i, commit := range git.Commits {
			if i >= summaryLatestCommits {
				break
			}
			message := commit.Message
			if len(message) > summaryCommitTruncate {
				message = message[:summaryCommitTruncate]
			}
			sb.WriteString(fmt.Sprintf("    - %s: %s\n", commit.Hash, message))
		}
	}
	sb.WriteString(fmt.Sprintf("Files in Status: %d\n", len(git.Status)))
	sb.WriteString(fmt.Sprintf("Files Changed (last %d commits): %d\n\n", diffStatDepth, git.DiffStats.TotalFiles))
}

func writeBeads(sb *strings.Builder, beads BeadsData) {
	if !beads.Available {
		sb.WriteString("Beads: Not available (bd command or .beads/ not found)\n\n")
		return
	}
	sb.WriteString(fmt.Sprintf("Beads Closed: %d\n", listLen(beads.Closed)))
	sb.WriteString(fmt.Sprintf("Beads In Progress: %d\n", listLen(beads.InProgress)))
	sb.WriteString(fmt.Sprintf("Beads Open: %d\n\n", listLen(beads.Created)))
}

func writeGitHub(sb *strings.Builder, gh GitHubData) {
	if !gh.Available {
		return
	}
	sb.WriteString(fmt.Sprintf("GitHub Issues (%s): %d open, %d recently closed\n\n",
		gh.Repo, len(gh.Open), len(gh.Closed)))
}

// listLen counts the elements of a raw JSON array.
func listLen(raw json.RawMessage) int {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}
