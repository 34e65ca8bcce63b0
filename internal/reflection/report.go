package reflection

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Summary display bounds.
const (
	summaryRecentReflections = 5
	summaryRecurringThemes   = 10
	summaryDiscoveryKeywords = 8
	summaryQuestionKeywords  = 5
	summaryTruncateAt        = 60
	summaryRecentDates       = 3
)

// NewReport assembles the structured run report from an already-loaded
// reflection set.
func NewReport(dir string, reflections []*Reflection) Report {
	return Report{
		Timestamp:        time.Now().Format(time.RFC3339),
		ReflectionsDir:   dir,
		TotalReflections: len(reflections),
		Reflections:      reflections,
		RecurringThemes:  AggregateThemes(reflections),
	}
}

// WriteJSON writes the full structured report as indented JSON.
func WriteJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteSummary writes the bounded human-readable summary: the most recent
// reflections, recurring themes with their latest dates, and the top
// discovery and open-question keywords.
func WriteSummary(w io.Writer, report Report) {
	var sb strings.Builder
	bar := strings.Repeat("=", 60)

	sb.WriteString(bar + "\n")
	sb.WriteString("REFLECTION HISTORY SUMMARY\n")
	sb.WriteString(bar + "\n")
	sb.WriteString(fmt.Sprintf("Directory: %s\n", report.ReflectionsDir))
	sb.WriteString(fmt.Sprintf("Total Reflections: %d\n\n", report.TotalReflections))

	sb.WriteString("Recent Reflections:\n")
	for _, r := range firstN(report.Reflections, summaryRecentReflections) {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", r.Date, r.Topic))
		if r.Summary != "" {
			sb.WriteString(fmt.Sprintf("    %s...\n", truncate(r.Summary, summaryTruncateAt)))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Recurring Themes (mentioned 2+ times across sessions):\n")
	for _, theme := range firstN(report.RecurringThemes.RecurringAcrossSessions, summaryRecurringThemes) {
		dates := strings.Join(lastN(theme.Dates, summaryRecentDates), ", ")
		sb.WriteString(fmt.Sprintf("  - %s: %d mentions (%s)\n", theme.Keyword, theme.Count, dates))
	}
	sb.WriteString("\n")

	sb.WriteString("Top Discovery Keywords:\n")
	for _, entry := range firstN(report.RecurringThemes.DiscoveryKeywords, summaryDiscoveryKeywords) {
		sb.WriteString(fmt.Sprintf("  - %s: %d\n", entry.Keyword, entry.Count))
	}
	sb.WriteString("\n")

	sb.WriteString("Open Question Keywords (potential recurring issues):\n")
	for _, entry := range firstN(report.RecurringThemes.QuestionKeywords, summaryQuestionKeywords) {
		sb.WriteString(fmt.Sprintf("  - %s: %d\n", entry.Keyword, entry.Count))
	}
	sb.WriteString("\n")
	sb.WriteString("Run with --json for full structured output\n")

	fmt.Fprint(w, sb.String())
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func lastN(items []string, n int) []string {
	if len(items) > n {
		return items[len(items)-n:]
	}
	return items
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
