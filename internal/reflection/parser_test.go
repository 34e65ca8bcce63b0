package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReflection_Filename(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantDate  string
		wantTopic string
	}{
		{
			name:      "dated filename",
			path:      "history/reflections/2025-01-15-caching-layer.md",
			wantDate:  "2025-01-15",
			wantTopic: "caching layer",
		},
		{
			name:      "multi word slug",
			path:      "2024-12-01-fix-flaky-integration-tests.md",
			wantDate:  "2024-12-01",
			wantTopic: "fix flaky integration tests",
		},
		{
			name:      "no date prefix",
			path:      "notes.md",
			wantDate:  "",
			wantTopic: "notes",
		},
		{
			name:      "partial date",
			path:      "2025-01-review.md",
			wantDate:  "",
			wantTopic: "2025-01-review",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseReflection(tt.path, "")
			assert.Equal(t, tt.wantDate, r.Date)
			assert.Equal(t, tt.wantTopic, r.Topic)
			assert.Equal(t, tt.path, r.File)
		})
	}
}

func TestParseReflection_Sections(t *testing.T) {
	content := `# Reflection

## Session Summary
Refactored the cache eviction path.

## Discoveries
- Stale reads came from the TTL reset
- [x] Eviction races with refresh

### Details
- Nested list item still belongs to discoveries

## Improvements Made
- [ ] Tightened the eviction lock

## Issues Created
- Tracker entry for the TTL bug

## Open Questions
- Should refresh hold the lock?

## Patterns to Watch
- Lock contention during refresh
`
	r := ParseReflection("2025-02-01-cache.md", content)

	assert.Equal(t, "Refactored the cache eviction path.", r.Summary)
	assert.Equal(t, []string{
		"Stale reads came from the TTL reset",
		"Eviction races with refresh",
		"Nested list item still belongs to discoveries",
	}, r.Discoveries)
	assert.Equal(t, []string{"Tightened the eviction lock"}, r.ImprovementsMade)
	assert.Equal(t, []string{"Tracker entry for the TTL bug"}, r.IssuesCreated)
	assert.Equal(t, []string{"Should refresh hold the lock?"}, r.OpenQuestions)
	assert.Equal(t, []string{"Lock contention during refresh"}, r.PatternsToWatch)
}

func TestParseReflection_CheckboxStripping(t *testing.T) {
	checked := ParseReflection("a.md", "## Discoveries\n- [x] Fix bug\n")
	plain := ParseReflection("a.md", "## Discoveries\n- Fix bug\n")
	unchecked := ParseReflection("a.md", "## Discoveries\n- [ ] Fix bug\n")

	require.Len(t, checked.Discoveries, 1)
	assert.Equal(t, plain.Discoveries, checked.Discoveries)
	assert.Equal(t, plain.Discoveries, unchecked.Discoveries)
	assert.Equal(t, "Fix bug", checked.Discoveries[0])
}

func TestParseReflection_Classification(t *testing.T) {
	tests := []struct {
		heading string
		want    func(*Reflection) []string
	}{
		{"## What I Discovered", func(r *Reflection) []string { return r.Discoveries }},
		{"## New Patterns", func(r *Reflection) []string { return r.Discoveries }},
		{"## Improvements Made", func(r *Reflection) []string { return r.ImprovementsMade }},
		{"## Issues Filed", func(r *Reflection) []string { return r.IssuesCreated }},
		{"## Tickets Created", func(r *Reflection) []string { return r.IssuesCreated }},
		{"## Open Questions", func(r *Reflection) []string { return r.OpenQuestions }},
		{"## Patterns to Watch", func(r *Reflection) []string { return r.PatternsToWatch }},
		{"## Things to Watch", func(r *Reflection) []string { return r.PatternsToWatch }},
		{"## Anti-practices", func(r *Reflection) []string { return r.AntiPatterns }},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			r := ParseReflection("x.md", tt.heading+"\n- the item\n")
			assert.Equal(t, []string{"the item"}, tt.want(r))
		})
	}
}

// A heading naming both "pattern" and "watch" classifies as patterns_to_watch,
// not discoveries, because the discovery rule excludes "watch".
func TestParseReflection_PatternWatchPrecedence(t *testing.T) {
	r := ParseReflection("x.md", "## Patterns to Watch\n- lock contention\n")
	assert.Empty(t, r.Discoveries)
	assert.Equal(t, []string{"lock contention"}, r.PatternsToWatch)
}

// A heading naming "pattern" without "watch" classifies as discoveries even
// when it also names "anti". Rule order is load-bearing here.
func TestParseReflection_AntiPatternHeadingIsDiscovery(t *testing.T) {
	r := ParseReflection("x.md", "## Anti-patterns\n- resetting TTL on read\n")
	assert.Equal(t, []string{"resetting TTL on read"}, r.Discoveries)
	assert.Empty(t, r.AntiPatterns)
}

func TestParseReflection_UnmatchedSectionDropped(t *testing.T) {
	content := `## Random Notes
- this item goes nowhere
- neither does this one

## Discoveries
- kept
`
	r := ParseReflection("x.md", content)

	assert.Equal(t, []string{"kept"}, r.Discoveries)
	total := len(r.Discoveries) + len(r.ImprovementsMade) + len(r.IssuesCreated) +
		len(r.OpenQuestions) + len(r.PatternsToWatch) + len(r.AntiPatterns)
	assert.Equal(t, 1, total)
}

func TestParseReflection_ItemsBeforeFirstSectionIgnored(t *testing.T) {
	r := ParseReflection("x.md", "- orphan item\n\n## Discoveries\n- kept\n")
	assert.Equal(t, []string{"kept"}, r.Discoveries)
}

func TestParseReflection_RepeatedCategoryAppends(t *testing.T) {
	content := `## Discoveries
- first

## More Discoveries
- second
`
	r := ParseReflection("x.md", content)
	assert.Equal(t, []string{"first", "second"}, r.Discoveries)
}

func TestParseReflection_SummaryLastLineWins(t *testing.T) {
	content := `## Session Summary
First summary line.
Second summary line.
`
	r := ParseReflection("x.md", content)
	assert.Equal(t, "Second summary line.", r.Summary)
}

func TestParseReflection_CategoryListsNeverNil(t *testing.T) {
	r := ParseReflection("empty.md", "")
	assert.NotNil(t, r.Discoveries)
	assert.NotNil(t, r.ImprovementsMade)
	assert.NotNil(t, r.IssuesCreated)
	assert.NotNil(t, r.OpenQuestions)
	assert.NotNil(t, r.PatternsToWatch)
	assert.NotNil(t, r.AntiPatterns)
}
