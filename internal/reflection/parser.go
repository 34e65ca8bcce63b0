package reflection

import (
	"path/filepath"
	"regexp"
	"strings"
)

// filenamePattern captures the date and topic slug from reflection filenames
// (YYYY-MM-DD-topic.md).
var filenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// sectionState is the parser's per-document state machine: either no section
// has been seen yet (zero value) or a named section is accumulating items.
// Entering a new section flushes the previous one; end of input flushes the
// last.
type sectionState struct {
	name  string
	items []string
}

// enter flushes the current section into r and starts a new one with an
// empty buffer. Section names are lowercased on entry.
func (s *sectionState) enter(r *Reflection, name string) {
	s.flush(r)
	s.name = strings.ToLower(name)
	s.items = nil
}

func (s *sectionState) add(item string) {
	s.items = append(s.items, item)
}

// flush classifies buffered items into the reflection's category lists.
// Sections whose name matches no category rule are discarded.
func (s *sectionState) flush(r *Reflection) {
	if s.name == "" || len(s.items) == 0 {
		return
	}
	if list := r.categoryFor(s.name); list != nil {
		*list = append(*list, s.items...)
	}
	s.items = nil
}

// categoryFor maps a lowercased section name to the category list it feeds.
// Rule order matters: several substring conditions overlap, and a section
// naming both "pattern" and "watch" deliberately falls through to
// patterns_to_watch instead of discoveries.
func (r *Reflection) categoryFor(name string) *[]string {
	switch {
	case strings.Contains(name, "discover") ||
		(strings.Contains(name, "pattern") && !strings.Contains(name, "watch")):
		return &r.Discoveries
	case strings.Contains(name, "improvement") && strings.Contains(name, "made"):
		return &r.ImprovementsMade
	case strings.Contains(name, "issue") || strings.Contains(name, "created"):
		return &r.IssuesCreated
	case strings.Contains(name, "question"):
		return &r.OpenQuestions
	case strings.Contains(name, "watch") || strings.Contains(name, "pattern"):
		return &r.PatternsToWatch
	case strings.Contains(name, "anti"):
		return &r.AntiPatterns
	}
	return nil
}

// ParseReflection parses one reflection markdown document into a Reflection.
//
// The date and topic come from the filename when it matches
// YYYY-MM-DD-<slug>; otherwise the date is empty and the topic is the whole
// stem. Level-2 headings open sections, level-3 headings are continuation
// markers, list items accumulate per section, and raw lines under a
// "session summary" section become the summary (last one wins).
func ParseReflection(path, content string) *Reflection {
	r := NewReflection(path)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if m := filenamePattern.FindStringSubmatch(stem); m != nil {
		r.Date = m[1]
		r.Topic = strings.ReplaceAll(m[2], "-", " ")
	} else {
		r.Topic = stem
	}

	var section sectionState
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "## "):
			section.enter(r, line[3:])
		case strings.HasPrefix(line, "### "):
			// Subsection heading: continuation of the current section.
		case strings.HasPrefix(line, "- "):
			if item := stripCheckbox(strings.TrimSpace(line[2:])); item != "" {
				section.add(item)
			}
		case line != "" && section.name == "session summary":
			r.Summary = line
		}
	}
	section.flush(r)

	return r
}

// stripCheckbox removes a leading markdown checkbox token from a list item.
func stripCheckbox(item string) string {
	if after, ok := strings.CutPrefix(item, "[x] "); ok {
		return after
	}
	if after, ok := strings.CutPrefix(item, "[ ] "); ok {
		return after
	}
	return item
}
