package reflection

import (
	"bytes"
	"encoding/json"
)

// Reflection is one parsed reflection document. Category lists are
// insertion-ordered and never nil; a Reflection is immutable once returned
// from ParseReflection.
type Reflection struct {
	File    string `json:"file"`
	Date    string `json:"date"`
	Topic   string `json:"topic"`
	Summary string `json:"summary"`

	Discoveries      []string `json:"discoveries"`
	ImprovementsMade []string `json:"improvements_made"`
	IssuesCreated    []string `json:"issues_created"`
	OpenQuestions    []string `json:"open_questions"`
	PatternsToWatch  []string `json:"patterns_to_watch"`
	AntiPatterns     []string `json:"anti_patterns"`
}

// NewReflection creates an empty record for the given file path.
func NewReflection(path string) *Reflection {
	return &Reflection{
		File:             path,
		Discoveries:      []string{},
		ImprovementsMade: []string{},
		IssuesCreated:    []string{},
		OpenQuestions:    []string{},
		PatternsToWatch:  []string{},
		AntiPatterns:     []string{},
	}
}

// KeywordCount is one entry in a frequency table.
type KeywordCount struct {
	Keyword string
	Count   int
}

// FrequencyTable is an ordered, capped keyword frequency table. Entries are
// sorted by descending count with ties in first-encountered order.
type FrequencyTable []KeywordCount

// Get returns the count for a keyword and whether it is present.
func (t FrequencyTable) Get(keyword string) (int, bool) {
	for _, entry := range t {
		if entry.Keyword == keyword {
			return entry.Count, true
		}
	}
	return 0, false
}

// MarshalJSON renders the table as a JSON object whose key order follows
// table order.
func (t FrequencyTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Keyword)
		if err != nil {
			return nil, err
		}
		count, err := json.Marshal(entry.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RecurringTheme is a keyword mentioned in two or more sessions, with the
// sorted distinct dates it appeared on.
type RecurringTheme struct {
	Keyword string
	Count   int
	Dates   []string
}

// RecurrenceTable is an ordered recurrence index keyed by keyword.
type RecurrenceTable []RecurringTheme

// Get returns the recurrence entry for a keyword and whether it is present.
func (t RecurrenceTable) Get(keyword string) (RecurringTheme, bool) {
	for _, theme := range t {
		if theme.Keyword == keyword {
			return theme, true
		}
	}
	return RecurringTheme{}, false
}

// MarshalJSON renders the table as a JSON object mapping each keyword to its
// count and date list, preserving table order.
func (t RecurrenceTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, theme := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(theme.Keyword)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(struct {
			Count int      `json:"count"`
			Dates []string `json:"dates"`
		}{theme.Count, theme.Dates})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ThemeAggregate is the read-only result of one aggregation pass over the
// full reflection set.
type ThemeAggregate struct {
	DiscoveryKeywords       FrequencyTable  `json:"discovery_keywords"`
	ImprovementKeywords     FrequencyTable  `json:"improvement_keywords"`
	QuestionKeywords        FrequencyTable  `json:"question_keywords"`
	PatternKeywords         FrequencyTable  `json:"pattern_keywords"`
	RecurringAcrossSessions RecurrenceTable `json:"recurring_across_sessions"`
}

// Report is the structured output of one analyzer run.
type Report struct {
	Timestamp        string         `json:"timestamp"`
	ReflectionsDir   string         `json:"reflections_dir"`
	TotalReflections int            `json:"total_reflections"`
	Reflections      []*Reflection  `json:"reflections"`
	RecurringThemes  ThemeAggregate `json:"recurring_themes"`
}
