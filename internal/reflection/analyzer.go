package reflection

import "sort"

// Frequency table caps.
const (
	maxDiscoveryKeywords   = 15
	maxImprovementKeywords = 15
	maxQuestionKeywords    = 10
	maxPatternKeywords     = 10
	maxRecurringThemes     = 20
)

// counter accumulates keyword frequencies while remembering first-seen order
// so ties rank deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(keyword string) {
	if _, seen := c.counts[keyword]; !seen {
		c.order = append(c.order, keyword)
	}
	c.counts[keyword]++
}

// top returns up to n entries ordered by descending count, ties in
// first-seen order.
func (c *counter) top(n int) FrequencyTable {
	ranked := make(FrequencyTable, 0, len(c.order))
	for _, keyword := range c.order {
		ranked = append(ranked, KeywordCount{Keyword: keyword, Count: c.counts[keyword]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// AggregateThemes folds keyword streams from every reflection into one
// ThemeAggregate.
//
// Discovery and open-question keywords also feed a per-keyword date index;
// the recurrence table is derived from the top discovery keywords that were
// mentioned at least twice, each carrying its sorted distinct dates.
func AggregateThemes(reflections []*Reflection) ThemeAggregate {
	discoveries := newCounter()
	improvements := newCounter()
	questions := newCounter()
	patterns := newCounter()
	keywordDates := make(map[string]map[string]struct{})

	recordDate := func(keyword, date string) {
		set, ok := keywordDates[keyword]
		if !ok {
			set = make(map[string]struct{})
			keywordDates[keyword] = set
		}
		set[date] = struct{}{}
	}

	for _, r := range reflections {
		for _, item := range r.Discoveries {
			for keyword := range Keywords(item) {
				discoveries.add(keyword)
				recordDate(keyword, r.Date)
			}
		}
		for _, item := range r.ImprovementsMade {
			for keyword := range Keywords(item) {
				improvements.add(keyword)
			}
		}
		for _, item := range r.OpenQuestions {
			for keyword := range Keywords(item) {
				questions.add(keyword)
				recordDate(keyword, r.Date)
			}
		}
		for _, item := range r.PatternsToWatch {
			for keyword := range Keywords(item) {
				patterns.add(keyword)
			}
		}
	}

	recurring := make(RecurrenceTable, 0, maxRecurringThemes)
	for _, entry := range discoveries.top(maxRecurringThemes) {
		if entry.Count < 2 {
			continue
		}
		recurring = append(recurring, RecurringTheme{
			Keyword: entry.Keyword,
			Count:   entry.Count,
			Dates:   sortedDates(keywordDates[entry.Keyword]),
		})
	}

	return ThemeAggregate{
		DiscoveryKeywords:       discoveries.top(maxDiscoveryKeywords),
		ImprovementKeywords:     improvements.top(maxImprovementKeywords),
		QuestionKeywords:        questions.top(maxQuestionKeywords),
		PatternKeywords:         patterns.top(maxPatternKeywords),
		RecurringAcrossSessions: recurring,
	}
}

func sortedDates(set map[string]struct{}) []string {
	dates := make([]string, 0, len(set))
	for date := range set {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
