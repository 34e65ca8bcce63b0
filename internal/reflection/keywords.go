package reflection

import (
	"iter"
	"regexp"
	"strings"
)

// keywordPattern matches a letter followed by letters, digits, hyphens or
// underscores, on word boundaries.
var keywordPattern = regexp.MustCompile(`\b[a-z][a-z0-9_-]+\b`)

// stopWords holds common English function words plus domain noise words
// that carry no signal in reflection items.
var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "shall", "can", "to", "of", "in",
		"for", "on", "with", "at", "by", "from", "as", "into", "through",
		"during", "before", "after", "above", "below", "between", "under",
		"again", "further", "then", "once", "here", "there", "when", "where",
		"why", "how", "all", "each", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "just", "but", "and", "or", "if", "this", "that",
		"these", "those", "it", "its", "i", "we", "you", "he", "she", "they",
		"added", "updated", "created", "fixed", "issue", "bd", "see", "also",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

// Keywords returns a lazy, restartable sequence of normalized keywords from
// text, in order of first character position with duplicates preserved.
// Tokens are lowercased, must be longer than two characters, and must not be
// stop words.
func Keywords(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := strings.ToLower(text)
		for {
			loc := keywordPattern.FindStringIndex(rest)
			if loc == nil {
				return
			}
			token := rest[loc[0]:loc[1]]
			rest = rest[loc[1]:]
			if len(token) <= 2 {
				continue
			}
			if _, skip := stopWords[token]; skip {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}
