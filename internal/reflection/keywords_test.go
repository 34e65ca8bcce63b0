package reflection

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(text string) []string {
	return slices.Collect(Keywords(text))
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and filters stop words",
			text: "The Caching layer causes stale reads",
			want: []string{"caching", "layer", "causes", "stale", "reads"},
		},
		{
			name: "drops short tokens",
			text: "go is ok but concurrency wins",
			want: []string{"concurrency", "wins"},
		},
		{
			name: "keeps hyphen and underscore runs",
			text: "rate-limiter retry_budget exhausted",
			want: []string{"rate-limiter", "retry_budget", "exhausted"},
		},
		{
			name: "drops domain noise words",
			text: "added issue bd see also updated created fixed handler",
			want: []string{"handler"},
		},
		{
			name: "preserves duplicates in position order",
			text: "cache miss then cache hit",
			want: []string{"cache", "miss", "cache", "hit"},
		},
		{
			name: "tokens must start with a letter",
			text: "3rd 404s retry",
			want: []string{"retry"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.text))
		})
	}
}

func TestKeywords_Deterministic(t *testing.T) {
	text := "Retry storms amplify cache stampedes under load"
	first := collect(text)
	second := collect(text)
	assert.Equal(t, first, second)
}

func TestKeywords_Restartable(t *testing.T) {
	seq := Keywords("alpha beta gamma")

	var partial []string
	for keyword := range seq {
		partial = append(partial, keyword)
		break
	}
	assert.Equal(t, []string{"alpha"}, partial)

	// A second range over the same sequence starts from the beginning.
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, slices.Collect(seq))
}
