package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		name  string
		tally map[string]int
		limit int
		want  []Match
	}{
		{
			name:  "empty",
			tally: map[string]int{},
			limit: MaxResults,
			want:  []Match{},
		},
		{
			name:  "descending count",
			tally: map[string]int{"low": 1, "high": 9, "mid": 4},
			limit: MaxResults,
			want:  []Match{{"high", 9}, {"mid", 4}, {"low", 1}},
		},
		{
			name:  "ties are lexicographic",
			tally: map[string]int{"delta": 2, "alpha": 2, "charlie": 2, "bravo": 5},
			limit: MaxResults,
			want:  []Match{{"bravo", 5}, {"alpha", 2}, {"charlie", 2}, {"delta", 2}},
		},
		{
			name:  "truncated",
			tally: map[string]int{"a": 1, "b": 2, "c": 3},
			limit: 2,
			want:  []Match{{"c", 3}, {"b", 2}},
		},
		{
			name:  "no limit",
			tally: map[string]int{"a": 1, "b": 2, "c": 3},
			limit: 0,
			want:  []Match{{"c", 3}, {"b", 2}, {"a", 1}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Rank(tc.tally, tc.limit))
		})
	}
}

func TestRankIsStableAcrossRuns(t *testing.T) {
	tally := make(map[string]int)
	for _, w := range []string{"k", "j", "i", "h", "g", "f", "e", "d", "c", "b", "a", "z"} {
		tally[w] = 1
	}
	first := Rank(tally, MaxResults)
	for range 20 {
		assert.Equal(t, first, Rank(tally, MaxResults))
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, Words(first))
}
