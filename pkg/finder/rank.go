package finder

import "sort"

// Rank orders the tallied words by count, highest first, and keeps at most limit of them.
// Equal counts fall back to lexicographic order so every strategy ranks identically.
// A limit of zero or less keeps everything.
func Rank(tally map[string]int, limit int) []Match {
	matches := make([]Match, 0, len(tally))
	for word, count := range tally {
		matches = append(matches, Match{Word: word, Count: count})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		return matches[i].Word < matches[j].Word
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Words drops the counts, keeping rank order.
func Words(matches []Match) []string {
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	return words
}
