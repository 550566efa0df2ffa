// Package finder is the core, indexing the rows and columns of a character grid and
// ranking which words of a query stream occur there most often.
package finder

import "iter"

const (
	// MaxRows is the largest number of grid rows accepted.
	MaxRows = 64
	// MaxCols is the largest grid row width accepted, in runes.
	MaxCols = 64
	// MaxResults caps the number of words returned by Find.
	MaxResults = 10
)

// IWordFinder defines the interface shared by every grid indexing strategy
type IWordFinder interface {
	// Find returns up to MaxResults grid words from queries, most frequent first
	Find(queries []string) ([]string, error)

	// FindSeq is Find over an iterator. A nil sequence is an absent stream.
	FindSeq(queries iter.Seq[string]) ([]string, error)

	// FindMatches is FindSeq but keeps the hit count of each word
	FindMatches(queries iter.Seq[string]) ([]Match, error)

	// Contains reports whether word is a full row or column of the grid
	Contains(word string) bool

	// Stats returns statistics about the indexed grid
	Stats() map[string]int
}

// Match is a grid word together with the number of times it was queried.
type Match struct {
	Word  string
	Count int
}
