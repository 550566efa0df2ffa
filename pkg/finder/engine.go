package finder

import (
	"iter"
	"slices"
)

// index is the membership structure behind a strategy. Words reach it already folded.
type index interface {
	insert(word string)
	has(word string) bool
	size() int
}

// engine holds what every strategy shares: validation, folding, tallying and ranking.
// It is read-only once built.
type engine struct {
	idx  index
	opts options
	rows int
	cols int
}

func build(grid []string, idx index, opts []Option) (engine, error) {
	g, err := readGrid(grid)
	if err != nil {
		return engine{}, err
	}
	o := newOptions(opts)
	fold := o.folder()
	for _, word := range g.words {
		idx.insert(fold(word))
	}
	return engine{idx: idx, opts: o, rows: g.rows, cols: g.cols}, nil
}

func (e engine) Find(queries []string) ([]string, error) {
	if queries == nil {
		return nil, ErrNilQueries
	}
	return e.FindSeq(slices.Values(queries))
}

func (e engine) FindSeq(queries iter.Seq[string]) ([]string, error) {
	matches, err := e.FindMatches(queries)
	if err != nil {
		return nil, err
	}
	return Words(matches), nil
}

// FindMatches tallies into a map owned by this call only, so concurrent calls never share state.
func (e engine) FindMatches(queries iter.Seq[string]) ([]Match, error) {
	if queries == nil {
		return nil, ErrNilQueries
	}
	fold := e.opts.folder()
	tally := make(map[string]int)
	for q := range queries {
		word := fold(q)
		if e.idx.has(word) {
			tally[word]++
		}
	}
	return Rank(tally, MaxResults), nil
}

func (e engine) Contains(word string) bool {
	return e.idx.has(e.opts.folder()(word))
}

func (e engine) Stats() map[string]int {
	stats := map[string]int{
		"rows":  e.rows,
		"cols":  e.cols,
		"words": e.idx.size(),
	}
	if n, ok := e.idx.(interface{ nodes() int }); ok {
		stats["nodes"] = n.nodes()
	}
	caseSensitive := 0
	if e.opts.caseSensitive {
		caseSensitive = 1
	}
	stats["caseSensitive"] = caseSensitive
	return stats
}
