package finder

import "github.com/tchap/go-patricia/v2/patricia"

// compactTrie stores the grid words in a patricia trie, collapsing shared runs of
// single-child nodes. Items are never nil so Match doubles as an exact lookup.
type compactTrie struct {
	trie  *patricia.Trie
	words int
}

func newCompactTrie() *compactTrie {
	return &compactTrie{trie: patricia.NewTrie()}
}

func (c *compactTrie) insert(word string) {
	if c.trie.Insert(patricia.Prefix(word), struct{}{}) {
		c.words++
	}
}

func (c *compactTrie) has(word string) bool {
	return c.trie.Match(patricia.Prefix(word))
}

func (c *compactTrie) size() int { return c.words }

// PatriciaFinder answers membership with a compressed prefix tree.
type PatriciaFinder struct {
	engine
}

// NewPatriciaFinder validates grid and indexes its rows and columns into a patricia trie.
func NewPatriciaFinder(grid []string, opts ...Option) (*PatriciaFinder, error) {
	e, err := build(grid, newCompactTrie(), opts)
	if err != nil {
		return nil, err
	}
	return &PatriciaFinder{e}, nil
}
