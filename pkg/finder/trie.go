package finder

// node is a Trie node. end marks that the path from the root spells a whole word,
// not just the prefix of a longer one.
type node struct {
	children map[rune]*node
	end      bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix tree keyed by rune.
type Trie struct {
	root  *node
	words int
	count int
}

// NewTrie creates an empty trie holding only the root.
func NewTrie() *Trie {
	return &Trie{root: newNode(), count: 1}
}

// Insert adds word and reports whether it was not already present.
func (t *Trie) Insert(word string) bool {
	current := t.root
	for _, r := range word {
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
			t.count++
		}
		current = child
	}
	if current.end {
		return false
	}
	current.end = true
	t.words++
	return true
}

// Search reports whether word was inserted as a whole word.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)
	return n != nil && n.end
}

// startsWith reports whether any inserted word begins with prefix.
func (t *Trie) startsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.words }

// Nodes returns the number of nodes, root included.
func (t *Trie) Nodes() int { return t.count }

func (t *Trie) walk(s string) *node {
	current := t.root
	for _, r := range s {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func (t *Trie) insert(word string) { t.Insert(word) }
func (t *Trie) has(word string) bool { return t.Search(word) }
func (t *Trie) size() int { return t.words }
func (t *Trie) nodes() int { return t.count }

// TrieFinder answers membership by walking a prefix tree of the grid's row and column words.
type TrieFinder struct {
	engine
}

// NewTrieFinder validates grid and indexes its rows and columns into a Trie.
func NewTrieFinder(grid []string, opts ...Option) (*TrieFinder, error) {
	e, err := build(grid, NewTrie(), opts)
	if err != nil {
		return nil, err
	}
	return &TrieFinder{e}, nil
}
