package finder

// wordSet is an exact-match set; inserting a word twice is a no-op.
type wordSet map[string]struct{}

func (s wordSet) insert(word string) { s[word] = struct{}{} }

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s wordSet) size() int { return len(s) }

// SetFinder answers membership with a hashed lookup of the grid's row and column words.
type SetFinder struct {
	engine
}

// NewSetFinder validates grid and indexes its rows and columns into a set.
func NewSetFinder(grid []string, opts ...Option) (*SetFinder, error) {
	e, err := build(grid, make(wordSet), opts)
	if err != nil {
		return nil, err
	}
	return &SetFinder{e}, nil
}
