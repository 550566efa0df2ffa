package finder

import (
	"fmt"
	"strings"
)

// Strategy names an indexing implementation.
type Strategy string

const (
	StrategySet      Strategy = "set"
	StrategyTrie     Strategy = "trie"
	StrategyPatricia Strategy = "patricia"
)

// Strategies lists every available strategy.
func Strategies() []Strategy {
	return []Strategy{StrategySet, StrategyTrie, StrategyPatricia}
}

// ParseStrategy maps a name, in any case, to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// New builds a finder over grid using the given strategy.
func New(strategy Strategy, grid []string, opts ...Option) (IWordFinder, error) {
	var (
		f   IWordFinder
		err error
	)
	switch strategy {
	case StrategySet:
		f, err = NewSetFinder(grid, opts...)
	case StrategyTrie:
		f, err = NewTrieFinder(grid, opts...)
	case StrategyPatricia:
		f, err = NewPatriciaFinder(grid, opts...)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
