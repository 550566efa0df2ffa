package finder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constructor func(grid []string, opts ...Option) (IWordFinder, error)

var constructors = map[Strategy]constructor{
	StrategySet: func(grid []string, opts ...Option) (IWordFinder, error) {
		return New(StrategySet, grid, opts...)
	},
	StrategyTrie: func(grid []string, opts ...Option) (IWordFinder, error) {
		return New(StrategyTrie, grid, opts...)
	},
	StrategyPatricia: func(grid []string, opts ...Option) (IWordFinder, error) {
		return New(StrategyPatricia, grid, opts...)
	},
}

// forEachStrategy runs fn once per strategy as a subtest.
func forEachStrategy(t *testing.T, fn func(t *testing.T, build constructor)) {
	for _, s := range Strategies() {
		build := constructors[s]
		t.Run(string(s), func(t *testing.T) {
			fn(t, build)
		})
	}
}

func squareGrid(rows, cols int, r rune) []string {
	return slices.Repeat([]string{strings.Repeat(string(r), cols)}, rows)
}

func TestConstructorValidation(t *testing.T) {
	testCases := []struct {
		name    string
		grid    []string
		wantErr error
	}{
		{"nil grid", nil, ErrEmptyGrid},
		{"empty grid", []string{}, ErrEmptyGrid},
		{"empty rows", []string{"", ""}, ErrEmptyGrid},
		{"too many rows", squareGrid(65, 4, 'A'), ErrGridTooLarge},
		{"row too wide", squareGrid(3, 65, 'A'), ErrGridTooLarge},
		{"65x65", squareGrid(65, 65, 'A'), ErrGridTooLarge},
		{"later row too wide", []string{"ABC", strings.Repeat("A", 65)}, ErrGridTooLarge},
		{"ragged", []string{"ABCD", "ABC", "ABCD"}, ErrRaggedGrid},
		{"empty first row then letters", []string{"", "AB"}, ErrRaggedGrid},
		{"letters then empty row", []string{"AB", ""}, ErrRaggedGrid},
		{"64x64", squareGrid(64, 64, 'A'), nil},
		{"single cell", []string{"A"}, nil},
		{"multi-byte runes count once", squareGrid(64, 64, 'ü'), nil},
	}

	forEachStrategy(t, func(t *testing.T, build constructor) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f, err := build(tc.grid)
				if tc.wantErr == nil {
					require.NoError(t, err)
					assert.NotNil(t, f)
					return
				}
				require.Error(t, err)
				assert.Nil(t, f)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrInvalidArgument)
			})
		}
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid argument: grid must be non-empty", ErrEmptyGrid.Error())
	assert.Equal(t, "invalid argument: grid dimensions exceed 64x64", ErrGridTooLarge.Error())
	assert.Equal(t, "invalid argument: query stream must be non-optional", ErrNilQueries.Error())
}

func TestFind(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, build constructor) {
		t.Run("nil stream", func(t *testing.T) {
			f, err := build([]string{"TEST"})
			require.NoError(t, err)

			res, err := f.Find(nil)
			assert.ErrorIs(t, err, ErrNilQueries)
			assert.Nil(t, res)

			_, err = f.FindSeq(nil)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})

		t.Run("empty stream", func(t *testing.T) {
			f, err := build([]string{"TEST"})
			require.NoError(t, err)

			res, err := f.Find([]string{})
			require.NoError(t, err)
			assert.NotNil(t, res)
			assert.Empty(t, res)
		})

		t.Run("ranked by count", func(t *testing.T) {
			f, err := build([]string{"word1", "word2", "word3"})
			require.NoError(t, err)

			res, err := f.Find([]string{"word1", "word2", "word3", "word1", "word2", "word1"})
			require.NoError(t, err)
			assert.Equal(t, []string{"word1", "word2", "word3"}, res)
		})

		t.Run("no matches", func(t *testing.T) {
			f, err := build([]string{"word1", "word2", "word3"})
			require.NoError(t, err)

			res, err := f.Find([]string{"word4", "word5", "word6"})
			require.NoError(t, err)
			assert.Empty(t, res)
		})

		t.Run("capped at ten", func(t *testing.T) {
			grid := make([]string, 11)
			for i := range grid {
				grid[i] = fmt.Sprintf("word%02d", i)
			}
			f, err := build(grid)
			require.NoError(t, err)

			queries := append([]string{}, grid...)
			queries = append(queries, grid...)
			res, err := f.Find(queries)
			require.NoError(t, err)
			assert.Len(t, res, MaxResults)
		})

		t.Run("rows and columns", func(t *testing.T) {
			f, err := build([]string{"TEST", "ESTW", "STWO", "TWOR"})
			require.NoError(t, err)

			res, err := f.Find([]string{"TWOR", "TEST"})
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"TWOR", "TEST"}, res)
			assert.True(t, f.Contains("ESTW"))
		})

		t.Run("columns of a non-symmetric grid", func(t *testing.T) {
			f, err := build([]string{"CAT", "OWE", "WET"})
			require.NoError(t, err)

			res, err := f.Find([]string{"COW", "AWE", "TET", "CAT", "TAC", "CO"})
			require.NoError(t, err)
			assert.Equal(t, []string{"AWE", "CAT", "COW", "TET"}, res)
		})

		t.Run("strict prefix does not match", func(t *testing.T) {
			f, err := build([]string{"WORD", "OXOX", "RARA", "DADA"})
			require.NoError(t, err)

			res, err := f.Find([]string{"WOR", "W", "WO", "WORDS"})
			require.NoError(t, err)
			assert.Empty(t, res)
			assert.False(t, f.Contains("WOR"))
			assert.True(t, f.Contains("WORD"))
		})

		t.Run("counts kept", func(t *testing.T) {
			f, err := build([]string{"ab", "cd"})
			require.NoError(t, err)

			matches, err := f.FindMatches(slices.Values([]string{"ab", "bd", "ab", "zz", "ac"}))
			require.NoError(t, err)
			assert.Equal(t, []Match{{"ab", 2}, {"ac", 1}, {"bd", 1}}, matches)
		})

		t.Run("case sensitive by default", func(t *testing.T) {
			f, err := build([]string{"TEST"})
			require.NoError(t, err)

			res, err := f.Find([]string{"test", "Test"})
			require.NoError(t, err)
			assert.Empty(t, res)
		})

		t.Run("case insensitive folds both sides", func(t *testing.T) {
			f, err := build([]string{"TEST", "ABCD"}, WithCaseSensitive(false))
			require.NoError(t, err)

			res, err := f.Find([]string{"test", "TEST", "Test", "abcd", "ta"})
			require.NoError(t, err)
			assert.Equal(t, []string{"test", "abcd", "ta"}, res)
			assert.True(t, f.Contains("TeSt"))
		})
	})
}

func TestFindDoesNotLeakBetweenCalls(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, build constructor) {
		f, err := build([]string{"AB", "CD"})
		require.NoError(t, err)

		first, err := f.FindMatches(slices.Values([]string{"AB", "AB"}))
		require.NoError(t, err)
		second, err := f.FindMatches(slices.Values([]string{"AB"}))
		require.NoError(t, err)

		assert.Equal(t, []Match{{"AB", 2}}, first)
		assert.Equal(t, []Match{{"AB", 1}}, second)
	})
}

func TestFindConcurrent(t *testing.T) {
	grid := []string{"word1", "word2", "word3"}
	queries := []string{"word1", "word2", "word3", "word1", "word2", "word1"}

	forEachStrategy(t, func(t *testing.T, build constructor) {
		f, err := build(grid)
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make([][]string, 16)
		errs := make([]error, len(results))
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = f.Find(queries)
			}(i)
		}
		wg.Wait()

		for i := range results {
			require.NoError(t, errs[i])
			assert.Equal(t, []string{"word1", "word2", "word3"}, results[i])
		}
	})
}

func TestResultDoesNotAliasInput(t *testing.T) {
	grid := []string{"AB", "CD"}
	f, err := NewTrieFinder(grid)
	require.NoError(t, err)

	grid[0] = "ZZ"
	assert.True(t, f.Contains("AB"))
	assert.False(t, f.Contains("ZZ"))
}

func TestStats(t *testing.T) {
	grid := []string{"TEST", "ESTW", "STWO", "TWOR"}

	set, err := NewSetFinder(grid)
	require.NoError(t, err)
	stats := set.Stats()
	assert.Equal(t, 4, stats["rows"])
	assert.Equal(t, 4, stats["cols"])
	// symmetric grid: every column repeats a row
	assert.Equal(t, 4, stats["words"])
	assert.Equal(t, 1, stats["caseSensitive"])
	_, hasNodes := stats["nodes"]
	assert.False(t, hasNodes)

	trie, err := NewTrieFinder(grid, WithCaseSensitive(false))
	require.NoError(t, err)
	stats = trie.Stats()
	assert.Equal(t, 4, stats["words"])
	assert.Equal(t, 0, stats["caseSensitive"])
	assert.Greater(t, stats["nodes"], 4)

	patricia, err := NewPatriciaFinder(grid)
	require.NoError(t, err)
	assert.Equal(t, 4, patricia.Stats()["words"])
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"set", "TRIE", " patricia "} {
		s, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Contains(t, Strategies(), s)
	}

	_, err := ParseStrategy("hashmap")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	f, err := New(Strategy("bogus"), []string{"A"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, f)

	f, err = New(StrategySet, nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	assert.Nil(t, f)
}

func TestGridWords(t *testing.T) {
	words, err := GridWords([]string{"CAT", "OWE", "WET"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "OWE", "WET", "COW", "AWE", "TET"}, words)

	_, err = GridWords([]string{"AB", "C"})
	assert.ErrorIs(t, err, ErrRaggedGrid)
}
