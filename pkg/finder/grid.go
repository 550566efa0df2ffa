package finder

import "unicode/utf8"

// layout is a validated grid: its dimensions and every row then column word.
type layout struct {
	rows  int
	cols  int
	words []string
}

// readGrid checks the grid bounds and derives the column words.
// Width is measured in runes so multi-byte letters count once.
func readGrid(grid []string) (layout, error) {
	if len(grid) == 0 {
		return layout{}, ErrEmptyGrid
	}
	cols := utf8.RuneCountInString(grid[0])
	if len(grid) > MaxRows {
		return layout{}, ErrGridTooLarge
	}

	cells := make([][]rune, len(grid))
	for i, row := range grid {
		r := []rune(row)
		if len(r) > MaxCols {
			return layout{}, ErrGridTooLarge
		}
		if len(r) != cols {
			return layout{}, ErrRaggedGrid
		}
		cells[i] = r
	}
	// every row is zero width
	if cols == 0 {
		return layout{}, ErrEmptyGrid
	}

	words := make([]string, 0, len(grid)+cols)
	words = append(words, grid...)
	column := make([]rune, len(grid))
	for j := 0; j < cols; j++ {
		for i := range cells {
			column[i] = cells[i][j]
		}
		words = append(words, string(column))
	}

	return layout{rows: len(grid), cols: cols, words: words}, nil
}

// GridWords validates grid like the finders do and returns its row words followed
// by its column words, duplicates included.
func GridWords(grid []string) ([]string, error) {
	g, err := readGrid(grid)
	if err != nil {
		return nil, err
	}
	return g.words, nil
}
