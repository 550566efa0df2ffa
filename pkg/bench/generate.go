// Package bench generates random grids and query streams and races the finder
// strategies against each other on them.
package bench

import (
	"math/rand/v2"

	"github.com/bastiangx/wordfinder/pkg/finder"
)

// Params shapes one generated run.
type Params struct {
	Rows       int
	Cols       int
	StreamSize int
	MinWordLen int
	MaxWordLen int
	// HitRatio is the share of the stream drawn from real row and column words.
	HitRatio float64
	// Seed makes a run reproducible. Zero picks a random seed.
	Seed uint64
}

// NewRand returns a generator for seed, or a randomly seeded one for zero.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

func randomWord(rng *rand.Rand, length int) string {
	word := make([]byte, length)
	for i := range word {
		word[i] = byte('A' + rng.IntN(26))
	}
	return string(word)
}

// GenerateGrid returns rows strings of cols random upper-case letters.
func GenerateGrid(rng *rand.Rand, rows, cols int) []string {
	grid := make([]string, rows)
	for i := range grid {
		grid[i] = randomWord(rng, cols)
	}
	return grid
}

// GenerateStream returns count random upper-case words with lengths in [minLen, maxLen].
func GenerateStream(rng *rand.Rand, count, minLen, maxLen int) []string {
	maxLen = max(maxLen, minLen)
	stream := make([]string, count)
	for i := range stream {
		stream[i] = randomWord(rng, minLen+rng.IntN(maxLen-minLen+1))
	}
	return stream
}

// SampleStream is GenerateStream where each word is replaced, with probability
// hitRatio, by a row or column of grid.
func SampleStream(rng *rand.Rand, grid []string, count, minLen, maxLen int, hitRatio float64) ([]string, error) {
	words, err := finder.GridWords(grid)
	if err != nil {
		return nil, err
	}
	stream := GenerateStream(rng, count, minLen, maxLen)
	for i := range stream {
		if rng.Float64() < hitRatio {
			stream[i] = words[rng.IntN(len(words))]
		}
	}
	return stream, nil
}
