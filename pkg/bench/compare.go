package bench

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/bastiangx/wordfinder/pkg/finder"
	"golang.org/x/sync/errgroup"
)

// Result is one strategy's timings and answer.
type Result struct {
	Strategy finder.Strategy
	Build    time.Duration
	Find     time.Duration
	Matches  []finder.Match
	Stats    map[string]int
}

// Report collects every strategy's Result. Agree is true when all returned the same ranking.
type Report struct {
	Seed    uint64
	Queries int
	Results []Result
	Agree   bool
}

// Compare builds and queries every strategy concurrently over the same input.
// The first failure cancels the strategies that have not started yet.
func Compare(ctx context.Context, grid, queries []string, strategies []finder.Strategy, opts ...finder.Option) (*Report, error) {
	if len(strategies) == 0 {
		strategies = finder.Strategies()
	}

	results := make([]Result, len(strategies))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := run(s, grid, queries, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Queries: len(queries), Results: results, Agree: true}
	for _, r := range results[1:] {
		if !slices.Equal(results[0].Matches, r.Matches) {
			report.Agree = false
		}
	}
	return report, nil
}

func run(s finder.Strategy, grid, queries []string, opts []finder.Option) (Result, error) {
	start := time.Now()
	f, err := finder.New(s, grid, opts...)
	if err != nil {
		return Result{}, err
	}
	built := time.Since(start)

	// a nil slice stays an absent stream
	var seq iter.Seq[string]
	if queries != nil {
		seq = slices.Values(queries)
	}

	start = time.Now()
	matches, err := f.FindMatches(seq)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Strategy: s,
		Build:    built,
		Find:     time.Since(start),
		Matches:  matches,
		Stats:    f.Stats(),
	}, nil
}

// Run generates a grid and stream from p and compares the strategies on them.
func Run(ctx context.Context, p Params, strategies []finder.Strategy, opts ...finder.Option) (*Report, error) {
	rng, seed := NewRand(p.Seed)
	grid := GenerateGrid(rng, p.Rows, p.Cols)
	queries, err := SampleStream(rng, grid, p.StreamSize, p.MinWordLen, p.MaxWordLen, p.HitRatio)
	if err != nil {
		return nil, err
	}
	report, err := Compare(ctx, grid, queries, strategies, opts...)
	if err != nil {
		return nil, err
	}
	report.Seed = seed
	return report, nil
}
