package evolve

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Fitness scores a candidate; higher is better. It is called concurrently.
type Fitness func(ctx context.Context, c Candidate) (float64, error)

// Scored is a candidate with its fitness.
type Scored struct {
	Candidate Candidate
	Score     float64
}

// Rank evaluates fitness for every candidate with at most limit calls in
// flight (no limit when limit <= 0) and returns them best first. Ties keep
// their input order. The first fitness error cancels the rest.
func Rank(ctx context.Context, candidates []Candidate, fitness Fitness, limit int) ([]Scored, error) {
	scored := make([]Scored, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, c := range candidates {
		g.Go(func() error {
			score, err := fitness(gCtx, c)
			if err != nil {
				return &Error{Message: fmt.Sprintf("fitness of %s", c.Name), Cause: err}
			}
			// Each goroutine owns one index.
			scored[i] = Scored{Candidate: c, Score: score}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// Candidates strips the scores, keeping order.
func Candidates(scored []Scored) []Candidate {
	out := make([]Candidate, len(scored))
	for i, s := range scored {
		out[i] = s.Candidate
	}
	return out
}

// Run ranks population, then alternates Next and Rank for the given number
// of generations. report, when non-nil, sees every ranked generation. The
// final ranking is returned.
func (e *Evolver) Run(ctx context.Context, population []Candidate, fitness Fitness, generations, limit int, report func([]Scored)) ([]Scored, error) {
	ranked, err := Rank(ctx, population, fitness, limit)
	if err != nil {
		return nil, err
	}
	if report != nil {
		report(ranked)
	}

	for gen := 0; gen < generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := e.Next(Candidates(ranked))
		if err != nil {
			return nil, err
		}
		ranked, err = Rank(ctx, next, fitness, limit)
		if err != nil {
			return nil, err
		}
		if report != nil {
			report(ranked)
		}
	}
	return ranked, nil
}
