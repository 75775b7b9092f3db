package match

import (
	"cmp"
	"slices"
	"sync"

	domain "github.com/donaldgifford/carmatch/pkg/types"
)

const (
	// DefaultLimit is the number of results a ranked search returns.
	DefaultLimit = 10

	// parallelThreshold is the candidate count below which scoring stays
	// on the calling goroutine.
	parallelThreshold = 256
)

// Ranker applies a Scorer over a candidate set and produces an ordered,
// bounded result list.
type Ranker struct {
	scorer  *Scorer
	limit   int
	workers int
	explain bool
}

// RankerOption configures the Ranker.
type RankerOption func(*Ranker)

// WithLimit sets the maximum number of ranked results. Values <= 0 keep the default.
func WithLimit(n int) RankerOption {
	return func(r *Ranker) {
		if n > 0 {
			r.limit = n
		}
	}
}

// WithWorkers sets how many goroutines score large candidate sets.
// 1 (the default) scores sequentially.
func WithWorkers(n int) RankerOption {
	return func(r *Ranker) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithExplain attaches a per-criterion breakdown to every ranked result.
func WithExplain(explain bool) RankerOption {
	return func(r *Ranker) {
		r.explain = explain
	}
}

// NewRanker creates a Ranker around s. A nil scorer uses DefaultScorer.
func NewRanker(s *Scorer, opts ...RankerOption) *Ranker {
	if s == nil {
		s = DefaultScorer()
	}
	r := &Ranker{
		scorer:  s,
		limit:   DefaultLimit,
		workers: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Limit returns the configured result bound.
func (r *Ranker) Limit() int {
	return r.limit
}

// Rank scores every car against c, drops zero matches when any criterion is
// present, sorts by match percentage (highest first, input order breaking
// ties), and truncates to the configured limit.
func (r *Ranker) Rank(cars []domain.Car, c *Criteria) []domain.ScoredCar {
	return r.rank(cars, c, r.explain)
}

// RankExplained is Rank with a per-criterion breakdown on every result,
// regardless of the WithExplain option.
func (r *Ranker) RankExplained(cars []domain.Car, c *Criteria) []domain.ScoredCar {
	return r.rank(cars, c, true)
}

func (r *Ranker) rank(cars []domain.Car, c *Criteria, explain bool) []domain.ScoredCar {
	if c == nil {
		c = &Criteria{}
	}

	scored := r.scoreAll(cars, c, explain)

	if !c.IsEmpty() {
		scored = slices.DeleteFunc(scored, func(sc domain.ScoredCar) bool {
			return sc.MatchPercentage == 0
		})
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredCar) int {
		return cmp.Compare(b.MatchPercentage, a.MatchPercentage)
	})

	if len(scored) > r.limit {
		scored = scored[:r.limit]
	}

	return scored
}

// All returns every car unscored, unfiltered, and in input order. It backs
// the "get all cars" mode of the search endpoint.
func (*Ranker) All(cars []domain.Car) []domain.Car {
	out := make([]domain.Car, len(cars))
	copy(out, cars)
	return out
}

// scoreAll fills a result slice indexed like cars, so the output order does
// not depend on how the work is split between goroutines.
func (r *Ranker) scoreAll(cars []domain.Car, c *Criteria, explain bool) []domain.ScoredCar {
	out := make([]domain.ScoredCar, len(cars))

	scoreRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i].Car = cars[i]
			if explain {
				out[i].MatchPercentage, out[i].Breakdown = r.scorer.Explain(&cars[i], c)
			} else {
				out[i].MatchPercentage = r.scorer.Score(&cars[i], c)
			}
		}
	}

	if r.workers <= 1 || len(cars) < parallelThreshold {
		scoreRange(0, len(cars))
		return out
	}

	chunk := (len(cars) + r.workers - 1) / r.workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(cars); lo += chunk {
		hi := min(lo+chunk, len(cars))
		wg.Go(func() { scoreRange(lo, hi) })
	}
	wg.Wait()

	return out
}
