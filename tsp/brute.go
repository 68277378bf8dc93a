// Package tsp — exact brute-force search.
//
// SolveBruteForce fixes the start vertex s and enumerates every ordering of
// the remaining n-1 vertices with perm.All (lexicographic over the ascending
// list of non-start vertices). Each candidate closed tour
//
//	[s, others[p0], others[p1], …, s]
//
// is scored over a dense prefetch of the gonum distance matrix, and the
// strict minimum is kept. Because enumeration is lexicographic and the
// comparison is strict, ties resolve to the lexicographically first tour.
//
// Parallel mode (Options.Workers > 1, n ≥ 3):
//
//	The search splits on the second tour position: branch k fixes
//	tour[1] = others[k] and enumerates the rest. Branches run on an errgroup
//	limited to Workers goroutines; each keeps its own incumbent. Merging the
//	branches in k order with the same strict comparison reproduces the
//	sequential answer exactly.
//
// Post-processing runs through a pipeline.Pipeline[[]int]:
// canonical orientation → closed-tour validation.
//
// Complexity: O((n-1)!·n) time, O(n²) memory (prefetch), O(n) per worker.
package tsp

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/perm"
	"github.com/katalvlaran/lvtour/pipeline"
)

// bruteEngine holds the immutable search inputs shared by all branches.
type bruteEngine struct {
	n      int
	start  int
	w      []float64 // dense prefetch: w[u*n+v]
	others []int     // vertices ≠ start, ascending
}

// incumbent is the best tour found by one branch.
type incumbent struct {
	tour     []int
	cost     float64
	foundAny bool
}

// at is a fast accessor into the dense weight buffer.
func (e *bruteEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// newBruteEngine prefetches dist into a flat buffer and lists non-start vertices.
func newBruteEngine(dist mat.Symmetric, start int) *bruteEngine {
	var (
		n    = dist.SymmetricDim()
		e    = &bruteEngine{n: n, start: start}
		i, j int
	)
	e.w = make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			e.w[i*n+j] = dist.At(i, j)
		}
	}
	e.others = make([]int, 0, n-1)
	for i = 0; i < n; i++ {
		if i != start {
			e.others = append(e.others, i)
		}
	}

	return e
}

// cost scores a closed tour with compensated summation.
func (e *bruteEngine) cost(tour []int) float64 {
	var (
		acc neumaier
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		acc.add(e.at(tour[i], tour[i+1]))
	}

	return acc.value()
}

// branch enumerates every tour [start, fixed..., ordering(rest)..., start].
// visit receives a buffer that is reused between calls.
func (e *bruteEngine) branch(fixed, rest []int, visit func(tour []int, cost float64)) {
	var (
		cand = make([]int, e.n+1)
		off  = 1 + len(fixed)
		i    int
	)
	cand[0] = e.start
	cand[e.n] = e.start
	copy(cand[1:], fixed)

	for p := range perm.All(len(rest)) {
		for i = 0; i < len(p); i++ {
			cand[off+i] = rest[p[i]]
		}
		visit(cand, e.cost(cand))
	}
}

// searchBranch returns the strict-minimum tour of one branch.
func (e *bruteEngine) searchBranch(fixed, rest []int) incumbent {
	best := incumbent{tour: make([]int, e.n+1), cost: math.Inf(1)}
	e.branch(fixed, rest, func(tour []int, c float64) {
		if c < best.cost {
			copy(best.tour, tour)
			best.cost = c
			best.foundAny = true
		}
	})

	return best
}

// searchSequential runs the whole enumeration on the calling goroutine.
func (e *bruteEngine) searchSequential() incumbent {
	return e.searchBranch(nil, e.others)
}

// searchParallel splits on tour[1] and merges branch winners in order.
func (e *bruteEngine) searchParallel(workers int) (incumbent, error) {
	var (
		m       = len(e.others)
		results = make([]incumbent, m)
		eg      errgroup.Group
	)
	eg.SetLimit(workers)
	for k := 0; k < m; k++ {
		eg.Go(func() error {
			rest := make([]int, 0, m-1)
			rest = append(rest, e.others[:k]...)
			rest = append(rest, e.others[k+1:]...)
			results[k] = e.searchBranch([]int{e.others[k]}, rest)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return incumbent{}, err
	}

	best := incumbent{cost: math.Inf(1)}
	for k := 0; k < m; k++ {
		if results[k].cost < best.cost {
			best = results[k]
		}
	}

	return best, nil
}

// canonicalize is the first finishing step: one orientation per cycle.
func (e *bruteEngine) canonicalize(tour []int) ([]int, error) {
	if err := CanonicalizeOrientationInPlace(tour); err != nil {
		return nil, err
	}

	return tour, nil
}

// validate is the last finishing step: closed-cycle invariants.
func (e *bruteEngine) validate(tour []int) ([]int, error) {
	if err := ValidateTour(tour, e.n, e.start); err != nil {
		return nil, err
	}

	return tour, nil
}

// finisher assembles the post-processing pipeline.
func (e *bruteEngine) finisher() *pipeline.Pipeline[[]int] {
	return pipeline.New[[]int](e.canonicalize, e.validate)
}

// SolveBruteForce returns the exact shortest closed tour through points.
//
// Errors:
//   - ErrInvalidArgument for bad Options or an empty / non-finite point set.
//   - ErrStartOutOfRange if Options.StartVertex ∉ [0..n-1].
//   - ErrTooManyPoints if n > Options.MaxPoints.
func SolveBruteForce(points []geom.Point, opts Options) (TSResult, error) {
	n, err := validateAll(points, opts)
	if err != nil {
		return TSResult{}, err
	}
	dist, err := geom.DistanceMatrix(points)
	if err != nil {
		return TSResult{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	e := newBruteEngine(dist, opts.StartVertex)

	var best incumbent
	if opts.Workers > 1 && n >= 3 {
		if best, err = e.searchParallel(opts.Workers); err != nil {
			return TSResult{}, err
		}
	} else {
		best = e.searchSequential()
	}
	if !best.foundAny {
		// Only reachable when every tour length overflows to +Inf.
		return TSResult{}, fmt.Errorf("%w: no tour of finite length", ErrInvalidArgument)
	}

	tour, err := e.finisher().Execute(best.tour)
	if err != nil {
		return TSResult{}, err
	}
	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: round1e9(cost)}, nil
}
