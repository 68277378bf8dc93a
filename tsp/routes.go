package tsp

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvtour/geom"
)

// RoutesWithin lists every distinct closed tour through points whose length,
// rounded to 1e-9, is at most maxLength. Each cycle appears once, starting at
// Options.StartVertex in canonical orientation. The result is sorted by
// ascending length, ties broken lexicographically by tour.
//
// maxLength = +Inf lists all (n-1)!/2 cycles (one for n ≤ 2).
// Options.Workers is ignored.
//
// Errors:
//   - ErrInvalidArgument if maxLength is NaN or negative, or for bad Options
//     or an empty / non-finite point set.
//   - ErrStartOutOfRange, ErrTooManyPoints as for SolveBruteForce.
//
// Complexity: O((n-1)!·n) time; memory proportional to the number of matches.
func RoutesWithin(points []geom.Point, maxLength float64, opts Options) ([]Route, error) {
	if math.IsNaN(maxLength) || maxLength < 0 {
		return nil, fmt.Errorf("maxLength=%v: %w", maxLength, ErrInvalidArgument)
	}
	n, err := validateAll(points, opts)
	if err != nil {
		return nil, err
	}
	dist, err := geom.DistanceMatrix(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var (
		e   = newBruteEngine(dist, opts.StartVertex)
		out []Route
	)
	e.branch(nil, e.others, func(tour []int, c float64) {
		// Skip the mirrored enumeration of each cycle.
		if n >= 3 && tour[1] > tour[n-1] {
			return
		}
		if l := round1e9(c); l <= maxLength {
			out = append(out, Route{Tour: slices.Clone(tour), Length: l})
		}
	})

	slices.SortFunc(out, func(a, b Route) int {
		if c := cmp.Compare(a.Length, b.Length); c != 0 {
			return c
		}
		return slices.Compare(a.Tour, b.Tour)
	})

	return out, nil
}
