// Package tsp — tour length and cost accumulation.
//
// Two entry points share one summation policy:
//   - TourLength sums Euclidean edges of an open order over raw points and
//     closes the loop back to order[0].
//   - TourCost sums the edges of an already-closed tour over a precomputed
//     gonum symmetric distance matrix.
//
// Both collect their edges and sum them with floats.SumCompensated (Neumaier),
// so the result does not drift with the number of edges or the magnitude
// spread between short and long edges. A sum that overflows is reported as
// +Inf, never NaN. Solver results are additionally rounded to 1e-9
// (round1e9); values too large to scale are returned unchanged.
package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvtour/geom"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// roundLimit is the largest magnitude round1e9 can scale without overflow.
const roundLimit = math.MaxFloat64 / roundScale

// TourLength returns the length of the closed tour visiting points in order:
// the sum of geom.Distance over consecutive pairs plus the edge from the last
// point back to the first. A single point yields 0.
//
// Errors:
//   - ErrInvalidOrder if points is empty, len(order) != len(points), or order
//     repeats or omits an index.
//
// Complexity: O(n).
func TourLength(points []geom.Point, order []int) (float64, error) {
	var n = len(points)
	if err := ValidateOrder(order, n); err != nil {
		return 0, err
	}

	var (
		edges = make([]float64, n)
		i     int
	)
	for i = 0; i+1 < n; i++ {
		edges[i] = geom.Distance(points[order[i]], points[order[i+1]])
	}
	edges[n-1] = geom.Distance(points[order[n-1]], points[order[0]])

	return sumEdges(edges), nil
}

// TourCost sums dist over the edges tour[i]→tour[i+1] of a closed tour.
//
// Contract:
//   - dist is n×n symmetric (see geom.DistanceMatrix).
//   - tour is closed (len ≥ 2, tour[0]==tour[len-1]) with indices in [0..n-1].
//
// Only shape and index range are checked here; full permutation validity is
// ValidateTour's job.
//
// Complexity: O(len(tour)).
func TourCost(dist mat.Symmetric, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, fmt.Errorf("%w: tour length %d", ErrInvalidOrder, len(tour))
	}
	if tour[0] != tour[len(tour)-1] {
		return 0, fmt.Errorf("%w: tour %s is not closed", ErrInvalidOrder, DebugString(tour))
	}

	var (
		n     = dist.SymmetricDim()
		L     = len(tour) - 1
		edges = make([]float64, L)
		i     int
		u     int
		v     int
	)
	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: edge %d→%d outside [0,%d)", ErrInvalidOrder, u, v, n)
		}
		edges[i] = dist.At(u, v)
	}

	return sumEdges(edges), nil
}

// sumEdges is the compensated total of non-negative edge weights.
// floats.SumCompensated turns an overflow into NaN, so the plain sum decides
// first whether the total is finite at all.
func sumEdges(edges []float64) float64 {
	if s := floats.Sum(edges); math.IsInf(s, 0) {
		return s
	}

	return floats.SumCompensated(edges)
}

// neumaier is the streaming form of sumEdges for the solver's inner loop,
// where collecting a slice per candidate tour would allocate.
type neumaier struct {
	sum float64
	c   float64
}

// add accumulates x, capturing the low-order bits lost by sum+x in c.
// Once the sum overflows it stays infinite and the correction is dropped.
func (s *neumaier) add(x float64) {
	t := s.sum + x
	if math.IsInf(t, 0) {
		s.sum, s.c = t, 0
		return
	}
	if math.Abs(s.sum) >= math.Abs(x) {
		s.c += (s.sum - t) + x
	} else {
		s.c += (x - t) + s.sum
	}
	s.sum = t
}

// value returns the compensated total.
func (s *neumaier) value() float64 {
	if math.IsInf(s.sum, 0) {
		return s.sum
	}

	return s.sum + s.c
}

// round1e9 returns x rounded to 1e-9 absolute precision. Magnitudes above
// roundLimit, infinities and NaN are returned unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if !(math.Abs(x) <= roundLimit) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
