package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Distance returns the Euclidean distance sqrt((x1−x2)² + (y1−y2)²).
// Computed via math.Hypot, so intermediate squares never overflow.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Validate checks that points is non-empty and that every coordinate is finite.
// The returned error wraps ErrEmpty or ErrNonFinite.
//
// Complexity: O(n).
func Validate(points []Point) error {
	if len(points) == 0 {
		return ErrEmpty
	}
	var (
		i int
		p Point
	)
	for i, p = range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("point %d (%v, %v): %w", i, p.X, p.Y, ErrNonFinite)
		}
	}

	return nil
}

// DistanceMatrix builds the n×n symmetric matrix of pairwise distances.
// The diagonal is exactly zero. Points are validated first.
//
// Complexity: O(n²) time, O(n²) memory (gonum stores the full square).
func DistanceMatrix(points []Point) (*mat.SymDense, error) {
	if err := Validate(points); err != nil {
		return nil, err
	}
	var (
		n    = len(points)
		d    = mat.NewSymDense(n, nil)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, Distance(points[i], points[j]))
		}
	}

	return d, nil
}
