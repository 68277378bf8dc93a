// Package tsp_test provides small helpers shared across *_test.go files.
package tsp_test

import (
	"math/rand"

	"github.com/katalvlaran/lvtour/geom"
)

const (
	// epsTiny is the tolerance for comparing lengths summed in different orders.
	epsTiny = 1e-9

	// seedDet is the fixed seed for pseudo-random instances.
	seedDet = int64(42)
)

// unitSquare is the 4-point square; optimal tour [0 1 2 3 | 0], cost 4.
func unitSquare() []geom.Point {
	return []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)}
}

// triangle345 is the right triangle with perimeter 12.
func triangle345() []geom.Point {
	return []geom.Point{geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 4)}
}

// randomPoints returns n deterministic points in [0,100)².
func randomPoints(n int, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(r.Float64()*100, r.Float64()*100)
	}
	return pts
}

// rotate returns order shifted left by k positions.
func rotate(order []int, k int) []int {
	n := len(order)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = order[(i+k)%n]
	}
	return out
}

// reversed returns a reversed copy of order.
func reversed(order []int) []int {
	n := len(order)
	out := make([]int, n)
	for i, v := range order {
		out[n-1-i] = v
	}
	return out
}
