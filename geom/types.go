package geom

import "errors"

var (
	// ErrEmpty is returned when an operation requires at least one point.
	ErrEmpty = errors.New("geom: empty point set")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geom: non-finite coordinate")
)

// Point is an immutable pair of planar coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }
