// Package geom provides the planar primitives shared by the tour code:
// a Point value, the Euclidean distance between two points, and a dense
// symmetric distance matrix built on gonum/mat.
//
// Distance has no error conditions: coincident points are at distance 0,
// and the function never special-cases them. Coordinate validation lives
// in Validate, which callers run once per point set (not once per edge).
package geom
