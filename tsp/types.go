package tsp

import "errors"

var (
	// ErrInvalidArgument reports a malformed size, threshold, or Options field.
	ErrInvalidArgument = errors.New("tsp: invalid argument")

	// ErrInvalidOrder reports an order or tour that is not a valid permutation
	// of the point indices (wrong length, duplicate, out-of-range index).
	ErrInvalidOrder = errors.New("tsp: invalid tour order")

	// ErrStartOutOfRange reports Options.StartVertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrTooManyPoints reports an instance larger than Options.MaxPoints.
	ErrTooManyPoints = errors.New("tsp: too many points for brute force")
)

// DefaultMaxPoints bounds brute-force instances: 9! = 362880 candidate tours.
const DefaultMaxPoints = 10

// TSResult holds the outcome of a solver.
type TSResult struct {
	// Tour is the closed cycle: len(Tour) == n+1, Tour[0] == Tour[n] == start,
	// in canonical orientation (Tour[1] < Tour[n-1] when n ≥ 3).
	Tour []int

	// Cost is the total Euclidean length, rounded to 1e-9.
	Cost float64
}

// Route is one tour reported by RoutesWithin.
type Route struct {
	Tour   []int   // closed, canonical orientation
	Length float64 // rounded to 1e-9
}

// Options configures the brute-force solvers.
type Options struct {
	// StartVertex fixes tour[0] and tour[n]. Must lie in [0..n-1].
	StartVertex int

	// MaxPoints is the largest accepted instance. Must be ≥ 1.
	MaxPoints int

	// Workers is the number of concurrent search goroutines for SolveBruteForce.
	// 0 or 1 runs sequentially; negative values are rejected.
	Workers int
}

// DefaultOptions returns start 0, DefaultMaxPoints, sequential search.
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		MaxPoints:   DefaultMaxPoints,
		Workers:     1,
	}
}
