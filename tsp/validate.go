// Package tsp - validation shared by the solvers.
//
// Stages run in a fixed order so the first reported sentinel is stable:
// options → points → start vertex → instance size.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtour/geom"
)

// validateAll verifies Options and the point set. It returns n on success.
//
// Complexity: O(n).
func validateAll(points []geom.Point, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	if err := geom.Validate(points); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var n = len(points)
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}
	if n > opts.MaxPoints {
		return 0, fmt.Errorf("%d points, limit %d: %w", n, opts.MaxPoints, ErrTooManyPoints)
	}

	return n, nil
}

// validateOptions checks Options without reference to any instance.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxPoints < 1 {
		return fmt.Errorf("MaxPoints=%d: %w", opts.MaxPoints, ErrInvalidArgument)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("Workers=%d: %w", opts.Workers, ErrInvalidArgument)
	}

	return nil
}

// validateStartVertex verifies that start∈[0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start %d, n %d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}
