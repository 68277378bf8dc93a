package perm

import "errors"

var (
	// ErrInvalidArgument is returned for a negative size parameter.
	ErrInvalidArgument = errors.New("perm: invalid argument")

	// ErrOverflow is returned by Count when n! does not fit in an int.
	ErrOverflow = errors.New("perm: factorial overflows int")

	// ErrNotPermutation is returned by Validate for a wrong length,
	// a duplicate, or an out-of-range element.
	ErrNotPermutation = errors.New("perm: not a permutation")
)
