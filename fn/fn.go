// Package fn holds generic slice helpers: Map, Filter, Reduce, Sum.
//
// Helpers are eager, allocate at most one result slice, and never mutate
// their input.
package fn

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map returns f applied to every element of in, in order.
// A nil input yields an empty, non-nil result.
//
// Complexity: O(n).
func Map[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}

	return out
}

// Filter returns the elements of in for which keep reports true, in order.
//
// Complexity: O(n).
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// Reduce folds in from the left, starting with init.
//
// Complexity: O(n).
func Reduce[T, A any](in []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range in {
		acc = f(acc, v)
	}

	return acc
}

// Sum adds the elements of in. The empty sum is 0.
// Integer overflow wraps as in plain Go arithmetic.
//
// Complexity: O(n).
func Sum[N Number](in []N) N {
	var s N
	for _, v := range in {
		s += v
	}

	return s
}
