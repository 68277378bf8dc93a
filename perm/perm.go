package perm

import (
	"fmt"
	"iter"
	"math"
)

// Next rearranges p into its lexicographic successor and reports true.
// When p is already the last (non-increasing) ordering, Next reverses it back
// to the first (non-decreasing) ordering and reports false.
//
// Algorithm:
//  1. Find the rightmost ascent i with p[i] < p[i+1].
//  2. Find the rightmost j > i with p[j] > p[i] (the smallest larger element,
//     since the suffix is non-increasing) and swap p[i], p[j].
//  3. Reverse the suffix p[i+1:].
//
// Complexity: O(n) worst case, O(1) amortized over a full enumeration.
func Next(p []int) bool {
	var n = len(p)
	if n < 2 {
		return false
	}

	var i = n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		reverse(p)
		return false
	}

	var j = n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	reverse(p[i+1:])

	return true
}

// reverse flips s in place.
func reverse(s []int) {
	var i, k = 0, len(s) - 1
	for i < k {
		s[i], s[k] = s[k], s[i]
		i++
		k--
	}
}

// identity returns [0 1 … n-1].
func identity(n int) []int {
	var (
		p = make([]int, n)
		i int
	)
	for i = 0; i < n; i++ {
		p[i] = i
	}

	return p
}

// maxPrealloc caps the capacity hint of Permutations.
const maxPrealloc = 1 << 16

// Permutations returns all n! orderings of {0..n-1} in lexicographic order,
// starting with the identity. For n == 0 it returns a single empty ordering.
// Every returned slice is independent.
//
// Errors:
//   - ErrInvalidArgument if n < 0.
//
// Complexity: O(n!·n) time and memory. See the package doc for the limit.
func Permutations(n int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("permutations(%d): %w", n, ErrInvalidArgument)
	}

	// Preallocate up to maxPrealloc orderings; append grows past that.
	var size int
	if c, err := Count(n); err == nil {
		size = min(c, maxPrealloc)
	}
	out := make([][]int, 0, size)

	var cur = identity(n)
	for {
		out = append(out, append(make([]int, 0, n), cur...))
		if !Next(cur) {
			break
		}
	}

	return out, nil
}

// All returns a lazy sequence over the same orderings as Permutations.
//
// The yielded slice is a single buffer reused between iterations: copy it if
// it must outlive the loop body, and do not modify it. For n < 0 the sequence
// is empty; for n == 0 it yields one empty slice.
//
// Complexity: O(n) memory, O(n!) steps.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}
		var (
			cur  = identity(n)
			view = make([]int, n)
		)
		for {
			copy(view, cur)
			if !yield(view) {
				return
			}
			if !Next(cur) {
				return
			}
		}
	}
}

// Count returns n!.
//
// Errors:
//   - ErrInvalidArgument if n < 0.
//   - ErrOverflow if n! exceeds math.MaxInt.
//
// Complexity: O(n).
func Count(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("count(%d): %w", n, ErrInvalidArgument)
	}
	var (
		f = 1
		k int
	)
	for k = 2; k <= n; k++ {
		if f > math.MaxInt/k {
			return 0, fmt.Errorf("count(%d): %w", n, ErrOverflow)
		}
		f *= k
	}

	return f, nil
}

// Validate checks that p has length n and contains every value of {0..n-1}
// exactly once. The returned error wraps ErrNotPermutation and names the
// offending position.
//
// Complexity: O(n) time, O(n) space.
func Validate(p []int, n int) error {
	if len(p) != n {
		return fmt.Errorf("length %d, want %d: %w", len(p), n, ErrNotPermutation)
	}
	var (
		seen = make([]bool, n)
		i, v int
	)
	for i, v = range p {
		if v < 0 || v >= n {
			return fmt.Errorf("index %d at position %d out of range [0,%d): %w", v, i, n, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("index %d repeated at position %d: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}
