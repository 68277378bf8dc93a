// Package tsp — tour utilities shared by the evaluator and the solvers.
//
// These helpers operate purely on index sequences, never on coordinates:
//   - ValidateOrder: verify an open order is a permutation of {0..n-1}.
//   - MakeTourFromPermutation: close an order into a tour rotated to a start.
//   - ValidateTour: enforce closed Hamiltonian-cycle invariants.
//   - CanonicalizeOrientationInPlace: one direction per cycle.
//   - EqualToursModuloRotation: equality under rotation, same direction.
//   - DebugString: compact printable form.
//
// No panics on user input; failures are sentinels from types.go.
package tsp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtour/perm"
)

// ValidateOrder checks that order is a permutation of {0..n-1} of length n,
// n ≥ 1. The error wraps both ErrInvalidOrder and perm.ErrNotPermutation.
//
// Complexity: O(n) time, O(n) space.
func ValidateOrder(order []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: empty point set", ErrInvalidOrder)
	}
	if err := perm.Validate(order, n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour from an order.
// Steps:
//  1. Validate that order is a permutation of {0..n-1}.
//  2. Rotate so that start comes first.
//  3. Return a new slice of length n+1 closed with start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(order []int, n int, start int) ([]int, error) {
	if err := ValidateOrder(order, n); err != nil {
		return nil, err
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}

	var (
		i     int
		pivot int
	)
	for i = 0; i < n; i++ {
		if order[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = order[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ValidateTour enforces closed-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: tour length %d for n=%d", ErrInvalidOrder, len(tour), n)
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour %s not closed at %d", ErrInvalidOrder, DebugString(tour), start)
	}

	return ValidateOrder(tour[:n], n)
}

// CanonicalizeOrientationInPlace fixes the direction of a closed tour under a
// fixed start: if tour[1] > tour[n-1], the interior [1..n-1] is reversed.
// Both directions of one cycle therefore map to the same slice.
// Tours with n ≤ 2 have a single orientation and are left untouched.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 2 {
		return fmt.Errorf("%w: tour length %d", ErrInvalidOrder, len(tour))
	}
	var n = len(tour) - 1
	if tour[0] != tour[n] {
		return fmt.Errorf("%w: tour %s is not closed", ErrInvalidOrder, DebugString(tour))
	}
	if n < 3 {
		return nil
	}
	if tour[1] > tour[n-1] {
		reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k].
// Callers guarantee 1 ≤ i < k ≤ n-1 on a closed tour.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// EqualToursModuloRotation reports whether closed tours a and b visit the
// same cycle in the same direction from possibly different start vertices.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 || a[0] != a[len(a)-1] || b[0] != b[len(b)-1] {
		return false
	}
	ring := b[:len(b)-1]
	shift := slices.Index(ring, a[0])
	if shift < 0 {
		return false
	}
	for k, v := range a[:len(a)-1] {
		if ring[(shift+k)%len(ring)] != v {
			return false
		}
	}

	return true
}

// DebugString returns a compact printable form, e.g. "[0 3 1 2 | 0]" where
// the bar marks the closing vertex.
//
// Complexity: O(n).
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		b strings.Builder
		n = len(tour) - 1
		i int
	)
	b.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	if n > 0 {
		b.WriteByte(' ')
	}
	b.WriteString("| ")
	b.WriteString(strconv.Itoa(tour[n]))
	b.WriteByte(']')

	return b.String()
}
