// Package perm enumerates orderings of the index set {0..n-1}.
//
// Every generator in this package walks the same lexicographic sequence:
// start from the identity [0 1 … n-1] and repeatedly step to the next
// lexicographically greater ordering until the descending ordering is
// reached. The exact output order is part of the contract.
//
//   - Permutations — fully materialized [][]int of all n! orderings.
//   - All          — lazy iter.Seq over the same sequence, O(n) memory.
//   - Next         — the single in-place successor step used by both.
//   - Count        — n! with overflow detection.
//   - Validate     — check that a slice is a permutation of {0..n-1}.
//
// Scaling limit:
//
//	Permutations costs O(n!·n) time and memory. At n=10 that is 3.6M slices;
//	n=12 is already ~479M. Callers must bound n themselves: the generator does
//	not self-limit and cannot be interrupted once started. Prefer All when the
//	orderings are consumed one at a time.
package perm
