// Package tsp measures and exhaustively solves small Euclidean TSP instances.
//
// Building blocks:
//
//   - TourLength — closed-tour length of an order over a point set
//     (consecutive edges + closing edge), with explicit order validation.
//   - TourCost   — same sum for a closed tour over a gonum distance matrix.
//   - Tour utilities (tour.go) — validation, closing a permutation into a
//     tour, canonical orientation, rotation-aware equality.
//
// Solvers (exact, brute force):
//
//   - SolveBruteForce — fixes Options.StartVertex and walks every ordering of
//     the remaining n-1 points with perm.All, keeping the strict minimum.
//     Options.Workers > 1 fans the search out over the second tour position
//     with errgroup; the answer is identical to the sequential one.
//   - RoutesWithin    — every distinct cycle no longer than a threshold,
//     sorted by length.
//   - Evaluator       — TourLength behind a memo cache keyed by the canonical
//     cycle, so rotations and reversals of one tour share an entry.
//
// Conventions:
//
//	An order is a permutation of {0..n-1} (len n). A tour is closed:
//	len n+1, tour[0] == tour[n] == start. Solver costs are rounded to 1e-9.
//
// Scaling:
//
//	Brute force visits (n-1)! tours, O(n) each. Options.MaxPoints (default 10,
//	i.e. 362880 tours) rejects larger instances with ErrTooManyPoints.
//	Heuristics (nearest neighbour, 2-opt, annealing…) are out of scope.
//
// Errors are package sentinels; match them with errors.Is.
package tsp
