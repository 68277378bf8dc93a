// Package lvtour is a small exact-TSP and functional-utility toolkit:
// measure tours over 2-D points, enumerate every visiting order of a small
// instance, and reuse computations with memoization and step pipelines.
//
// What is inside?
//
//	geom/     — Point, Euclidean distance, gonum distance matrices
//	perm/     — lexicographic permutation generator (materialized and lazy)
//	tsp/      — tour evaluator, tour utilities, brute-force exact solver,
//	            bounded route listing, memoized evaluator
//	pipeline/ — ordered composition of unary steps
//	memo/     — string-keyed memoizer (plain and synchronized)
//	fn/       — generic Map / Filter / Reduce / Sum
//	tourplot/ — render a tour with gonum/plot
//
// Quick example (square, optimal closed tour = 4):
//
//	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
//	res, err := tsp.SolveBruteForce(pts, tsp.DefaultOptions())
//	// res.Tour == [0 1 2 3 0], res.Cost == 4
//
// Scaling: brute force visits (n-1)! candidate tours. Keep n small
// (tsp.DefaultOptions caps it at 10).
//
//	go get github.com/katalvlaran/lvtour
package lvtour
