package tsp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/memo"
)

// Evaluator answers repeated TourLength queries over one fixed point set.
//
// Every order is first reduced to its canonical cycle (rotated to vertex 0,
// canonical orientation). The canonical index list is the memo key, so all
// rotations and reversals of a tour share one cache entry and the length is
// computed once per distinct cycle. Returned values are TourLength of the
// canonical order.
//
// The cache is unbounded (see package memo). Evaluators built with
// NewEvaluator are for one goroutine; NewSyncEvaluator is safe for many.
type Evaluator struct {
	points []geom.Point
	cache  memo.Cache[float64]
}

// NewEvaluator returns an Evaluator backed by a plain memo.Memoizer.
// Points are copied; they must be non-empty and finite.
func NewEvaluator(points []geom.Point) (*Evaluator, error) {
	return newEvaluator(points, false)
}

// NewSyncEvaluator returns an Evaluator backed by memo.Sync.
func NewSyncEvaluator(points []geom.Point) (*Evaluator, error) {
	return newEvaluator(points, true)
}

func newEvaluator(points []geom.Point, concurrent bool) (*Evaluator, error) {
	if err := geom.Validate(points); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	e := &Evaluator{points: append([]geom.Point(nil), points...)}
	if concurrent {
		e.cache = memo.NewSync[float64](e.lengthOfKey)
	} else {
		e.cache = memo.New[float64](e.lengthOfKey)
	}

	return e, nil
}

// Length returns the closed-tour length of order.
//
// Errors:
//   - ErrInvalidOrder if order is not a permutation of the point indices.
func (e *Evaluator) Length(order []int) (float64, error) {
	var n = len(e.points)
	tour, err := MakeTourFromPermutation(order, n, 0)
	if err != nil {
		return 0, err
	}
	if err = CanonicalizeOrientationInPlace(tour); err != nil {
		return 0, err
	}

	return e.cache.Call(encodeOrder(tour[:n]))
}

// CacheSize reports the number of distinct cycles measured so far.
func (e *Evaluator) CacheSize() int { return e.cache.Size() }

// Reset empties the cache.
func (e *Evaluator) Reset() { e.cache.Clear() }

// lengthOfKey is the memoized function: decode the key and measure it.
func (e *Evaluator) lengthOfKey(key string) (float64, error) {
	order, err := decodeOrder(key)
	if err != nil {
		return 0, err
	}

	return TourLength(e.points, order)
}

// encodeOrder renders an order as "i0,i1,…".
func encodeOrder(order []int) string {
	var b = make([]byte, 0, len(order)*3)
	for i, v := range order {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}

	return string(b)
}

// decodeOrder parses the output of encodeOrder.
func decodeOrder(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidOrder)
	}
	var (
		parts = strings.Split(key, ",")
		order = make([]int, len(parts))
		err   error
	)
	for i, s := range parts {
		if order[i], err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidOrder, key, err)
		}
	}

	return order, nil
}
