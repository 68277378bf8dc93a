// Package tsp_test validates tour utilities in lvtour/tsp.
// Contract: strict sentinels, deterministic outcomes, table-driven structure.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/lvtour/perm"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/stretchr/testify/require"
)

func TestValidateOrder(t *testing.T) {
	require.NoError(t, tsp.ValidateOrder([]int{2, 0, 1}, 3))

	err := tsp.ValidateOrder([]int{0, 0, 1}, 3)
	require.ErrorIs(t, err, tsp.ErrInvalidOrder)
	require.ErrorIs(t, err, perm.ErrNotPermutation)

	require.ErrorIs(t, tsp.ValidateOrder(nil, 0), tsp.ErrInvalidOrder)
}

func TestValidateTour(t *testing.T) {
	const n, start = 4, 0

	require.NoError(t, tsp.ValidateTour([]int{0, 2, 1, 3, 0}, n, start))

	cases := map[string][]int{
		"length != n+1":   {0, 1, 2, 0},
		"not closed":      {0, 1, 2, 3, 1},
		"wrong start":     {1, 0, 2, 3, 1},
		"duplicates":      {0, 1, 1, 3, 0},
		"out-of-range":    {0, 1, 2, 9, 0},
		"negative vertex": {0, -1, 2, 3, 0},
	}
	for name, tour := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tsp.ValidateTour(tour, n, start), tsp.ErrInvalidOrder)
		})
	}

	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 3, 0}, n, 7), tsp.ErrStartOutOfRange)
}

func TestMakeTourFromPermutation(t *testing.T) {
	tour, err := tsp.MakeTourFromPermutation([]int{2, 3, 0, 1}, 4, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, tour)

	tour, err = tsp.MakeTourFromPermutation([]int{2, 3, 0, 1}, 4, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 0, 1, 2, 3}, tour)

	_, err = tsp.MakeTourFromPermutation([]int{0, 1, 1, 3}, 4, 0)
	require.ErrorIs(t, err, tsp.ErrInvalidOrder)

	_, err = tsp.MakeTourFromPermutation([]int{0, 1, 2, 3}, 4, 4)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestCanonicalizeOrientationInPlace(t *testing.T) {
	tour := []int{0, 3, 2, 1, 0}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(tour))
	require.Equal(t, []int{0, 1, 2, 3, 0}, tour)

	already := []int{0, 1, 3, 2, 0}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(already))
	require.Equal(t, []int{0, 1, 3, 2, 0}, already)

	short := []int{1, 0, 1}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(short))
	require.Equal(t, []int{1, 0, 1}, short)

	single := []int{0, 0}
	require.NoError(t, tsp.CanonicalizeOrientationInPlace(single))

	require.ErrorIs(t, tsp.CanonicalizeOrientationInPlace([]int{0}), tsp.ErrInvalidOrder)
	require.ErrorIs(t, tsp.CanonicalizeOrientationInPlace([]int{0, 1, 2, 3}), tsp.ErrInvalidOrder)
}

func TestCanonicalize_MirrorsCollapse(t *testing.T) {
	// Every ordering and its reversal map to the same canonical tour.
	all, err := perm.Permutations(5)
	require.NoError(t, err)
	for _, order := range all {
		a, err := tsp.MakeTourFromPermutation(order, 5, 0)
		require.NoError(t, err)
		b, err := tsp.MakeTourFromPermutation(reversed(order), 5, 0)
		require.NoError(t, err)

		require.NoError(t, tsp.CanonicalizeOrientationInPlace(a))
		require.NoError(t, tsp.CanonicalizeOrientationInPlace(b))
		require.Equal(t, a, b)
	}
}

func TestEqualToursModuloRotation(t *testing.T) {
	require.True(t, tsp.EqualToursModuloRotation([]int{0, 1, 2, 3, 0}, []int{2, 3, 0, 1, 2}))
	require.False(t, tsp.EqualToursModuloRotation([]int{0, 1, 2, 3, 0}, []int{0, 3, 2, 1, 0}), "opposite direction")
	require.False(t, tsp.EqualToursModuloRotation([]int{0, 1, 2, 0}, []int{0, 1, 2, 3, 0}))
	require.False(t, tsp.EqualToursModuloRotation([]int{0, 1, 2, 0}, []int{3, 4, 5, 3}))
	require.False(t, tsp.EqualToursModuloRotation([]int{0, 1, 2, 1}, []int{0, 1, 2, 0}))
	require.False(t, tsp.EqualToursModuloRotation([]int{0, 1, 2, 0}, []int{0, 1, 2, 1}))
	require.True(t, tsp.EqualToursModuloRotation([]int{4, 4}, []int{4, 4}))
}

func TestDebugString(t *testing.T) {
	require.Equal(t, "[0 3 1 2 | 0]", tsp.DebugString([]int{0, 3, 1, 2, 0}))
	require.Equal(t, "[]", tsp.DebugString(nil))
	require.Equal(t, "[4 | 4]", tsp.DebugString([]int{4, 4}))
}
