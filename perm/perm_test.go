package perm_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/katalvlaran/lvtour/perm"
	"github.com/stretchr/testify/require"
)

// factorial is a tiny reference implementation for expected counts.
func factorial(n int) int {
	f := 1
	for k := 2; k <= n; k++ {
		f *= k
	}
	return f
}

func TestPermutations_CountsDistinctIdentityFirst(t *testing.T) {
	for n := 0; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			all, err := perm.Permutations(n)
			require.NoError(t, err)
			require.Len(t, all, factorial(n))

			// first entry is the identity ([] for n=0)
			want := make([]int, n)
			for i := range want {
				want[i] = i
			}
			require.Equal(t, want, all[0])

			seen := make(map[string]struct{}, len(all))
			for _, p := range all {
				require.NoError(t, perm.Validate(p, n))
				key := fmt.Sprint(p)
				_, dup := seen[key]
				require.False(t, dup, "duplicate permutation %v", p)
				seen[key] = struct{}{}
			}
		})
	}
}

func TestPermutations_BeyondPreallocation(t *testing.T) {
	// 9! = 362880 exceeds the capacity hint, so append has to grow.
	all, err := perm.Permutations(9)
	require.NoError(t, err)
	require.Len(t, all, 362880)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, all[0])
	require.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}, all[len(all)-1])
}

func TestPermutations_LexicographicOrder(t *testing.T) {
	all, err := perm.Permutations(3)
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}, all)

	all, err = perm.Permutations(6)
	require.NoError(t, err)
	for i := 1; i < len(all); i++ {
		require.Equal(t, -1, slices.Compare(all[i-1], all[i]), "not strictly increasing at %d", i)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, all[len(all)-1])
}

func TestPermutations_Independent(t *testing.T) {
	all, err := perm.Permutations(3)
	require.NoError(t, err)
	all[0][0] = 99
	require.Equal(t, []int{0, 2, 1}, all[1])
}

func TestPermutations_Negative(t *testing.T) {
	_, err := perm.Permutations(-1)
	require.ErrorIs(t, err, perm.ErrInvalidArgument)
}

func TestNext(t *testing.T) {
	p := []int{0, 1, 2}
	require.True(t, perm.Next(p))
	require.Equal(t, []int{0, 2, 1}, p)

	last := []int{2, 1, 0}
	require.False(t, perm.Next(last))
	require.Equal(t, []int{0, 1, 2}, last, "wraps back to ascending")

	// Repeated values follow multiset order; no duplicates produced.
	m := []int{0, 1, 1}
	var got [][]int
	for {
		got = append(got, slices.Clone(m))
		if !perm.Next(m) {
			break
		}
	}
	require.Equal(t, [][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, got)

	require.False(t, perm.Next(nil))
	require.False(t, perm.Next([]int{7}))
}

func TestAll_MatchesPermutations(t *testing.T) {
	for n := 0; n <= 6; n++ {
		want, err := perm.Permutations(n)
		require.NoError(t, err)

		var got [][]int
		for p := range perm.All(n) {
			got = append(got, slices.Clone(p))
		}
		require.Equal(t, want, got, "n=%d", n)
	}
}

func TestAll_EarlyBreakAndNegative(t *testing.T) {
	var count int
	for range perm.All(5) {
		count++
		if count == 7 {
			break
		}
	}
	require.Equal(t, 7, count)

	count = 0
	for range perm.All(-3) {
		count++
	}
	require.Zero(t, count)
}

func TestCount(t *testing.T) {
	c, err := perm.Count(0)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = perm.Count(10)
	require.NoError(t, err)
	require.Equal(t, 3628800, c)

	c, err = perm.Count(20)
	require.NoError(t, err)
	require.Equal(t, 2432902008176640000, c)

	_, err = perm.Count(21)
	require.ErrorIs(t, err, perm.ErrOverflow)

	_, err = perm.Count(-1)
	require.ErrorIs(t, err, perm.ErrInvalidArgument)
}

func TestValidate(t *testing.T) {
	require.NoError(t, perm.Validate([]int{2, 0, 1}, 3))
	require.NoError(t, perm.Validate([]int{}, 0))

	cases := map[string][]int{
		"short":        {0, 1},
		"long":         {0, 1, 2, 3},
		"duplicate":    {0, 1, 1},
		"out of range": {0, 1, 3},
		"negative":     {0, -1, 2},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, perm.Validate(p, 3), perm.ErrNotPermutation)
		})
	}
}
