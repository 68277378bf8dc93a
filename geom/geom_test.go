package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		p, q geom.Point
		want float64
	}{
		{"3-4-5", geom.Pt(0, 0), geom.Pt(3, 4), 5},
		{"coincident", geom.Pt(1.5, -2), geom.Pt(1.5, -2), 0},
		{"horizontal", geom.Pt(-1, 0), geom.Pt(2, 0), 3},
		{"negative quadrant", geom.Pt(-3, -4), geom.Pt(0, 0), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, geom.Distance(tc.p, tc.q))
			// symmetric
			require.Equal(t, geom.Distance(tc.p, tc.q), geom.Distance(tc.q, tc.p))
		})
	}
}

func TestDistance_LargeCoordinates(t *testing.T) {
	d := geom.Distance(geom.Pt(0, 0), geom.Pt(3e200, 4e200))
	require.False(t, math.IsInf(d, 0))
	require.InEpsilon(t, 5e200, d, 1e-12)
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, geom.Validate(nil), geom.ErrEmpty)
	require.NoError(t, geom.Validate([]geom.Point{geom.Pt(0, 0)}))

	bad := []geom.Point{geom.Pt(0, 0), geom.Pt(math.NaN(), 1)}
	require.ErrorIs(t, geom.Validate(bad), geom.ErrNonFinite)

	bad = []geom.Point{geom.Pt(math.Inf(-1), 0)}
	require.ErrorIs(t, geom.Validate(bad), geom.ErrNonFinite)
}

func TestDistanceMatrix(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 4)}
	d, err := geom.DistanceMatrix(pts)
	require.NoError(t, err)
	require.Equal(t, 3, d.SymmetricDim())

	var i, j int
	for i = 0; i < 3; i++ {
		require.Equal(t, 0.0, d.At(i, i))
		for j = 0; j < 3; j++ {
			require.Equal(t, geom.Distance(pts[i], pts[j]), d.At(i, j))
		}
	}
	require.Equal(t, 5.0, d.At(0, 2))
	require.Equal(t, 5.0, d.At(2, 0))

	_, err = geom.DistanceMatrix(nil)
	require.ErrorIs(t, err, geom.ErrEmpty)
}
