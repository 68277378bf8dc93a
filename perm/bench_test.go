package perm_test

import (
	"testing"

	"github.com/katalvlaran/lvtour/perm"
)

// BenchmarkPermutations_n8 measures full materialization (40320 slices).
func BenchmarkPermutations_n8(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := perm.Permutations(8); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAll_n8 measures the lazy sequence over the same orderings.
func BenchmarkAll_n8(b *testing.B) {
	b.ReportAllocs()
	var sink int
	for i := 0; i < b.N; i++ {
		for p := range perm.All(8) {
			sink += p[0]
		}
	}
	_ = sink
}
