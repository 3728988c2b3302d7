package coefficient_test

import (
	"testing"

	"github.com/katalvlaran/persistence/coefficient"
)

// BenchmarkBoundaryCoefficients_Cached measures table hits (length < size).
func BenchmarkBoundaryCoefficients_Cached(b *testing.B) {
	c := coefficient.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.BoundaryCoefficients(i % coefficient.DefaultCacheSize)
	}
}

// BenchmarkBoundaryCoefficients_Computed measures on-demand sequences.
func BenchmarkBoundaryCoefficients_Computed(b *testing.B) {
	c := coefficient.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.BoundaryCoefficients(32)
	}
}
