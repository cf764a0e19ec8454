// SPDX-License-Identifier: MIT

package operator_test

import (
	"testing"

	"github.com/katalvlaran/drumhead/operator"
)

// BenchmarkBuildSparse assembles the CSR operator of a 300-point ellipse.
// Complexity: O(M×N).
func BenchmarkBuildSparse(b *testing.B) {
	g := ellipseGrid(b, 2, 1, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = operator.BuildSparse(g)
	}
}

// BenchmarkSparseMulVec measures one product with the 300-point operator.
func BenchmarkSparseMulVec(b *testing.B) {
	g := ellipseGrid(b, 2, 1, 300)
	s, err := operator.BuildSparse(g)
	if err != nil {
		b.Fatalf("setup BuildSparse failed: %v", err)
	}
	x := make([]float64, g.Len())
	for i := range x {
		x[i] = 1
	}
	y := make([]float64, g.Len())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.MulVec(y, x)
	}
}

// BenchmarkBuildDense assembles a dense 60×60 operator.
func BenchmarkBuildDense(b *testing.B) {
	g := ellipseGrid(b, 1, 1, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = operator.BuildDense(g)
	}
}
