// SPDX-License-Identifier: MIT

package eigen_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/katalvlaran/drumhead/eigen"
	"github.com/katalvlaran/drumhead/operator"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestJacobiSym(t *testing.T) {
	a := mat.NewSymDense(4, []float64{
		4, 1, -2, 2,
		1, 2, 0, 1,
		-2, 0, 3, -2,
		2, 1, -2, -1,
	})
	vals, vecs, err := eigen.JacobiSym(a, 1e-12, 1000)
	require.NoError(t, err)
	require.Len(t, vals, 4)
	require.True(t, sortedAscending(vals), "vals = %v", vals)

	// trace is preserved
	require.InDelta(t, 8.0, vals[0]+vals[1]+vals[2]+vals[3], 1e-10)

	for c := 0; c < 4; c++ {
		v := mat.Col(nil, c, vecs)
		av := mat.NewVecDense(4, nil)
		av.MulVec(a, mat.NewVecDense(4, v))
		for i := 0; i < 4; i++ {
			require.InDelta(t, vals[c]*v[i], av.AtVec(i), 1e-9)
		}
	}
	// Q is orthogonal
	var qtq mat.Dense
	qtq.Mul(vecs.T(), vecs)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, qtq.At(i, j), 1e-12)
		}
	}

	// input untouched
	require.Equal(t, 4.0, a.At(0, 0))
	require.Equal(t, -2.0, a.At(2, 0))
}

func TestJacobiSym_Diagonal(t *testing.T) {
	a := mat.NewSymDense(3, []float64{3, 0, 0, 0, -1, 0, 0, 0, 2})
	vals, vecs, err := eigen.JacobiSym(a, 1e-12, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 2, 3}, vals)
	require.Equal(t, 1.0, vecs.At(1, 0))
	require.Equal(t, 1.0, vecs.At(2, 1))
	require.Equal(t, 1.0, vecs.At(0, 2))
}

func TestJacobiSym_Errors(t *testing.T) {
	a := mat.NewSymDense(2, []float64{1, 1, 1, 1})
	_, _, err := eigen.JacobiSym(a, 1e-12, 0)
	require.ErrorIs(t, err, eigen.ErrNotConverged)

	_, _, err = eigen.JacobiSym(nil, 1e-12, 10)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, _, err = eigen.JacobiSym(&mat.SymDense{}, 1e-12, 10)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func sortedAscending(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return false
		}
	}
	return true
}

// negLaplacian returns -D restricted to the domain of g.
func negLaplacian(t *testing.T, g *domain.Grid) *operator.Sparse {
	t.Helper()
	s, err := operator.BuildSparse(g)
	require.NoError(t, err)
	sub, err := s.Principal(g.Interior())
	require.NoError(t, err)

	return sub.Scaled(-1)
}

func TestConjugateGradient(t *testing.T) {
	g := ellipseGrid(t, 1, 1, 30)
	a := negLaplacian(t, g)
	d, _ := a.Dims()

	rng := rand.New(rand.NewSource(3))
	b := make([]float64, d)
	for i := range b {
		b[i] = rng.NormFloat64()
	}
	x := make([]float64, d)
	iters, err := eigen.ConjugateGradient(a, b, x, 1e-12, 10*d)
	require.NoError(t, err)
	require.Positive(t, iters)
	require.LessOrEqual(t, iters, 10*d)

	ax := make([]float64, d)
	require.NoError(t, a.MulVec(ax, x))
	var res, bn float64
	for i := range b {
		res += (ax[i] - b[i]) * (ax[i] - b[i])
		bn += b[i] * b[i]
	}
	require.Less(t, math.Sqrt(res/bn), 1e-10)

	// a converged start needs no step
	again, err := eigen.ConjugateGradient(a, b, x, 1e-8, 10)
	require.NoError(t, err)
	require.Zero(t, again)

	// zero right-hand side
	zero := make([]float64, d)
	require.NoError(t, a.MulVec(x, b))
	_, err = eigen.ConjugateGradient(a, zero, x, 1e-8, 10)
	require.NoError(t, err)
	require.Equal(t, zero, x)
}

func TestConjugateGradient_Errors(t *testing.T) {
	g := ellipseGrid(t, 1, 1, 30)
	a := negLaplacian(t, g)
	d, _ := a.Dims()

	_, err := eigen.ConjugateGradient(a, make([]float64, d), make([]float64, d+1), 1e-8, 10)
	require.ErrorIs(t, err, operator.ErrDimensionMismatch)

	b := make([]float64, d)
	b[0] = 1
	_, err = eigen.ConjugateGradient(a, b, make([]float64, d), 1e-14, 1)
	require.ErrorIs(t, err, eigen.ErrNotConverged)

	// D itself is negative definite on the domain
	_, err = eigen.ConjugateGradient(a.Scaled(-1), b, make([]float64, d), 1e-8, 10)
	require.ErrorIs(t, err, eigen.ErrNotConverged)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	eigen.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer eigen.SetLogger(nil)

	_, _, err := eigen.Eigenfunction(ellipseGrid(t, 1, 1, 16))
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "eigen: decomposing")
	require.Contains(t, out, "components=1")
	require.Contains(t, out, "eigen: subspace iteration")
	require.Contains(t, out, "eigen: filtered")
	require.Contains(t, out, "eigen: decomposition complete")

	eigen.SetLogger(nil)
	buf.Reset()
	_, _, err = eigen.Eigenfunction(ellipseGrid(t, 1, 1, 16))
	require.NoError(t, err)
	require.Empty(t, buf.String())
	require.False(t, eigen.Logger().Enabled(context.Background(), slog.LevelError))
}
