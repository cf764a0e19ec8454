// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/drumhead/operator"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opSparse   = "sparse"
	opSubspace = "subspace"

	// minGuard is the least number of extra vectors carried in the block.
	minGuard = 4

	// rankTol rejects a Gram-Schmidt column that lost this fraction of its norm.
	rankTol = 1e-10

	// refillAttempts bounds random replacements of a dependent column.
	refillAttempts = 8

	// jacobiMaxBlock is the largest projected matrix solved by JacobiSym;
	// bigger blocks go to LAPACK through mat.EigenSym.
	jacobiMaxBlock = 8
)

// sparseEigen returns the nev = (#non-domain cells) + k lowest-magnitude
// pairs of the symmetrized masked operator.
//
// Rows of non-domain cells are empty, so each such cell c contributes the
// exact pair (0, e_c), reported as zeroPair. Every other eigenvector vanishes
// off the domain and solves D_ΩΩ·x = λ·x on the principal submatrix, whose
// negation is symmetric positive definite; its k smallest pairs come from
// subspaceIteration.
func sparseEigen(s *operator.Sparse, k int, o Options) ([]pair, error) {
	g := s.Grid()
	n := g.Len()
	idx := g.Interior()

	pairs := make([]pair, 0, n-len(idx)+k)
	for c := 0; c < n; c++ {
		if s.RowNNZ(c) == 0 {
			pairs = append(pairs, zeroPair)
		}
	}

	sub, err := s.Principal(idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSparse, err)
	}
	theta, vecs, err := subspaceIteration(sub.Scaled(-1), k, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSparse, err)
	}
	for i := range theta {
		full := make([]float64, n)
		for a, c := range idx {
			full[c] = vecs[i][a]
		}
		pairs = append(pairs, pair{value: complex(-theta[i], 0), entry: realVectorEntry(full)})
	}

	return pairs, nil
}

func realVectorEntry(v []float64) func(i int) complex128 {
	return func(i int) complex128 { return complex(v[i], 0) }
}

// subspaceIteration computes the want smallest eigenpairs of the symmetric
// positive definite a by block inverse iteration with Rayleigh-Ritz.
//
// Implementation:
//   - Stage 1: a seeded random block of p = min(d, want + max(4, want))
//     orthonormal columns, followed by a Rayleigh-Ritz step.
//   - Stage 2: until the first want Ritz pairs satisfy ‖a·x − θx‖ ≤ tol·θ:
//     solve a·y = x for every Ritz vector (conjugate gradients started at
//     x/θ), orthonormalize the block and extract new Ritz pairs.
//
// Returns θ ascending and unit eigenvectors of length d.
//
// Errors: ErrNotConverged after maxIter iterations or when a linear solve
// fails.
//
// Complexity: per iteration p CG solves, O(d·p²) for the block updates and
// O(p³) for the projected eigenproblem.
func subspaceIteration(a *operator.Sparse, want int, o Options) ([]float64, [][]float64, error) {
	d, _ := a.Dims()
	p := min(d, want+max(minGuard, want))
	rng := rand.New(rand.NewSource(o.seed))
	log := Logger()

	q := make([][]float64, p)
	for i := range q {
		q[i] = make([]float64, d)
		randomFill(q[i], rng)
	}
	if err := orthonormalize(q, rng); err != nil {
		return nil, nil, err
	}
	theta, x, err := rayleighRitz(a, q)
	if err != nil {
		return nil, nil, err
	}

	cgTol := o.solverTol / 10
	cgMax := 2*d + 100
	res := make([]float64, d)
	for iter := 0; ; iter++ {
		worst, err := worstResidual(a, theta[:want], x[:want], res)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("eigen: subspace iteration", "iter", iter, "block", p, "residual", worst)
		if worst <= o.solverTol {
			return theta[:want], x[:want], nil
		}
		if iter == o.maxIter {
			return nil, nil, fmt.Errorf("%s: relative residual %g > %g after %d iterations: %w",
				opSubspace, worst, o.solverTol, o.maxIter, ErrNotConverged)
		}

		for i := range x {
			y := q[i]
			if theta[i] > 0 {
				floats.ScaleTo(y, 1/theta[i], x[i])
			} else {
				copy(y, x[i])
			}
			if _, err := ConjugateGradient(a, x[i], y, cgTol, cgMax); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opSubspace, err)
			}
		}
		if err := orthonormalize(q, rng); err != nil {
			return nil, nil, err
		}
		if theta, x, err = rayleighRitz(a, q); err != nil {
			return nil, nil, err
		}
	}
}

func randomFill(v []float64, rng *rand.Rand) {
	for i := range v {
		v[i] = rng.NormFloat64()
	}
}

// orthonormalize applies modified Gram-Schmidt twice to the columns of q in
// place. A column that collapses is replaced by a fresh random vector.
func orthonormalize(q [][]float64, rng *rand.Rand) error {
	for j := range q {
		for attempt := 0; ; attempt++ {
			before := floats.Norm(q[j], 2)
			for pass := 0; pass < 2; pass++ {
				for i := 0; i < j; i++ {
					floats.AddScaled(q[j], -floats.Dot(q[i], q[j]), q[i])
				}
			}
			after := floats.Norm(q[j], 2)
			if after > rankTol*before && after > 0 {
				floats.Scale(1/after, q[j])
				break
			}
			if attempt == refillAttempts {
				return fmt.Errorf("%s: cannot extend basis at column %d: %w", opSubspace, j, ErrNotConverged)
			}
			randomFill(q[j], rng)
		}
	}

	return nil
}

// rayleighRitz projects a onto the orthonormal columns of q and returns the
// Ritz values ascending with their Ritz vectors.
func rayleighRitz(a *operator.Sparse, q [][]float64) ([]float64, [][]float64, error) {
	p := len(q)
	d := len(q[0])
	aq := make([][]float64, p)
	for j := range q {
		aq[j] = make([]float64, d)
		if err := a.MulVec(aq[j], q[j]); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opSubspace, err)
		}
	}

	h := mat.NewSymDense(p, nil)
	norm := 0.0
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			v := 0.5 * (floats.Dot(q[i], aq[j]) + floats.Dot(q[j], aq[i]))
			h.SetSym(i, j, v)
			norm = math.Max(norm, math.Abs(v))
		}
	}
	theta, v, err := projectedEigen(h, norm)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSubspace, err)
	}

	x := make([][]float64, p)
	for c := 0; c < p; c++ {
		x[c] = make([]float64, d)
		for j := 0; j < p; j++ {
			floats.AddScaled(x[c], v.At(j, c), q[j])
		}
	}

	return theta, x, nil
}

// projectedEigen solves the p×p Rayleigh-Ritz matrix h, whose largest entry
// magnitude is norm. Values are ascending; eigenvectors are the columns.
func projectedEigen(h *mat.SymDense, norm float64) ([]float64, *mat.Dense, error) {
	p := h.SymmetricDim()
	if p <= jacobiMaxBlock {
		return JacobiSym(h, 1e-14*math.Max(norm, 1e-300), 50*p*p+100)
	}

	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, nil, fmt.Errorf("projected %d×%d eigenproblem: %w", p, p, ErrNotConverged)
	}
	v := new(mat.Dense)
	es.VectorsTo(v)

	return es.Values(nil), v, nil
}

// worstResidual returns max ‖a·x_i − θ_i·x_i‖ / |θ_i| over the given pairs.
func worstResidual(a *operator.Sparse, theta []float64, x [][]float64, scratch []float64) (float64, error) {
	worst := 0.0
	for i := range theta {
		if err := a.MulVec(scratch, x[i]); err != nil {
			return 0, fmt.Errorf("%s: %w", opSubspace, err)
		}
		floats.AddScaled(scratch, -theta[i], x[i])
		r := floats.Norm(scratch, 2)
		if theta[i] != 0 {
			r /= math.Abs(theta[i])
		}
		worst = math.Max(worst, r)
	}

	return worst, nil
}
