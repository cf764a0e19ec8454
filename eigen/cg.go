// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/drumhead/operator"
	"gonum.org/v1/gonum/floats"
)

const opCG = "ConjugateGradient"

// ConjugateGradient solves a·x = b for a symmetric positive definite a.
//
// x holds the initial guess on entry and the solution on return. Iteration
// stops once ‖b − a·x‖ ≤ tol·‖b‖ and reports the number of steps taken.
//
// Errors:
//   - operator.ErrDimensionMismatch if a is not square or the vectors differ
//     from its dimension.
//   - ErrNotConverged after maxIter steps, or when a search direction reveals
//     that a is not positive definite.
//
// Complexity: one MulVec and O(n) vector work per step.
func ConjugateGradient(a operator.Operator, b, x []float64, tol float64, maxIter int) (int, error) {
	r, c := a.Dims()
	if r != c || len(b) != r || len(x) != r {
		return 0, fmt.Errorf("%s: %d×%d with len(b)=%d, len(x)=%d: %w",
			opCG, r, c, len(b), len(x), operator.ErrDimensionMismatch)
	}
	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		for i := range x {
			x[i] = 0
		}

		return 0, nil
	}
	target := tol * bnorm

	res := make([]float64, r)
	if err := a.MulVec(res, x); err != nil {
		return 0, fmt.Errorf("%s: %w", opCG, err)
	}
	floats.SubTo(res, b, res)
	dir := make([]float64, r)
	copy(dir, res)
	adir := make([]float64, r)
	rr := floats.Dot(res, res)

	for it := 0; it < maxIter; it++ {
		if math.Sqrt(rr) <= target {
			return it, nil
		}
		if err := a.MulVec(adir, dir); err != nil {
			return it, fmt.Errorf("%s: %w", opCG, err)
		}
		curv := floats.Dot(dir, adir)
		if curv <= 0 {
			return it, fmt.Errorf("%s: non-positive curvature %g at step %d: %w", opCG, curv, it, ErrNotConverged)
		}
		alpha := rr / curv
		floats.AddScaled(x, alpha, dir)
		floats.AddScaled(res, -alpha, adir)
		next := floats.Dot(res, res)
		floats.AddScaledTo(dir, res, next/rr, dir)
		rr = next
	}
	if math.Sqrt(rr) <= target {
		return maxIter, nil
	}

	return maxIter, fmt.Errorf("%s: residual %g > %g after %d steps: %w",
		opCG, math.Sqrt(rr), target, maxIter, ErrNotConverged)
}
