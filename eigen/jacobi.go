// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/drumhead/domain"
	"gonum.org/v1/gonum/mat"
)

const opJacobi = "JacobiSym"

// JacobiSym computes all eigenpairs of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: copy a into a flat row-major buffer; Q starts as the identity.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and annihilate it with a rotation, accumulating Q ← Q·J.
//   - Stage 3: sort eigenvalues ascending and permute the columns of Q alike.
//
// Inputs:
//   - a: symmetric matrix, left unmodified.
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: cap on the number of rotations.
//
// Returns the eigenvalues in ascending order and Q whose columns are the
// corresponding orthonormal eigenvectors.
//
// Errors: domain.ErrInvalidArgument for an empty matrix; ErrNotConverged if
// an off-diagonal entry ≥ tol survives maxIter rotations.
//
// Determinism: fixed pivot scan and update order.
//
// Complexity: O(n²) per rotation for the pivot scan, O(n) for the update.
func JacobiSym(a *mat.SymDense, tol float64, maxIter int) ([]float64, *mat.Dense, error) {
	if a == nil || a.IsEmpty() {
		return nil, nil, fmt.Errorf("%s: empty matrix: %w", opJacobi, domain.ErrInvalidArgument)
	}
	n := a.SymmetricDim()
	A := make([]float64, n*n)
	Q := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			A[i*n+j] = a.At(i, j)
		}
		Q[i*n+i] = 1
	}

	var (
		iter           int
		p, q           int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		qip, qiq       float64
		theta, t, c, s float64
		converged      bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: convergence
		if maxOff < tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		// J.3: rotation annihilating A[p,q]
		app, aqq, apq = A[p*n+p], A[q*n+q], A[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: A ← JᵀAJ, rows/columns p and q only
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A[i*n+p], A[i*n+q]
			A[i*n+p] = c*aip - s*aiq
			A[p*n+i] = A[i*n+p]
			A[i*n+q] = s*aip + c*aiq
			A[q*n+i] = A[i*n+q]
		}
		A[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p*n+q], A[q*n+p] = 0, 0

		// J.5: Q ← Q·J
		for i = 0; i < n; i++ {
			qip, qiq = Q[i*n+p], Q[i*n+q]
			Q[i*n+p] = c*qip - s*qiq
			Q[i*n+q] = s*qip + c*qiq
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("%s: off-diagonal %g ≥ %g after %d rotations: %w",
			opJacobi, maxOff, tol, maxIter, ErrNotConverged)
	}

	// Stage 3: ascending order
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return A[order[x]*n+order[x]] < A[order[y]*n+order[y]] })

	vals := make([]float64, n)
	vecs := mat.NewDense(n, n, nil)
	for j, src := range order {
		vals[j] = A[src*n+src]
		for i = 0; i < n; i++ {
			vecs.Set(i, j, Q[i*n+src])
		}
	}

	return vals, vecs, nil
}
