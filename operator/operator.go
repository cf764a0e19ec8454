// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/drumhead/domain"
)

// Stencil coefficients of the 5-point Laplacian.
const (
	centerCoeff   = -4.0
	neighborCoeff = 1.0
)

// Operation tags for error wrapping.
const (
	opBuild       = "Build"
	opBuildDense  = "BuildDense"
	opBuildSparse = "BuildSparse"
	opAt          = "At"
	opMulVec      = "MulVec"
	opPrincipal   = "Principal"
)

// Operator is the masked discrete Laplacian of a grid.
//
// Dense and Sparse are the two implementations; consumers that need a
// representation-specific algorithm switch on the concrete type.
type Operator interface {
	// Dims returns the number of rows and columns (both M·N for a full operator).
	Dims() (r, c int)

	// At returns entry (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// MulVec computes dst = D·x. dst and x must not overlap.
	// Returns ErrDimensionMismatch if the lengths differ from the dimension.
	MulVec(dst, x []float64) error

	// Representation reports the storage kind.
	Representation() Representation

	// Grid returns the occupancy grid the operator was built from.
	Grid() *domain.Grid

	// Scale returns the factor 1/h² applied to the stencil.
	Scale() float64
}

// Build constructs the masked operator of g.
//
// Implementation:
//   - Stage 1: validate g (domain.ErrInvalidDomain) and the options
//     (domain.ErrInvalidArgument).
//   - Stage 2: dispatch on the representation; the dense path checks the cell
//     limit before allocating (ErrResourceExhausted).
//
// Complexity: dense O((M·N)²) memory, sparse O(M·N).
func Build(g *domain.Grid, opts ...Option) (Operator, error) {
	o := gatherOptions(opts...)
	if o.rep == RepDense {
		return buildDense(opBuild, g, o)
	}

	return buildSparse(opBuild, g, o)
}

// BuildDense is Build forcing the dense representation.
func BuildDense(g *domain.Grid, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	o.rep = RepDense

	return buildDense(opBuildDense, g, o)
}

// BuildSparse is Build forcing the sparse representation.
func BuildSparse(g *domain.Grid, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	o.rep = RepSparse

	return buildSparse(opBuildSparse, g, o)
}

// prepare runs the shared validation of Stage 1 and returns 1/h².
func prepare(tag string, g *domain.Grid, o Options) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}
	if err := o.validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}

	return 1 / (o.step * o.step), nil
}

// stencil emits the non-zero entries of the masked operator in row-major,
// column-ascending order. Rows of cells outside g emit nothing.
//
// The ±1 neighbors are taken on the flat index, as the offsets of a banded
// matrix: at i = 0 or i = M-1 they wrap into the adjacent column. Such rows
// belong to border cells, which are never interior, so the wrap is always
// masked away.
func stencil(g *domain.Grid, scale float64, emit func(row, col int, v float64)) {
	m, n := g.Rows(), g.Len()
	center, neighbor := centerCoeff*scale, neighborCoeff*scale
	offsets := [5]int{-m, -1, 0, 1, m}

	for k := 0; k < n; k++ {
		if !g.Inside(k) {
			continue
		}
		for _, d := range offsets {
			col := k + d
			if col < 0 || col >= n {
				continue
			}
			if d == 0 {
				emit(k, col, center)
			} else {
				emit(k, col, neighbor)
			}
		}
	}
}

// validateVecs checks dst and x against dimension n.
func validateVecs(n int, dst, x []float64) error {
	if len(x) != n || len(dst) != n {
		return fmt.Errorf("%s: len(dst)=%d, len(x)=%d, want %d: %w", opMulVec, len(dst), len(x), n, ErrDimensionMismatch)
	}

	return nil
}
