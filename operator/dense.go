// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/drumhead/domain"
	"gonum.org/v1/gonum/mat"
)

// Dense is the operator stored as a full gonum matrix.
type Dense struct {
	m     *mat.Dense
	grid  *domain.Grid
	scale float64
}

// Compile-time assertion.
var _ Operator = (*Dense)(nil)

func buildDense(tag string, g *domain.Grid, o Options) (*Dense, error) {
	scale, err := prepare(tag, g, o)
	if err != nil {
		return nil, err
	}
	// Guard before allocation: an (M·N)² buffer cannot be recovered from.
	n := g.Len()
	if n > o.maxDenseCells {
		return nil, fmt.Errorf("%s: %d cells > limit %d (%d×%d matrix): %w",
			tag, n, o.maxDenseCells, n, n, ErrResourceExhausted)
	}

	d := mat.NewDense(n, n, nil)
	stencil(g, scale, d.Set)

	return &Dense{m: d, grid: g, scale: scale}, nil
}

// Dims returns (M·N, M·N).
func (d *Dense) Dims() (r, c int) { return d.m.Dims() }

// At returns entry (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	r, c := d.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}

	return d.m.At(i, j), nil
}

// MulVec computes dst = D·x.
func (d *Dense) MulVec(dst, x []float64) error {
	r, _ := d.m.Dims()
	if err := validateVecs(r, dst, x); err != nil {
		return err
	}
	out := mat.NewVecDense(r, dst)
	out.MulVec(d.m, mat.NewVecDense(r, x))

	return nil
}

// Representation returns RepDense.
func (d *Dense) Representation() Representation { return RepDense }

// Grid returns the source grid.
func (d *Dense) Grid() *domain.Grid { return d.grid }

// Scale returns 1/h².
func (d *Dense) Scale() float64 { return d.scale }

// Matrix exposes the underlying gonum matrix. Callers must not modify it.
func (d *Dense) Matrix() *mat.Dense { return d.m }
