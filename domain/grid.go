// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"strings"
)

// Grid is an occupancy grid (Omega): cell (i, j) is true iff the sample point
// at x_i, y_j lies strictly inside the region.
//
// The grid is immutable once built. cells holds M*N flags in column-major
// order (k = i + M*j), which is also the unknown ordering of the discrete
// operator built on top of it.
type Grid struct {
	m, n   int    // points along x and y
	cells  []bool // len == m*n, column-major
	count  int    // number of true cells
	bounds Rect   // sampled rectangle
	step   float64
}

// newGrid wraps cells without copying and caches the interior count.
func newGrid(m, n int, cells []bool, bounds Rect, step float64) *Grid {
	g := &Grid{m: m, n: n, cells: cells, bounds: bounds, step: step}
	for _, c := range cells {
		if c {
			g.count++
		}
	}

	return g
}

// Rows returns M, the number of points along x (axis 0).
func (g *Grid) Rows() int { return g.m }

// Cols returns N, the number of points along y (axis 1).
func (g *Grid) Cols() int { return g.n }

// Len returns M*N.
func (g *Grid) Len() int { return g.m * g.n }

// Count returns the number of interior (true) cells.
func (g *Grid) Count() int { return g.count }

// Bounds returns the rectangle the grid was sampled from.
func (g *Grid) Bounds() Rect { return g.bounds }

// Step returns the sample spacing along the wider axis. Grids built from a
// mask have no physical extent and report 1.
func (g *Grid) Step() float64 { return g.step }

// Spacing returns the sample spacing along x and y. Both equal 1 for grids
// built from a mask.
func (g *Grid) Spacing() (hx, hy float64) {
	hx, hy = 1, 1
	if g.m > 1 && g.bounds.Width() > 0 {
		hx = g.bounds.Width() / float64(g.m-1)
	}
	if g.n > 1 && g.bounds.Height() > 0 {
		hy = g.bounds.Height() / float64(g.n-1)
	}

	return hx, hy
}

// InBounds reports whether (i, j) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.m && j >= 0 && j < g.n
}

// Index maps (i, j) to the column-major index i + M*j.
// Complexity: O(1).
func (g *Grid) Index(i, j int) int {
	return i + g.m*j
}

// Coordinate converts a column-major index back to (i, j).
// Complexity: O(1).
func (g *Grid) Coordinate(k int) (i, j int) {
	return k % g.m, k / g.m
}

// At reports whether cell (i, j) is interior. Out-of-range cells are outside.
func (g *Grid) At(i, j int) bool {
	if !g.InBounds(i, j) {
		return false
	}

	return g.cells[g.Index(i, j)]
}

// Inside reports whether the cell with flat index k is interior.
func (g *Grid) Inside(k int) bool {
	return k >= 0 && k < len(g.cells) && g.cells[k]
}

// Cells returns a copy of the flags in column-major order.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)

	return out
}

// Interior returns the flat indices of the true cells in ascending order.
func (g *Grid) Interior() []int {
	idx := make([]int, 0, g.count)
	for k, c := range g.cells {
		if c {
			idx = append(idx, k)
		}
	}

	return idx
}

// Validate checks the occupancy invariants.
// Returns ErrInvalidDomain (wrapped) when the grid is nil, empty, inconsistent,
// has no interior cell, or has an interior cell on its border.
// Complexity: O(M+N) after construction (the interior count is cached).
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("Validate: nil grid: %w", ErrInvalidDomain)
	}
	if g.m < 1 || g.n < 1 || len(g.cells) != g.m*g.n {
		return fmt.Errorf("Validate: shape %d×%d: %w", g.m, g.n, ErrInvalidDomain)
	}
	if g.count == 0 {
		return fmt.Errorf("Validate: no interior cell: %w", ErrInvalidDomain)
	}
	for i := 0; i < g.m; i++ {
		if g.cells[g.Index(i, 0)] || g.cells[g.Index(i, g.n-1)] {
			return fmt.Errorf("Validate: interior cell on border row i=%d: %w", i, ErrInvalidDomain)
		}
	}
	for j := 0; j < g.n; j++ {
		if g.cells[g.Index(0, j)] || g.cells[g.Index(g.m-1, j)] {
			return fmt.Errorf("Validate: interior cell on border column j=%d: %w", j, ErrInvalidDomain)
		}
	}

	return nil
}

// Equal reports whether two grids have the same shape and flags.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.m != o.m || g.n != o.n {
		return false
	}
	for k := range g.cells {
		if g.cells[k] != o.cells[k] {
			return false
		}
	}

	return true
}

// String renders the grid with y growing upwards, '#' for interior cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.m + 1) * g.n)
	for j := g.n - 1; j >= 0; j-- {
		for i := 0; i < g.m; i++ {
			if g.cells[g.Index(i, j)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
