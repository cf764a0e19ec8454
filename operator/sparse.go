// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/drumhead/domain"
)

// Sparse is the operator in compressed sparse row form.
//
// Row r holds the entries val[rowPtr[r]:rowPtr[r+1]] at the strictly
// ascending columns colIdx[rowPtr[r]:rowPtr[r+1]]. Rows outside the domain
// are empty.
type Sparse struct {
	r, c   int
	rowPtr []int
	colIdx []int
	val    []float64
	grid   *domain.Grid
	scale  float64
}

// Compile-time assertion.
var _ Operator = (*Sparse)(nil)

func buildSparse(tag string, g *domain.Grid, o Options) (*Sparse, error) {
	scale, err := prepare(tag, g, o)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	nnz := 5 * g.Count()
	s := &Sparse{
		r:      n,
		c:      n,
		rowPtr: make([]int, n+1),
		colIdx: make([]int, 0, nnz),
		val:    make([]float64, 0, nnz),
		grid:   g,
		scale:  scale,
	}
	// stencil visits rows in ascending order, so counting then prefix-summing
	// fills rowPtr in one pass.
	stencil(g, scale, func(row, col int, v float64) {
		s.rowPtr[row+1]++
		s.colIdx = append(s.colIdx, col)
		s.val = append(s.val, v)
	})
	for r := 0; r < n; r++ {
		s.rowPtr[r+1] += s.rowPtr[r]
	}

	return s, nil
}

// Dims returns the matrix shape.
func (s *Sparse) Dims() (r, c int) { return s.r, s.c }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.val) }

// RowNNZ returns the number of stored entries in row i (0 if out of range).
func (s *Sparse) RowNNZ(i int) int {
	if i < 0 || i >= s.r {
		return 0
	}

	return s.rowPtr[i+1] - s.rowPtr[i]
}

// At returns entry (i, j) by binary search within the row.
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("Sparse.%s(%d,%d): %w", opAt, i, j, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	cols := s.colIdx[lo:hi]
	p := sort.SearchInts(cols, j)
	if p < len(cols) && cols[p] == j {
		return s.val[lo+p], nil
	}

	return 0, nil
}

// MulVec computes dst = S·x.
func (s *Sparse) MulVec(dst, x []float64) error {
	if s.r != s.c {
		return fmt.Errorf("Sparse.%s: %d×%d: %w", opMulVec, s.r, s.c, ErrDimensionMismatch)
	}
	if err := validateVecs(s.r, dst, x); err != nil {
		return err
	}
	for r := 0; r < s.r; r++ {
		var sum float64
		for p := s.rowPtr[r]; p < s.rowPtr[r+1]; p++ {
			sum += s.val[p] * x[s.colIdx[p]]
		}
		dst[r] = sum
	}

	return nil
}

// Representation returns RepSparse.
func (s *Sparse) Representation() Representation { return RepSparse }

// Grid returns the source grid, or nil for a derived submatrix.
func (s *Sparse) Grid() *domain.Grid { return s.grid }

// Scale returns 1/h².
func (s *Sparse) Scale() float64 { return s.scale }

// Principal returns the principal submatrix S[idx, idx].
//
// idx must be strictly ascending and inside [0, rows). Entry (a, b) of the
// result is S(idx[a], idx[b]). The result has no grid.
//
// Complexity: O(len(idx) + nnz of the selected rows · log).
func (s *Sparse) Principal(idx []int) (*Sparse, error) {
	pos := make(map[int]int, len(idx))
	for a, k := range idx {
		if k < 0 || k >= s.r || k >= s.c {
			return nil, fmt.Errorf("%s: index %d: %w", opPrincipal, k, ErrOutOfRange)
		}
		if a > 0 && k <= idx[a-1] {
			return nil, fmt.Errorf("%s: indices not strictly ascending at %d: %w", opPrincipal, a, ErrDimensionMismatch)
		}
		pos[k] = a
	}

	d := len(idx)
	sub := &Sparse{
		r:      d,
		c:      d,
		rowPtr: make([]int, d+1),
		scale:  s.scale,
	}
	for a, k := range idx {
		for p := s.rowPtr[k]; p < s.rowPtr[k+1]; p++ {
			b, ok := pos[s.colIdx[p]]
			if !ok {
				continue
			}
			// source columns ascend and idx is monotone, so b ascends too
			sub.colIdx = append(sub.colIdx, b)
			sub.val = append(sub.val, s.val[p])
		}
		sub.rowPtr[a+1] = len(sub.colIdx)
	}

	return sub, nil
}

// Scaled returns alpha·S as a new matrix sharing the structure.
func (s *Sparse) Scaled(alpha float64) *Sparse {
	val := make([]float64, len(s.val))
	for p, v := range s.val {
		val[p] = alpha * v
	}

	return &Sparse{
		r:      s.r,
		c:      s.c,
		rowPtr: s.rowPtr,
		colIdx: s.colIdx,
		val:    val,
		grid:   s.grid,
		scale:  s.scale,
	}
}

// Do calls fn for every stored entry in row-major order.
func (s *Sparse) Do(fn func(i, j int, v float64)) {
	for r := 0; r < s.r; r++ {
		for p := s.rowPtr[r]; p < s.rowPtr[r+1]; p++ {
			fn(r, s.colIdx[p], s.val[p])
		}
	}
}
