// SPDX-License-Identifier: MIT

package domain

import "fmt"

const (
	opFromMask   = "FromMask"
	opFromBinary = "FromBinary"
)

// FromMask builds a Grid from a caller-supplied mask, mask[i][j] being the
// cell at x index i and y index j. The input is deep-copied.
//
// The grid lives in index space: Bounds is [0, M-1] × [0, N-1] and Step is 1.
//
// Returns ErrInvalidDomain (wrapped) if the mask is empty or ragged, has no
// true cell, or has a true cell on its border.
// Complexity: O(M×N) time and memory.
func FromMask(mask [][]bool) (*Grid, error) {
	m, n, err := rectangular(len(mask), func(i int) int { return len(mask[i]) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromMask, err)
	}
	cells := make([]bool, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			cells[i+m*j] = mask[i][j]
		}
	}

	return finishMask(opFromMask, m, n, cells)
}

// FromBinary is FromMask for integral rasters holding only 0 and 1.
// Any other value yields ErrInvalidDomain.
func FromBinary(values [][]int) (*Grid, error) {
	m, n, err := rectangular(len(values), func(i int) int { return len(values[i]) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromBinary, err)
	}
	cells := make([]bool, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			switch values[i][j] {
			case 0:
			case 1:
				cells[i+m*j] = true
			default:
				return nil, fmt.Errorf("%s: value %d at (%d,%d) is not 0 or 1: %w",
					opFromBinary, values[i][j], i, j, ErrInvalidDomain)
			}
		}
	}

	return finishMask(opFromBinary, m, n, cells)
}

// rectangular checks that a 2D slice is non-empty with equal row lengths.
func rectangular(rows int, rowLen func(i int) int) (m, n int, err error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, fmt.Errorf("empty mask: %w", ErrInvalidDomain)
	}
	n = rowLen(0)
	for i := 1; i < rows; i++ {
		if rowLen(i) != n {
			return 0, 0, fmt.Errorf("row %d has length %d, want %d: %w", i, rowLen(i), n, ErrInvalidDomain)
		}
	}

	return rows, n, nil
}

func finishMask(tag string, m, n int, cells []bool) (*Grid, error) {
	g := newGrid(m, n, cells, Rect{XMax: float64(m - 1), YMax: float64(n - 1)}, 1)
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return g, nil
}
