// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"
)

// MinResolution is the smallest accepted number of points along an axis.
const MinResolution = 2

// DefaultResolution is the resolution used by the original thesis scripts.
const DefaultResolution = 50

const (
	opResolution = "Resolution"
	opRasterize  = "Rasterize"
)

// Resolution applies the isotropic resolution policy to a bounding rectangle.
// The wider side receives num points; the narrower side receives
// round(num*short/long) points (round half to even), never fewer than 2.
// Equal sides receive num points each.
//
// Returns ErrInvalidArgument if num < 2 or the rectangle is not finite or has
// a negative side.
// Complexity: O(1).
func Resolution(ext Rect, num int) (m, n int, err error) {
	if num < MinResolution {
		return 0, 0, fmt.Errorf("%s: num=%d (must be ≥ %d): %w", opResolution, num, MinResolution, ErrInvalidArgument)
	}
	a, b := ext.Width(), ext.Height()
	if !isFinite(a) || !isFinite(b) || a < 0 || b < 0 {
		return 0, 0, fmt.Errorf("%s: extent %v: %w", opResolution, ext, ErrInvalidArgument)
	}

	switch {
	case a > b:
		return num, shortSide(b/a, num), nil
	case a < b:
		return shortSide(a/b, num), num, nil
	default:
		return num, num, nil
	}
}

// shortSide scales num by ratio ∈ [0, 1), rounding half to even.
func shortSide(ratio float64, num int) int {
	s := int(math.RoundToEven(ratio * float64(num)))
	if s < MinResolution {
		s = MinResolution
	}

	return s
}

// linspace returns num evenly spaced samples over [lo, hi], endpoints included.
func linspace(lo, hi float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(num-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[num-1] = hi

	return out
}

// Rasterize samples s on a grid whose wider side has num points.
// Cell (i, j) is true iff s.Contains(x_i, y_j). The border ring is always
// false: it lies on the bounding rectangle and so on or outside the boundary.
//
// Errors:
//   - ErrInvalidArgument: nil shape, bad resolution or non-finite bounds.
//   - ErrDegenerateShape: no sample point falls strictly inside s.
//
// Determinism: identical inputs produce bit-identical grids.
// Complexity: O(M·N) time and memory.
func Rasterize(s Shape, num int) (*Grid, error) {
	g := new(Grid)
	if err := RasterizeInto(g, s, num); err != nil {
		return nil, err
	}

	return g, nil
}

// RasterizeInto is Rasterize writing into dst, reusing its cell storage when
// large enough. dst is overwritten only on success; on error it is left as is.
// dst must not be shared with readers while it is being rewritten.
func RasterizeInto(dst *Grid, s Shape, num int) error {
	if dst == nil || s == nil {
		return fmt.Errorf("%s: nil destination or shape: %w", opRasterize, ErrInvalidArgument)
	}
	ext := s.Bounds()
	if !isFinite(ext.XMin) || !isFinite(ext.XMax) || !isFinite(ext.YMin) || !isFinite(ext.YMax) {
		return fmt.Errorf("%s: bounds %v: %w", opRasterize, ext, ErrInvalidArgument)
	}
	m, n, err := Resolution(ext, num)
	if err != nil {
		return fmt.Errorf("%s: %w", opRasterize, err)
	}

	u := linspace(ext.XMin, ext.XMax, m)
	v := linspace(ext.YMin, ext.YMax, n)

	// Interior only; the border ring stays false.
	cells := make([]bool, m*n)
	count := 0
	for j := 1; j < n-1; j++ {
		for i := 1; i < m-1; i++ {
			if s.Contains(u[i], v[j]) {
				cells[i+m*j] = true
				count++
			}
		}
	}
	if count == 0 {
		return fmt.Errorf("%s: no interior point at %d×%d: %w", opRasterize, m, n, ErrDegenerateShape)
	}

	step := 1.0
	if long := math.Max(ext.Width(), ext.Height()); long > 0 {
		step = long / float64(num-1)
	}

	buf := cells
	if cap(dst.cells) >= len(cells) {
		buf = dst.cells[:len(cells)]
		copy(buf, cells)
	}
	*dst = Grid{m: m, n: n, cells: buf, count: count, bounds: ext, step: step}

	return nil
}
