// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"strings"

	"github.com/katalvlaran/drumhead/domain"
)

// Field is a normalized eigenfunction sampled on an M×N grid.
//
// Values are stored column-major like the grid (k = i + M*j). A field is
// exactly zero outside the domain and either identically zero or has a
// maximal-magnitude entry of exactly ±1.
type Field struct {
	m, n   int
	data   []float64
	bounds domain.Rect
}

// normalize builds the Field of an eigenvector.
//
// Stages: take real parts over domain cells (non-domain cells are exactly 0);
// locate the first maximal-magnitude entry in index order; divide by its
// magnitude, so it becomes ±1 with its sign kept. A zero peak or any
// non-finite quotient makes the field identically zero. Negative zeros are
// snapped to +0.
func normalize(g *domain.Grid, entry func(i int) complex128) *Field {
	n := g.Len()
	f := &Field{m: g.Rows(), n: g.Cols(), data: make([]float64, n), bounds: g.Bounds()}

	peak := 0.0
	for k := 0; k < n; k++ {
		if !g.Inside(k) {
			continue
		}
		v := real(entry(k))
		f.data[k] = v
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		f.zero()
		return f
	}

	for k, v := range f.data {
		q := v / peak
		if math.IsNaN(q) || math.IsInf(q, 0) {
			f.zero()
			return f
		}
		if q == 0 {
			q = 0 // drops the sign of -0
		}
		f.data[k] = q
	}

	return f
}

func (f *Field) zero() {
	for k := range f.data {
		f.data[k] = 0
	}
}

// Rows returns M.
func (f *Field) Rows() int { return f.m }

// Cols returns N.
func (f *Field) Cols() int { return f.n }

// At returns the value at (i, j), or 0 outside the grid.
func (f *Field) At(i, j int) float64 {
	if i < 0 || i >= f.m || j < 0 || j >= f.n {
		return 0
	}

	return f.data[i+f.m*j]
}

// Data returns a copy of the column-major values.
func (f *Field) Data() []float64 {
	out := make([]float64, len(f.data))
	copy(out, f.data)

	return out
}

// Bounds returns the rectangle the grid was sampled from.
func (f *Field) Bounds() domain.Rect { return f.bounds }

// MaxAbs returns the largest magnitude (1 unless the field is zero).
func (f *Field) MaxAbs() float64 {
	peak := 0.0
	for _, v := range f.data {
		peak = math.Max(peak, math.Abs(v))
	}

	return peak
}

// IsZero reports whether the field is identically zero.
func (f *Field) IsZero() bool {
	for _, v := range f.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders the sign pattern with y pointing up: '+' positive,
// '-' negative, '.' zero. Nodal lines show as +/- boundaries.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow((f.m + 1) * f.n)
	for j := f.n - 1; j >= 0; j-- {
		for i := 0; i < f.m; i++ {
			switch v := f.data[i+f.m*j]; {
			case v > 0:
				sb.WriteByte('+')
			case v < 0:
				sb.WriteByte('-')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
