// SPDX-License-Identifier: MIT

package domain

import "fmt"

const opEllipse = "Ellipse"

// Ellipse is the open axis-aligned ellipse x²/a² + y²/b² < 1 centred on the
// origin. It is evaluated in the implicit form b²x² + a²y² < a²b², which stays
// well defined when a or b is zero (the region is then empty).
type Ellipse struct {
	a, b float64
}

// Compile-time check.
var _ Shape = (*Ellipse)(nil)

// NewEllipse builds an ellipse with semi-axes a (along x) and b (along y).
// Returns ErrInvalidArgument for negative or non-finite semi-axes.
func NewEllipse(a, b float64) (*Ellipse, error) {
	if !isFinite(a) || a < 0 {
		return nil, fmt.Errorf("%s: a=%g: %w", opEllipse, a, ErrInvalidArgument)
	}
	if !isFinite(b) || b < 0 {
		return nil, fmt.Errorf("%s: b=%g: %w", opEllipse, b, ErrInvalidArgument)
	}

	return &Ellipse{a: a, b: b}, nil
}

// NewCircle is NewEllipse(r, r).
func NewCircle(r float64) (*Ellipse, error) {
	return NewEllipse(r, r)
}

// Axes returns the semi-axes.
func (e *Ellipse) Axes() (a, b float64) { return e.a, e.b }

// Bounds returns [-a, a] × [-b, b].
func (e *Ellipse) Bounds() Rect {
	return Rect{XMin: -e.a, XMax: e.a, YMin: -e.b, YMax: e.b}
}

// Contains reports b²x² + a²y² < a²b².
func (e *Ellipse) Contains(x, y float64) bool {
	a2, b2 := e.a*e.a, e.b*e.b

	return b2*x*x+a2*y*y < a2*b2
}
