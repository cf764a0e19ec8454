// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// finite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Rect is an axis-aligned rectangle [XMin, XMax] × [YMin, YMax].
// It doubles as the plotting extent of a Grid or a Field.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax - YMin.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
}

// Shape is a bounded open region of the plane.
//
// Contains must be strict: points on the boundary are outside. Bounds must
// be the tightest axis-aligned rectangle around the region, so that the
// region touches every side of it.
type Shape interface {
	Bounds() Rect
	Contains(x, y float64) bool
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
