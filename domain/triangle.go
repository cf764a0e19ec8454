// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"
)

const (
	opTriangle  = "Triangle"
	opIsosceles = "IsoscelesTriangle"
)

// Triangle is an open triangle with vertices stored in canonical order:
// the last vertex carries the largest y, and the three are counter-clockwise.
type Triangle struct {
	v [3]Point
}

// Compile-time check.
var _ Shape = (*Triangle)(nil)

// NewTriangle builds a triangle from three vertices in any order.
//
// Implementation:
//   - Stage 1: reject NaN/±Inf coordinates (ErrInvalidArgument).
//   - Stage 2: reject repeated vertices (ErrDegenerateShape).
//   - Stage 3: canonicalize: when all y are equal sort by x; rotate until the
//     last vertex has the largest y (at most two rotations).
//   - Stage 4: orient counter-clockwise; collinear vertices are rejected
//     with ErrDegenerateShape.
//
// Complexity: O(1).
func NewTriangle(a, b, c Point) (*Triangle, error) {
	p := [3]Point{a, b, c}
	for i, q := range p {
		if !q.finite() {
			return nil, fmt.Errorf("%s: vertex %d %v: %w", opTriangle, i, q, ErrInvalidArgument)
		}
	}
	if a == b || b == c || a == c {
		return nil, fmt.Errorf("%s: fewer than 3 distinct vertices: %w", opTriangle, ErrDegenerateShape)
	}

	canonicalize(&p)

	switch o := cross(p[0], p[1], p[2]); {
	case o == 0:
		return nil, fmt.Errorf("%s: collinear vertices %v: %w", opTriangle, p, ErrDegenerateShape)
	case o < 0:
		// swapping the first two keeps the top vertex last
		p[0], p[1] = p[1], p[0]
	}

	return &Triangle{v: p}, nil
}

// NewIsoscelesTriangle builds the axis-aligned triangle with base width and
// the given height, centred on the origin: (-w/2, -h/2), (w/2, -h/2), (0, h/2).
// Returns ErrInvalidArgument for negative or non-finite sizes and
// ErrDegenerateShape when either size is zero.
func NewIsoscelesTriangle(width, height float64) (*Triangle, error) {
	if !isFinite(width) || width < 0 {
		return nil, fmt.Errorf("%s: width=%g: %w", opIsosceles, width, ErrInvalidArgument)
	}
	if !isFinite(height) || height < 0 {
		return nil, fmt.Errorf("%s: height=%g: %w", opIsosceles, height, ErrInvalidArgument)
	}
	w, h := 0.5*width, 0.5*height

	return NewTriangle(Point{-w, -h}, Point{w, -h}, Point{0, h})
}

// NewRegularTriangle is NewIsoscelesTriangle with height sqrt(3)/2 * width,
// i.e. an equilateral triangle.
func NewRegularTriangle(width float64) (*Triangle, error) {
	return NewIsoscelesTriangle(width, 0.5*math.Sqrt(3)*width)
}

// Vertices returns the canonical vertices.
func (t *Triangle) Vertices() [3]Point { return t.v }

// Bounds returns the bounding rectangle of the vertices.
func (t *Triangle) Bounds() Rect {
	r := Rect{XMin: t.v[0].X, XMax: t.v[0].X, YMin: t.v[0].Y, YMax: t.v[0].Y}
	for _, q := range t.v[1:] {
		r.XMin = math.Min(r.XMin, q.X)
		r.XMax = math.Max(r.XMax, q.X)
		r.YMin = math.Min(r.YMin, q.Y)
		r.YMax = math.Max(r.YMax, q.Y)
	}

	return r
}

// Contains reports whether (x, y) lies strictly left of all three directed
// edges, i.e. strictly inside the counter-clockwise triangle.
func (t *Triangle) Contains(x, y float64) bool {
	q := Point{x, y}

	return cross(t.v[0], t.v[1], q) > 0 &&
		cross(t.v[1], t.v[2], q) > 0 &&
		cross(t.v[2], t.v[0], q) > 0
}

// Area returns the (positive) area of the triangle.
func (t *Triangle) Area() float64 {
	return 0.5 * cross(t.v[0], t.v[1], t.v[2])
}

// cross returns the z-component of (b-a)×(c-a): positive when c is left of a→b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// canonicalize reorders p so that p[2] has the largest y. When all y are
// equal the vertices are first sorted by x. The rotation loop is bounded by
// the vertex count, so it terminates even for degenerate input.
func canonicalize(p *[3]Point) {
	if p[0].Y == p[1].Y && p[1].Y == p[2].Y {
		// insertion sort by x on three elements
		for i := 1; i < 3; i++ {
			for j := i; j > 0 && p[j].X < p[j-1].X; j-- {
				p[j], p[j-1] = p[j-1], p[j]
			}
		}
	}
	maxY := math.Max(p[0].Y, math.Max(p[1].Y, p[2].Y))
	for r := 0; r < len(p) && p[2].Y != maxY; r++ {
		p[0], p[1], p[2] = p[2], p[0], p[1]
	}
}
