// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/katalvlaran/drumhead/eigen"
	"gopkg.in/yaml.v3"
)

// errProblem reports an unusable problem file.
var errProblem = errors.New("drumhead: invalid problem")

// Problem is one eigenfunction computation described in YAML:
//
//	shape: ellipse        # ellipse | triangle | mask
//	a: 2                  # ellipse semi-axes; b defaults to a
//	b: 1
//	num: 50               # points along the wider axis
//	k: 3                  # number of modes
//	mode: sparse          # sparse | dense
type Problem struct {
	Shape string   `yaml:"shape"`
	A     *float64 `yaml:"a"`
	B     *float64 `yaml:"b"`
	// A triangle is either three vertices or an isosceles width with an
	// optional height (equilateral proportions by default).
	Vertices [][2]float64 `yaml:"vertices"`
	Width    *float64     `yaml:"width"`
	Height   *float64     `yaml:"height"`
	// Mask rows are printed top to bottom (largest y first), '#' for domain
	// cells and '.' for the rest.
	Mask []string `yaml:"mask"`

	Num           int     `yaml:"num"`
	K             int     `yaml:"k"`
	Mode          string  `yaml:"mode"`
	Step          float64 `yaml:"step"`
	PhysicalStep  bool    `yaml:"physical_step"`
	KeepZeros     bool    `yaml:"keep_zeros"`
	Seed          int64   `yaml:"seed"`
	MaxDenseCells int     `yaml:"max_dense_cells"`
}

// loadProblem decodes a problem and fills defaults. Unknown keys are errors.
func loadProblem(r io.Reader) (*Problem, error) {
	p := &Problem{Num: domain.DefaultResolution, K: 1, Mode: "sparse"}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("%w: %v", errProblem, err)
	}

	return p, nil
}

// Grid rasterizes the problem's shape, or parses its mask.
func (p *Problem) Grid() (*domain.Grid, error) {
	if p.Shape == "mask" {
		return parseMask(p.Mask)
	}
	s, err := p.shape()
	if err != nil {
		return nil, err
	}

	return domain.Rasterize(s, p.Num)
}

func (p *Problem) shape() (domain.Shape, error) {
	switch p.Shape {
	case "ellipse":
		if p.A == nil {
			return nil, fmt.Errorf("%w: ellipse needs a", errProblem)
		}
		if p.B == nil {
			return domain.NewCircle(*p.A)
		}
		return domain.NewEllipse(*p.A, *p.B)
	case "triangle":
		if p.Width != nil {
			if p.Height == nil {
				return domain.NewRegularTriangle(*p.Width)
			}
			return domain.NewIsoscelesTriangle(*p.Width, *p.Height)
		}
		if len(p.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle needs a width or 3 vertices, got %d", errProblem, len(p.Vertices))
		}
		v := p.Vertices

		return domain.NewTriangle(
			domain.Point{X: v[0][0], Y: v[0][1]},
			domain.Point{X: v[1][0], Y: v[1][1]},
			domain.Point{X: v[2][0], Y: v[2][1]},
		)
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", errProblem, p.Shape)
	}
}

// Options translates the solver settings.
func (p *Problem) Options() ([]eigen.Option, error) {
	var opts []eigen.Option
	switch strings.ToLower(p.Mode) {
	case "", "sparse":
		opts = append(opts, eigen.WithSparse())
	case "dense":
		opts = append(opts, eigen.WithDense())
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", errProblem, p.Mode)
	}
	if p.PhysicalStep {
		opts = append(opts, eigen.WithPhysicalStep())
	}
	if p.Step != 0 {
		opts = append(opts, eigen.WithStep(p.Step))
	}
	if p.KeepZeros {
		opts = append(opts, eigen.WithKeepZeros())
	}
	if p.Seed != 0 {
		opts = append(opts, eigen.WithSeed(p.Seed))
	}
	if p.MaxDenseCells != 0 {
		opts = append(opts, eigen.WithMaxDenseCells(p.MaxDenseCells))
	}

	return opts, nil
}

// parseMask reads rows printed with y pointing up into a grid.
func parseMask(rows []string) (*domain.Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty mask", errProblem)
	}
	m := len(rows[0])
	mask := make([][]bool, m)
	for i := range mask {
		mask[i] = make([]bool, n)
	}
	for r, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("%w: mask row %d has %d cells, want %d", errProblem, r, len(row), m)
		}
		j := n - 1 - r
		for i, c := range row {
			switch c {
			case '#':
				mask[i][j] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: mask row %d: unexpected %q", errProblem, r, c)
			}
		}
	}

	return domain.FromMask(mask)
}
