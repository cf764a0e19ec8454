// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/katalvlaran/drumhead/operator"
)

const (
	opEigenfunctions = "Eigenfunctions"
	opEigenfunction  = "Eigenfunction"
	opDecompose      = "Decompose"
)

// Eigenfunctions returns the k lowest-magnitude real eigenpairs of the
// Dirichlet Laplacian on g.
//
// Implementation:
//   - Stage 1: validate g (domain.ErrInvalidDomain), then k ∈ [1, g.Count()]
//     and the options (domain.ErrInvalidArgument). Nothing is allocated
//     before these checks pass.
//   - Stage 2: build the masked operator in the selected representation
//     (operator.ErrResourceExhausted for oversized dense operators).
//   - Stage 3: decompose, filter and normalize (see Decompose).
//
// Fewer than k pairs may be returned when the filter removes some; none at
// all is ErrNoRealEigenpairs.
func Eigenfunctions(g *domain.Grid, k int, opts ...Option) (*Spectrum, error) {
	o := gatherOptions(opts...)
	if err := validateRequest(g, k, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenfunctions, err)
	}

	op, err := operator.Build(g, o.operatorOptions(g)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenfunctions, err)
	}
	s, err := decompose(op, g, k, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenfunctions, err)
	}

	return s, nil
}

// Eigenfunction returns the fundamental mode: the single lowest-magnitude
// real eigenpair.
func Eigenfunction(g *domain.Grid, opts ...Option) (float64, *Field, error) {
	s, err := Eigenfunctions(g, 1, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opEigenfunction, err)
	}
	l, u := s.Mode(0)

	return l, u, nil
}

// Decompose runs Stage 3 of Eigenfunctions on a prebuilt operator.
//
// The representation and step are those of op; WithDense, WithSparse, WithStep,
// WithPhysicalStep and WithMaxDenseCells are ignored. op must carry its grid
// (operators from operator.Build do; principal submatrices do not).
func Decompose(op operator.Operator, k int, opts ...Option) (*Spectrum, error) {
	if op == nil {
		return nil, fmt.Errorf("%s: nil operator: %w", opDecompose, domain.ErrInvalidArgument)
	}
	g := op.Grid()
	if r, _ := op.Dims(); g == nil || r != g.Len() {
		return nil, fmt.Errorf("%s: operator without a matching grid: %w", opDecompose, domain.ErrInvalidDomain)
	}
	o := gatherOptions(opts...)
	if err := validateRequest(g, k, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	s, err := decompose(op, g, k, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	return s, nil
}

func validateRequest(g *domain.Grid, k int, o Options) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if k < 1 || k > g.Count() {
		return fmt.Errorf("k=%d outside [1, %d]: %w", k, g.Count(), domain.ErrInvalidArgument)
	}

	return o.validate()
}

func decompose(op operator.Operator, g *domain.Grid, k int, o Options) (*Spectrum, error) {
	log := Logger()
	n := g.Len()
	log.Debug("eigen: decomposing",
		"mode", op.Representation().String(),
		"rows", g.Rows(), "cols", g.Cols(), "domain", g.Count(),
		"components", len(g.Components()), "k", k)

	var (
		pairs []pair
		err   error
	)
	switch t := op.(type) {
	case *operator.Dense:
		pairs, err = denseEigen(t)
	case *operator.Sparse:
		pairs, err = sparseEigen(t, k, o)
	default:
		return nil, fmt.Errorf("unsupported operator %T: %w", op, domain.ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}

	kept, st := selectReal(pairs, n, k, o)
	log.Debug("eigen: filtered",
		"candidates", len(pairs), "kept", len(kept),
		"zeros", st.zeros, "complex_values", st.complexValues, "complex_vectors", st.complexVectors)
	if len(kept) == 0 {
		return nil, fmt.Errorf("%d candidates, keep zeros=%t: %w", len(pairs), o.keepZeros, ErrNoRealEigenpairs)
	}

	s := newSpectrum(g, kept)
	log.Info("eigen: decomposition complete",
		"mode", op.Representation().String(), "pairs", s.Len(), "first", s.Values[0])

	return s, nil
}
