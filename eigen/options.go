// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for Eigenfunctions and Decompose.
//
// Option constructors only record values. The entry points validate them
// eagerly, before any operator is assembled, and report bad values as
// domain.ErrInvalidArgument.
package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/katalvlaran/drumhead/operator"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRTol and DefaultATol define the negligibility test
	// |x| ≤ atol + rtol·|1 + x| (numpy.isclose(1, 1 + x) defaults).
	DefaultRTol = 1e-5
	DefaultATol = 1e-8

	// DefaultSolverTol is the relative residual ‖Ax − θx‖ ≤ tol·θ accepted by
	// the sparse solver.
	DefaultSolverTol = 1e-8

	// DefaultMaxIter caps subspace iterations of the sparse solver.
	DefaultMaxIter = 500

	// DefaultSeed seeds the random start block of the sparse solver.
	DefaultSeed int64 = 1
)

// Option mutates Options. Applied in order; last writer wins.
type Option func(*Options)

// Options is the effective configuration of a decomposition.
type Options struct {
	mode          operator.Representation
	step          float64
	physicalStep  bool
	keepZeros     bool
	rtol, atol    float64
	solverTol     float64
	maxIter       int
	seed          int64
	maxDenseCells int
}

// WithDense selects the full dense decomposition.
func WithDense() Option {
	return func(o *Options) { o.mode = operator.RepDense }
}

// WithSparse selects the iterative sparse decomposition (default).
func WithSparse() Option {
	return func(o *Options) { o.mode = operator.RepSparse }
}

// WithStep scales the operator by 1/h². Overrides WithPhysicalStep.
func WithStep(h float64) Option {
	return func(o *Options) {
		o.step = h
		o.physicalStep = false
	}
}

// WithPhysicalStep scales the operator by the grid's own sampling step, so
// eigenvalues approximate those of the continuous region.
func WithPhysicalStep() Option {
	return func(o *Options) { o.physicalStep = true }
}

// WithKeepZeros keeps near-zero eigenvalues, reported as 0 with a zero Field.
func WithKeepZeros() Option {
	return func(o *Options) { o.keepZeros = true }
}

// WithTolerance sets the negligibility test parameters.
func WithTolerance(rtol, atol float64) Option {
	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// WithSolverTolerance sets the relative residual of the sparse solver.
func WithSolverTolerance(tol float64) Option {
	return func(o *Options) { o.solverTol = tol }
}

// WithMaxIter caps subspace iterations of the sparse solver.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithSeed seeds the sparse solver's start block. Equal seeds give equal
// results.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithMaxDenseCells sets the largest M·N accepted in dense mode.
func WithMaxDenseCells(n int) Option {
	return func(o *Options) { o.maxDenseCells = n }
}

// NewOptions resolves setters against the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Mode returns the selected representation.
func (o Options) Mode() operator.Representation { return o.mode }

// KeepZeros reports whether near-zero eigenvalues are kept.
func (o Options) KeepZeros() bool { return o.keepZeros }

// Tolerance returns (rtol, atol).
func (o Options) Tolerance() (rtol, atol float64) { return o.rtol, o.atol }

// Negligible reports |x| ≤ atol + rtol·|1 + x|.
func (o Options) Negligible(x float64) bool {
	return math.Abs(x) <= o.atol+o.rtol*math.Abs(1+x)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		mode:          operator.DefaultRepresentation,
		step:          operator.DefaultStep,
		rtol:          DefaultRTol,
		atol:          DefaultATol,
		solverTol:     DefaultSolverTol,
		maxIter:       DefaultMaxIter,
		seed:          DefaultSeed,
		maxDenseCells: operator.DefaultMaxDenseCells,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate checks the values owned by this package; the step, mode and
// cell limit are checked by operator.Build.
func (o Options) validate() error {
	if !nonNegative(o.rtol) || !nonNegative(o.atol) {
		return fmt.Errorf("tolerance rtol=%g atol=%g must be finite and ≥ 0: %w", o.rtol, o.atol, domain.ErrInvalidArgument)
	}
	if !nonNegative(o.solverTol) || o.solverTol == 0 {
		return fmt.Errorf("solver tolerance %g must be finite and > 0: %w", o.solverTol, domain.ErrInvalidArgument)
	}
	if o.maxIter <= 0 {
		return fmt.Errorf("max iterations %d must be > 0: %w", o.maxIter, domain.ErrInvalidArgument)
	}

	return nil
}

// operatorOptions translates the configuration for operator.Build.
func (o Options) operatorOptions(g *domain.Grid) []operator.Option {
	h := o.step
	if o.physicalStep {
		h = g.Step()
	}

	return []operator.Option{
		operator.WithRepresentation(o.mode),
		operator.WithStep(h),
		operator.WithMaxDenseCells(o.maxDenseCells),
	}
}

func nonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
