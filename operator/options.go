// SPDX-License-Identifier: MIT

// Package operator: functional configuration for Build.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Option constructors only record values; Build validates them and reports
//     domain.ErrInvalidArgument, so user input never panics.
package operator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/drumhead/domain"
)

// Representation selects the storage of the operator.
type Representation int

const (
	// RepSparse stores the stencil in CSR form.
	RepSparse Representation = iota
	// RepDense stores the full (M·N)×(M·N) matrix.
	RepDense
)

// String implements fmt.Stringer.
func (r Representation) String() string {
	switch r {
	case RepSparse:
		return "sparse"
	case RepDense:
		return "dense"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRepresentation is sparse: it is the only one that scales.
	DefaultRepresentation = RepSparse

	// DefaultStep is the index-space grid step (no scaling).
	DefaultStep = 1.0

	// DefaultMaxDenseCells caps M·N for dense operators. 4096 cells means a
	// 128 MiB matrix before any decomposition workspace.
	DefaultMaxDenseCells = 4096
)

// Option mutates Options. Applied in order; last writer wins.
type Option func(*Options)

// Options is the effective configuration of Build.
type Options struct {
	rep           Representation
	step          float64
	maxDenseCells int
}

// WithRepresentation selects the storage explicitly.
func WithRepresentation(rep Representation) Option {
	return func(o *Options) { o.rep = rep }
}

// WithDense selects the dense representation.
func WithDense() Option { return WithRepresentation(RepDense) }

// WithSparse selects the sparse representation (default).
func WithSparse() Option { return WithRepresentation(RepSparse) }

// WithStep divides the stencil by h². h must be finite and positive.
func WithStep(h float64) Option {
	return func(o *Options) { o.step = h }
}

// WithMaxDenseCells sets the largest M·N accepted by the dense representation.
func WithMaxDenseCells(n int) Option {
	return func(o *Options) { o.maxDenseCells = n }
}

// NewOptions resolves setters against the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Representation returns the selected storage.
func (o Options) Representation() Representation { return o.rep }

// Step returns the grid step h.
func (o Options) Step() float64 { return o.step }

// MaxDenseCells returns the dense cell limit.
func (o Options) MaxDenseCells() int { return o.maxDenseCells }

func gatherOptions(user ...Option) Options {
	o := Options{
		rep:           DefaultRepresentation,
		step:          DefaultStep,
		maxDenseCells: DefaultMaxDenseCells,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate reports nonsensical option values as domain.ErrInvalidArgument.
func (o Options) validate() error {
	if math.IsNaN(o.step) || math.IsInf(o.step, 0) || o.step <= 0 {
		return fmt.Errorf("step h=%g must be finite and > 0: %w", o.step, domain.ErrInvalidArgument)
	}
	if o.rep != RepSparse && o.rep != RepDense {
		return fmt.Errorf("%v: %w", o.rep, domain.ErrInvalidArgument)
	}
	if o.maxDenseCells <= 0 {
		return fmt.Errorf("max dense cells %d must be > 0: %w", o.maxDenseCells, domain.ErrInvalidArgument)
	}

	return nil
}
