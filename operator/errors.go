// SPDX-License-Identifier: MIT

package operator

import "errors"

// Sentinel errors. Invalid grids surface as domain.ErrInvalidDomain and bad
// option values as domain.ErrInvalidArgument; the sentinels below cover the
// operator's own failure modes.
var (
	// ErrResourceExhausted is returned when a dense operator would exceed the
	// configured cell limit. It is never downgraded to another representation.
	ErrResourceExhausted = errors.New("operator: dense operator exceeds memory limit")

	// ErrOutOfRange indicates a row or column index outside the operator.
	ErrOutOfRange = errors.New("operator: index out of range")

	// ErrDimensionMismatch indicates vectors whose length differs from the
	// operator dimension, or an unsorted/out-of-range index set.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")
)
