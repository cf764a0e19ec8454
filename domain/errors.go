// SPDX-License-Identifier: MIT

package domain

import "errors"

// Sentinel errors. Match with errors.Is; call sites wrap them with context.
var (
	// ErrInvalidArgument indicates a parameter outside its documented range
	// (resolution < 2, negative size, NaN/Inf coordinates, eigenpair count).
	ErrInvalidArgument = errors.New("domain: invalid argument")

	// ErrDegenerateShape indicates a shape without area: fewer than three
	// distinct vertices, collinear vertices, or no interior cell at all.
	ErrDegenerateShape = errors.New("domain: degenerate shape")

	// ErrInvalidDomain indicates an occupancy grid that is empty, ragged,
	// non-binary, all false, or touching its bounding rectangle.
	ErrInvalidDomain = errors.New("domain: invalid occupancy grid")
)
