// SPDX-License-Identifier: MIT

package eigen

import "errors"

// Sentinel errors. Grid and argument failures reuse domain.ErrInvalidDomain
// and domain.ErrInvalidArgument; oversized dense operators surface as
// operator.ErrResourceExhausted.
var (
	// ErrNoRealEigenpairs is returned when the real-pair filter leaves nothing.
	ErrNoRealEigenpairs = errors.New("eigen: no real eigenpairs found")

	// ErrNotConverged is returned when a factorization or an iterative solver
	// fails within its iteration budget.
	ErrNotConverged = errors.New("eigen: solver did not converge")
)
