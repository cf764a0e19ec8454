// Package operator builds the discrete Dirichlet Laplacian of an occupancy
// grid.
//
// The operator acts on fields over the whole M×N grid, flattened column-major
// (k = i + M*j, as in package domain). Row k of the 5-point stencil holds
//
//	-4 at column k,  +1 at columns k±1 and k±M  (when inside [0, M·N))
//
// optionally divided by h² for a grid step h. Rows of cells outside the
// domain are zeroed, so those degrees of freedom contribute spurious zero
// eigenvalues that the eigen package filters out.
//
// Two representations implement Operator:
//
//   - Dense wraps a gonum *mat.Dense. Fast for small grids, but memory grows
//     as (M·N)², so Build refuses grids above a configurable cell limit with
//     ErrResourceExhausted instead of exhausting the process.
//   - Sparse is a CSR matrix with at most five entries per row. It scales to
//     large grids and feeds the iterative eigen solver.
//
// Both representations report identical entries for the same grid and step.
package operator
