// Package drumhead computes the vibration modes of a drum: the Dirichlet
// Laplacian eigenfunctions of a two-dimensional region.
//
// 🚀 What is drumhead?
//
//	A small numerical pipeline that turns a region into normalized modes:
//		• Rasterization: triangles, ellipses or explicit boolean masks
//		• Operators: the 5-point Laplacian, dense (gonum) or sparse (CSR)
//		• Eigenpairs: full dense decomposition or sparse subspace iteration
//		• Normalization: peak exactly ±1, exactly zero off the domain
//
// ✨ Guarantees
//
//   - Eigenvalues are ≤ 0 (those of the discrete Laplacian itself) and
//     ordered by magnitude.
//   - Every failure is a sentinel error, matched with errors.Is.
//   - Deterministic: the sparse solver is seeded.
//
// Everything is organized in three packages, leaves first:
//
//	domain/   : shapes, resolution policy, occupancy Grid
//	operator/ : masked discrete Laplacian (Dense, Sparse)
//	eigen/    : decomposition, real-pair filter, normalized Field and Spectrum
//
// and a command, cmd/drumhead, that solves YAML problem files.
//
// Quick example (the fundamental mode of the unit disk):
//
//	disk, _ := domain.NewCircle(1)
//	g, _ := domain.Rasterize(disk, 50)
//	l, u, err := eigen.Eigenfunction(g, eigen.WithPhysicalStep())
//	// l ≈ -5.6, u.MaxAbs() == 1, u is positive inside and 0 outside
//
//	go get github.com/katalvlaran/drumhead
package drumhead
