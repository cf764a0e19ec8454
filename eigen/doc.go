// Package eigen computes Dirichlet Laplacian eigenfunctions of a rasterized
// domain.
//
// The pipeline is grid → operator → decomposition → filter → normalization:
//
//	s, err := eigen.Eigenfunctions(g, 5)          // five lowest modes, sparse
//	l, u, err := eigen.Eigenfunction(g, eigen.WithDense())
//
// Sign convention: eigenvalues are those of the discrete Laplacian D itself,
// so they are ≤ 0 and the fundamental mode is strictly negative. Fields are
// ordered by ascending eigenvalue magnitude.
//
// Two decompositions are available:
//
//   - Dense: a full general eigendecomposition (gonum mat.Eigen) of the
//     row-masked operator. All pairs are computed, complex ones included, and
//     the real-pair filter removes what is not physical. Memory is
//     O((M·N)²) and guarded by the operator's cell limit.
//   - Sparse (default): the masked operator has one exactly-zero row per
//     cell outside the domain; those cells are deflated as exact zero pairs
//     and the k requested modes come from block inverse subspace iteration on
//     the symmetric positive definite matrix −D restricted to the domain.
//     Each step solves with conjugate gradients and extracts Ritz pairs with
//     the Jacobi rotation method for small blocks, mat.EigenSym otherwise.
//
// Filtering follows the same negligibility test in both modes:
//
//	negligible(x) ⇔ |x| ≤ atol + rtol·|1 + x|
//
// Near-zero eigenvalues are dropped unless WithKeepZeros is set, in which case
// each is returned as exactly 0 with an identically zero Field. Pairs
// whose eigenvalue or eigenvector carries a non-negligible imaginary part are
// dropped. An empty result is ErrNoRealEigenpairs.
//
// Every returned Field is exactly zero outside the domain and scaled so that
// its first maximal-magnitude entry (column-major order) is exactly +1 or −1,
// keeping that entry's sign. A field with no finite non-zero peak is
// identically zero.
//
// The package is silent by default; see SetLogger.
package eigen
