// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/drumhead/operator"
	"gonum.org/v1/gonum/mat"
)

const opDense = "dense"

// denseEigen runs a full general eigendecomposition of the masked operator.
// All M·N pairs are returned; complex ones are left to the filter.
func denseEigen(d *operator.Dense) ([]pair, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(d.Matrix(), mat.EigenRight); !ok {
		return nil, fmt.Errorf("%s: eigendecomposition failed: %w", opDense, ErrNotConverged)
	}
	vals := eig.Values(nil)
	vecs := new(mat.CDense)
	eig.VectorsTo(vecs)

	pairs := make([]pair, len(vals))
	for c, v := range vals {
		pairs[c] = pair{
			value: v,
			entry: func(i int) complex128 { return vecs.At(i, c) },
		}
	}

	return pairs, nil
}
