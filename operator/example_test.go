// SPDX-License-Identifier: MIT

package operator_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/katalvlaran/drumhead/operator"
)

// ExampleBuild assembles the sparse operator of a 2×2 interior block.
func ExampleBuild() {
	g, _ := domain.FromBinary([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	op, err := operator.Build(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := op.(*operator.Sparse)
	r, c := s.Dims()
	fmt.Println("dims:", r, c)
	fmt.Println("entries:", s.NNZ())
	center, _ := s.At(5, 5)
	fmt.Println("center:", center)

	// Output:
	// dims: 16 16
	// entries: 20
	// center: -4
}

// ExampleBuildDense shows the dense cell limit.
func ExampleBuildDense() {
	e, _ := domain.NewCircle(1)
	g, _ := domain.Rasterize(e, 20)
	_, err := operator.BuildDense(g, operator.WithMaxDenseCells(100))
	fmt.Println(errors.Is(err, operator.ErrResourceExhausted))

	// Output:
	// true
}
