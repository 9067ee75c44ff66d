// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/ops"
)

// ExampleElementWise adds an int32 matrix to a float64 one; the result kind
// is the upcast of both.
func ExampleElementWise() {
	a, _ := matrix.NewDenseFrom(dtype.Int32, 2, 2, []any{1, 2, 3, 4})
	b, _ := matrix.NewDenseFrom(dtype.Float64, 2, 2, []any{0.5, 0.5, 0.5, 0.5})

	sum, err := matrix.ElementWise(ops.Add, a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sum.Kind())
	fmt.Print(sum)
	// Output:
	// float64
	// [1.5, 2.5]
	// [3.5, 4.5]
}

// ExampleElementWiseScalar shows that a scalar literal takes the narrowest
// kind holding it.
func ExampleElementWiseScalar() {
	a, _ := matrix.NewDenseFrom(dtype.Int16, 1, 3, []any{1, 2, 3})

	twice, _ := matrix.ElementWiseScalar(ops.Mul, a, 2)
	half, _ := matrix.ElementWiseScalar(ops.Mul, a, 0.5)
	fmt.Println(twice.Kind(), twice.Raw())
	fmt.Println(half.Kind(), half.Raw())
	// Output:
	// int16 [2 4 6]
	// float32 [0.5 1 1.5]
}

// ExampleSparseElementWise merges two compressed vectors.
func ExampleSparseElementWise() {
	a, _ := matrix.NewSparseVector(dtype.Int64, 6, 0)
	b, _ := matrix.NewSparseVector(dtype.Int64, 6, 0)
	_ = a.Set(1, 10)
	_ = b.Set(1, 5)
	_ = b.Set(4, 7)

	diff, _ := matrix.SparseElementWise(ops.Sub, a, b)
	d, _ := diff.ToDense()
	fmt.Println(diff.NNZ(), d.Raw())
	// Output:
	// 2 [0 5 0 0 -7 0]
}
