// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/nn2opt/city"
	"github.com/katalvlaran/nn2opt/matrix"
)

// ExampleNewEuclidean builds the distance table of a 4×3 rectangle.
func ExampleNewEuclidean() {
	set, err := city.NewSet([]city.City{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 0, Y: 3},
		{ID: 2, X: 4, Y: 3},
		{ID: 3, X: 4, Y: 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(matrix.NewEuclidean(set))
	// Output:
	// 0	3	5	4
	// 3	0	4	5
	// 5	4	0	3
	// 4	5	3	0
}
