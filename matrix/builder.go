// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/nn2opt/city"
)

// NewEuclidean builds the rounded Euclidean distance table of set.
// D[a][b] == city.Distance(set.At(a), set.At(b)) for every pair of dense
// indices, including a == b (value 0). A nil or empty set yields a 0×0 table.
//
// Stage 1 (Prepare): allocate n×n storage.
// Stage 2 (Execute): compute the strict upper triangle and mirror it.
//
// Complexity: O(n²) time and memory.
func NewEuclidean(set *city.Set) *Distance {
	n := set.Len()
	d := newDistance(n)

	var (
		i, j int
		w    int
		ci   city.City
	)
	for i = 0; i < n; i++ {
		ci = set.At(i)
		for j = i + 1; j < n; j++ {
			w = city.Distance(ci, set.At(j))
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d
}

// FromRows copies an explicit table into a Distance after validating it.
//
// Errors (in priority order): ErrNonSquare, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Distance, error) {
	n := len(rows)
	d := newDistance(n)

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		copy(d.data[i*n:(i+1)*n], rows[i])
	}

	if err := ValidateNonNegative(d); err != nil {
		return nil, err
	}
	if err := ValidateZeroDiagonal(d); err != nil {
		return nil, err
	}
	if err := ValidateSymmetric(d); err != nil {
		return nil, err
	}

	return d, nil
}
