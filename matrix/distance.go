// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Distance is an immutable n×n table of integer distances in row-major order.
type Distance struct {
	n    int   // order of the table
	data []int // flat backing storage, len == n*n
}

// newDistance allocates a zeroed n×n table. Builders fill it before it escapes.
func newDistance(n int) *Distance {
	return &Distance{n: n, data: make([]int, n*n)}
}

// distanceErrorf wraps an underlying error with accessor context.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// N returns the order of the table (number of cities).
// Complexity: O(1).
func (d *Distance) N() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns D[row][col] with bounds checking.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (d *Distance) At(row, col int) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return 0, distanceErrorf("At", row, col, ErrOutOfRange)
	}

	return d.data[row*d.n+col], nil
}

// Get returns D[row][col] without bounds checking beyond the slice itself.
// It is the accessor for solver hot loops, where indices come from a validated tour.
func (d *Distance) Get(row, col int) int {
	return d.data[row*d.n+col]
}

// Row returns a copy of row i.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func (d *Distance) Row(i int) ([]int, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= d.n {
		return nil, distanceErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out, nil
}

// String implements fmt.Stringer: one row per line, tab separated.
func (d *Distance) String() string {
	if d == nil || d.n == 0 {
		return "[]"
	}
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%d", d.data[i*d.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
