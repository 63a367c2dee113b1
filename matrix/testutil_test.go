// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nn2opt/city"
	"github.com/katalvlaran/nn2opt/matrix"
	"github.com/stretchr/testify/require"
)

// mustSet builds a city.Set from (id, x, y) triples.
func mustSet(tb testing.TB, triples ...[3]int) *city.Set {
	tb.Helper()
	cs := make([]city.City, len(triples))
	for i, tr := range triples {
		cs[i] = city.City{ID: tr[0], X: tr[1], Y: tr[2]}
	}
	s, err := city.NewSet(cs)
	require.NoError(tb, err)

	return s
}

// mustAt reads D[i][j] and fails the test on error.
func mustAt(tb testing.TB, d *matrix.Distance, i, j int) int {
	tb.Helper()
	w, err := d.At(i, j)
	require.NoError(tb, err)

	return w
}
