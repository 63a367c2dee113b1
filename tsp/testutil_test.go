// Package tsp_test shares small helpers across the *_test.go files of the
// package: instance builders and structural assertions.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nn2opt/city"
	"github.com/katalvlaran/nn2opt/matrix"
	"github.com/katalvlaran/nn2opt/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// rectangle is the 4×3 rectangle; its optimal tour is the perimeter, 14.
var rectangle = []city.City{
	{ID: 0, X: 0, Y: 0},
	{ID: 1, X: 0, Y: 3},
	{ID: 2, X: 4, Y: 3},
	{ID: 3, X: 4, Y: 0},
}

// golden10 is a fixed instance whose 2-opt phase applies six swaps.
var golden10 = []city.City{
	{ID: 0, X: 4, Y: 13}, {ID: 1, X: 9, Y: 19}, {ID: 2, X: 44, Y: 15},
	{ID: 3, X: 31, Y: 1}, {ID: 4, X: 46, Y: 2}, {ID: 5, X: 6, Y: 20},
	{ID: 6, X: 32, Y: 21}, {ID: 7, X: 3, Y: 33}, {ID: 8, X: 44, Y: 30},
	{ID: 9, X: 23, Y: 38},
}

const (
	// seedDet drives the pseudo-random instances of property tests.
	seedDet = int64(20240229)

	// gridSpan bounds random coordinates to [0, gridSpan).
	gridSpan = 1000
)

// -----------------------------------------------------------------------------
// Builders
// -----------------------------------------------------------------------------

// mustSet wraps city.NewSet for valid fixtures.
func mustSet(tb testing.TB, cs []city.City) *city.Set {
	tb.Helper()
	s, err := city.NewSet(cs)
	require.NoError(tb, err)

	return s
}

// mustMatrix builds the Euclidean table of cs.
func mustMatrix(tb testing.TB, cs []city.City) *matrix.Distance {
	tb.Helper()

	return matrix.NewEuclidean(mustSet(tb, cs))
}

// randomCities returns n cities with shuffled, sparse identifiers.
func randomCities(rng *rand.Rand, n int) []city.City {
	ids := rng.Perm(n * 3)[:n]
	cs := make([]city.City, n)
	for i := range cs {
		cs[i] = city.City{ID: ids[i], X: rng.Intn(gridSpan), Y: rng.Intn(gridSpan)}
	}

	return cs
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireLocalOptimum fails if any exchange TwoOpt scans would still shorten
// tour. Pairs with i+j == n-1 are not scanned.
func requireLocalOptimum(tb testing.TB, d *matrix.Distance, tour []int) {
	tb.Helper()
	n := len(tour)
	for i := 0; i < n; i++ {
		prev, ti := tour[(i-1+n)%n], tour[i]
		for j := i + 1; j < n; j++ {
			if i+j == n-1 {
				continue
			}
			tj, next := tour[j], tour[(j+1)%n]
			delta := d.Get(prev, tj) + d.Get(ti, next) - d.Get(prev, ti) - d.Get(tj, next)
			require.GreaterOrEqual(tb, delta, 0, "improving exchange left at (%d,%d)", i, j)
		}
	}
}

// requirePermutation fails unless tour covers [0, n) exactly once.
func requirePermutation(tb testing.TB, tour []int, n int) {
	tb.Helper()
	require.NoError(tb, tsp.ValidatePermutation(tour, n))
}
