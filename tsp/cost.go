package tsp

import "github.com/katalvlaran/nn2opt/matrix"

// TourLength returns the cyclic length of tour: the sum of
// d[tour[k]][tour[(k+1) mod n]] over all positions k. An empty tour has
// length 0, a single city has length d[c][c] == 0.
//
// Complexity: O(n).
func TourLength(d *matrix.Distance, tour []int) int {
	n := len(tour)
	if n == 0 {
		return 0
	}
	var (
		sum  int
		k    int
		last = tour[n-1]
	)
	sum = d.Get(last, tour[0])
	for k = 0; k+1 < n; k++ {
		sum += d.Get(tour[k], tour[k+1])
	}

	return sum
}
