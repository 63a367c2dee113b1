package tsp

import (
	"math"

	"github.com/katalvlaran/nn2opt/matrix"
)

// NearestNeighbor builds a tour greedily: start at index 0, then repeatedly
// append the unvisited city closest to the last one placed.
//
// Ties are broken by the ascending scan: a later candidate replaces the best
// only when strictly closer, so the lowest index wins. Visited cities are
// tracked in a marker slice; d is only read.
//
// Returns an empty tour for n == 0 and [0] for n == 1.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(d *matrix.Distance) []int {
	n := d.N()
	tour := make([]int, 0, n)
	if n == 0 {
		return tour
	}

	visited := make([]bool, n)
	cur := 0
	visited[cur] = true
	tour = append(tour, cur)

	var (
		c, w    int
		next    int
		nearest int
	)
	for len(tour) < n {
		next, nearest = -1, math.MaxInt
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			w = d.Get(cur, c)
			if w < nearest {
				next, nearest = c, w
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	return tour
}
