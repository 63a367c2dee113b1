// Package tsp - 2-opt local search.
//
// TwoOpt refines a tour in place. For segment start i and end j (i < j) with
// cyclic neighbours a = T[i-1] and b = T[j+1], reversing T[i..j] replaces the
// edges (a,T[i]) and (T[j],b) with (a,T[j]) and (T[i],b):
//
//	Δ = w(a,T[j]) + w(T[i],b) − w(a,T[i]) − w(T[j],b)
//
// Scan policy:
//   - For each i in ascending order, find the most negative Δ over all j
//     (the first j wins ties).
//   - If it is negative, reverse T[i..j] and restart the scan from i = 0.
//   - A scan that applies nothing ends the search.
//
// Pairs with i + j = n − 1 are skipped. That excludes the wrap pair
// (0, n−1), whose two "edges" are the same edge. Pairs with j − i = n − 2 are
// still scanned; their Δ is always 0, so they are never applied. Interior
// pairs on the i + j = n − 1 diagonal, such as (1, 2) at n = 4, are never
// considered, which can leave a tour that a full 2-opt would still improve.
package tsp

import "github.com/katalvlaran/nn2opt/matrix"

// TwoOpt improves tour in place until no scanned exchange shortens it and
// returns run stats.
//
// Contract:
//   - tour is a permutation of [0, d.N()) (see ValidatePermutation).
//   - No iteration cap: the loop ends because each swap lowers an integer length.
//
// Tours with fewer than four cities have no exchange that changes the cycle
// and are returned untouched with zero Stats.
//
// Complexity: O(n²) per scan; O(j−i) per applied swap.
func TwoOpt(d *matrix.Distance, tour []int, opts Options) Stats {
	var st Stats
	n := len(tour)
	if n < 4 {
		return st
	}

	length := TourLength(d, tour)

	var (
		i, j      int
		prev, ti  int
		tj, next  int
		wPrevI    int
		delta     int
		bestDelta int
		bestJ     int
		improved  bool
	)
	for {
		st.Passes++
		improved = false

		for i = 0; i < n; i++ {
			prev = tour[(i-1+n)%n]
			ti = tour[i]
			wPrevI = d.Get(prev, ti)

			bestDelta, bestJ = 0, -1
			for j = i + 1; j < n; j++ {
				// Mirror diagonal; includes the wrap pair (0, n-1).
				if i+j == n-1 {
					continue
				}
				tj = tour[j]
				next = tour[(j+1)%n]
				delta = d.Get(prev, tj) + d.Get(ti, next) - wPrevI - d.Get(tj, next)
				if delta < bestDelta {
					bestDelta, bestJ = delta, j
				}
			}

			if bestDelta < 0 {
				reverseSegment(tour, i, bestJ)
				length += bestDelta
				st.Swaps++
				st.Gain -= bestDelta
				if opts.OnSwap != nil {
					opts.OnSwap(Swap{I: i, J: bestJ, Delta: bestDelta, Length: length})
				}
				improved = true

				break
			}
		}

		if !improved {
			return st
		}
	}
}
