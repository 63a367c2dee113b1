// Package tsp builds short closed tours through planar cities.
//
// The pipeline is the classic two-stage heuristic:
//
//  1. NearestNeighbor: greedy construction from the lowest city, always moving
//     to the closest unvisited city (ties go to the lowest index).
//  2. TwoOpt: local search that removes two tour edges and reconnects the
//     tour by reversing the segment between them, until no scanned exchange
//     shortens it. Positions i and j with i+j == n-1 are never paired.
//
// TourLength evaluates a tour as a cycle. Solve and SolveWithMatrix chain the
// stages and report the initial and final lengths.
//
// Tours inside this package are open slices of dense city indices (length n,
// the edge back to the first city is implied). Solve maps them to city IDs.
//
// Determinism:
//   - The start city is index 0, the lowest identifier of a city.Set.
//   - Nearest-neighbour ties keep the first index met in ascending scan order.
//   - 2-opt takes the best exchange for the first segment start i that has an
//     improving one, applies it, and rescans from i = 0.
//
// Termination: all distances are integers, so every applied exchange lowers
// the tour length by at least one; the search stops after finitely many swaps.
//
// Complexity:
//   - NearestNeighbor: O(n²) time, O(n) space.
//   - TwoOpt: O(n²) per scan, one scan per applied swap plus a final one.
//   - TourLength: O(n).
package tsp
