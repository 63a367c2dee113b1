// Package tsp - tour utilities shared by the constructor and the local search.
//
// Provided helpers:
//   - ValidatePermutation: verify a tour covers [0, n) exactly once.
//   - CopyTour: independent copy of a tour slice.
//   - EqualCycles: equality of open tours as cycles (rotation and direction).
//   - reverseSegment: in-place segment reversal, the 2-opt move.
package tsp

import "fmt"

// ValidatePermutation checks that tour is a permutation of {0..n-1}.
//
// Errors: ErrNotPermutation wrapped with the first offending position.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if len(tour) != n {
		return fmt.Errorf("length %d, want %d: %w", len(tour), n, ErrNotPermutation)
	}
	seen := make([]bool, n)

	var (
		k int
		v int
	)
	for k = 0; k < n; k++ {
		v = tour[k]
		if v < 0 || v >= n {
			return fmt.Errorf("position %d: index %d out of range: %w", k, v, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("position %d: index %d repeated: %w", k, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualCycles reports whether open tours a and b describe the same cycle,
// allowing any rotation and either direction.
//
// Complexity: O(n).
func EqualCycles(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	p := -1
	var k int
	for k = 0; k < n; k++ {
		if b[k] == a[0] {
			p = k
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for k = 0; k < n && (forward || backward); k++ {
		if a[k] != b[(p+k)%n] {
			forward = false
		}
		if a[k] != b[(p-k+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// reverseSegment reverses tour[i..j] in place by swapping endpoints inward.
// Requires 0 ≤ i ≤ j < len(tour).
//
// Complexity: O(j−i) time, O(1) space.
func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
