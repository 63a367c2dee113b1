// Package city defines the planar input of the tour solver: cities with integer
// coordinates and an ordered, immutable set of them.
//
// A Set assigns every city a dense index (its rank in ascending-ID order), so
// distance matrices and tours can be sized by the number of cities instead of by
// the largest identifier. Index 0 always belongs to the lowest identifier.
//
// Distances are Euclidean, rounded to the nearest integer with halves rounded
// away from zero:
//
//	Distance(City{0, 0, 0}, City{1, 3, 4}) == 5
//	Distance(City{0, 0, 0}, City{1, 1, 1}) == 1   // √2 ≈ 1.414
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from errors.go.
//   - A Set is never mutated after NewSet; solvers track visits separately.
package city
