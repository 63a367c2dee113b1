// Package nn2opt is a small toolkit for approximating Euclidean travelling
// salesman tours over 2-D integer cities.
//
// What is nn2opt?
//
//	A deterministic, dependency-light pipeline:
//		• city   - City values and an ID-ordered set with dense indices
//		• matrix - immutable rounded Euclidean distance table + validators
//		• tsp    - nearest-neighbour construction, 2-opt refinement, tour length
//		• tourio - "id x y" city files in, tour files out
//
// The command in cmd/nn2opt wires these together:
//
//	nn2opt [--suffix .tour] [--log-level info] [--no-opt] <input-file>
//
// Quick example:
//
//	res, err := tsp.SolveCities([]city.City{
//		{ID: 0, X: 0, Y: 0}, {ID: 1, X: 0, Y: 3},
//		{ID: 2, X: 4, Y: 3}, {ID: 3, X: 4, Y: 0},
//	}, tsp.DefaultOptions())
//	// res.Tour == [0 1 2 3], res.Length == 14
//
// Determinism: the same cities always produce the same tour. The tour starts
// at the lowest city ID, ties prefer the lowest index, and 2-opt applies the
// best exchange for the first improving position before rescanning.
package nn2opt
