// Package tsp - pipeline entry points.
//
//   - Solve: city.Set → distance table → nearest neighbour → 2-opt, tour in IDs.
//   - SolveCities: Solve over a raw city slice (validated through city.NewSet).
//   - SolveWithMatrix: the same stages on a prebuilt table, tour in dense indices.
package tsp

import (
	"github.com/katalvlaran/nn2opt/city"
	"github.com/katalvlaran/nn2opt/matrix"
)

// Solve runs the full heuristic on set and returns the tour as city IDs.
//
// Errors: ErrNilSet. Empty and single-city sets are valid: they yield an empty
// tour and a one-city tour, both of length 0.
//
// Complexity: O(n²) to build the table plus the cost of SolveWithMatrix.
func Solve(set *city.Set, opts Options) (Result, error) {
	if set == nil {
		return Result{}, ErrNilSet
	}

	res, err := SolveWithMatrix(matrix.NewEuclidean(set), opts)
	if err != nil {
		return Result{}, err
	}
	res.Tour = set.ToIDs(res.Tour)

	return res, nil
}

// SolveCities validates cities into a city.Set and delegates to Solve.
//
// Errors: city.ErrNegativeID, city.ErrDuplicateID.
func SolveCities(cities []city.City, opts Options) (Result, error) {
	set, err := city.NewSet(cities)
	if err != nil {
		return Result{}, err
	}

	return Solve(set, opts)
}

// SolveWithMatrix runs nearest neighbour and, unless opts.SkipTwoOpt, 2-opt on
// a prebuilt distance table. The returned tour holds dense indices.
//
// Errors: ErrNilMatrix.
func SolveWithMatrix(d *matrix.Distance, opts Options) (Result, error) {
	if d == nil {
		return Result{}, ErrNilMatrix
	}

	tour := NearestNeighbor(d)
	res := Result{InitialLength: TourLength(d, tour)}

	if !opts.SkipTwoOpt {
		res.Stats = TwoOpt(d, tour, opts)
	}
	res.Tour = tour
	res.Length = TourLength(d, tour)

	return res, nil
}
