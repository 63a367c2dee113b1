package tsp

import "errors"

var (
	// ErrNilSet is returned by Solve when no city set is given.
	ErrNilSet = errors.New("tsp: nil city set")

	// ErrNilMatrix is returned by SolveWithMatrix when no distance table is given.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNotPermutation is returned by ValidatePermutation when a tour repeats,
	// omits or goes outside the dense city indices.
	ErrNotPermutation = errors.New("tsp: tour is not a permutation")
)

// Swap describes one applied 2-opt exchange: tour positions I..J were reversed.
type Swap struct {
	I, J   int // reversed segment, inclusive, I < J
	Delta  int // length change, always negative
	Length int // tour length after the reversal
}

// Stats summarizes a TwoOpt run.
type Stats struct {
	Passes int // scans started, including the final scan that found nothing
	Swaps  int // applied exchanges
	Gain   int // total length removed, the negated sum of all deltas
}

// Options tunes the pipeline. The zero value is the default behavior.
type Options struct {
	// OnSwap, when set, is called after every applied 2-opt exchange.
	// It must not modify the tour.
	OnSwap func(Swap)

	// SkipTwoOpt returns the nearest-neighbour tour without local search.
	SkipTwoOpt bool
}

// DefaultOptions returns the default pipeline options.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of Solve / SolveWithMatrix.
type Result struct {
	// Tour lists city IDs (Solve) or dense indices (SolveWithMatrix) in visit
	// order. The return edge to Tour[0] is implied.
	Tour []int

	// Length is the cyclic length of Tour.
	Length int

	// InitialLength is the length of the nearest-neighbour tour.
	InitialLength int

	// Stats reports the 2-opt phase; zero when it was skipped.
	Stats Stats
}
