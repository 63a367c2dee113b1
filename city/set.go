package city

import (
	"fmt"
	"slices"
)

// Set is an immutable collection of cities ordered by ascending ID.
//
// The position of a city in that order is its dense index. Solvers work on
// indices in [0, Len()) and translate back with ID.
type Set struct {
	cities []City      // ascending by ID
	index  map[int]int // ID -> dense index
}

// NewSet validates cities and returns them as an ordered Set.
// The input slice is copied; callers may reuse it.
//
// Errors: ErrNegativeID, ErrDuplicateID (wrapped with the offending ID).
//
// Complexity: O(n log n) time, O(n) space.
func NewSet(cities []City) (*Set, error) {
	sorted := make([]City, len(cities))
	copy(sorted, cities)
	slices.SortStableFunc(sorted, func(a, b City) int { return a.ID - b.ID })

	index := make(map[int]int, len(sorted))
	var (
		i int
		c City
	)
	for i, c = range sorted {
		if c.ID < 0 {
			return nil, fmt.Errorf("city %d: %w", c.ID, ErrNegativeID)
		}
		if _, dup := index[c.ID]; dup {
			return nil, fmt.Errorf("city %d: %w", c.ID, ErrDuplicateID)
		}
		index[c.ID] = i
	}

	return &Set{cities: sorted, index: index}, nil
}

// Len returns the number of cities.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.cities)
}

// At returns the city stored at dense index idx. It panics if idx is out of
// range, like slice indexing.
func (s *Set) At(idx int) City {
	return s.cities[idx]
}

// ID returns the identifier of the city at dense index idx.
func (s *Set) ID(idx int) int {
	return s.cities[idx].ID
}

// Index returns the dense index of the city with the given ID.
func (s *Set) Index(id int) (int, bool) {
	idx, ok := s.index[id]

	return idx, ok
}

// IDs returns all identifiers in ascending order.
func (s *Set) IDs() []int {
	ids := make([]int, len(s.cities))
	for i := range s.cities {
		ids[i] = s.cities[i].ID
	}

	return ids
}

// Cities returns a copy of the ordered cities.
func (s *Set) Cities() []City {
	return slices.Clone(s.cities)
}

// ToIDs maps a sequence of dense indices to city identifiers.
// Indices outside [0, Len()) make it panic.
func (s *Set) ToIDs(indices []int) []int {
	ids := make([]int, len(indices))
	for k, idx := range indices {
		ids[k] = s.cities[idx].ID
	}

	return ids
}
