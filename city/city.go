package city

import (
	"fmt"
	"math"
)

// City is a point on the integer plane identified by a non-negative ID.
type City struct {
	ID int
	X  int
	Y  int
}

// String renders the city as "id(x,y)".
func (c City) String() string {
	return fmt.Sprintf("%d(%d,%d)", c.ID, c.X, c.Y)
}

// Euclid returns the exact Euclidean distance between a and b.
func Euclid(a, b City) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Distance returns the Euclidean distance between a and b rounded to the
// nearest integer, halves away from zero.
//
// Complexity: O(1).
func Distance(a, b City) int {
	return int(math.Round(Euclid(a, b)))
}
