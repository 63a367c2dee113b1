package city_test

import (
	"testing"

	"github.com/katalvlaran/nn2opt/city"
	"github.com/stretchr/testify/assert"
)

func TestDistance_Rounding(t *testing.T) {
	cases := []struct {
		name string
		a, b city.City
		want int
	}{
		{"same point", city.City{ID: 0}, city.City{ID: 1}, 0},
		{"pythagorean", city.City{X: 0, Y: 0}, city.City{X: 3, Y: 4}, 5},
		{"sqrt2 rounds down", city.City{X: 0, Y: 0}, city.City{X: 1, Y: 1}, 1},
		{"sqrt8 rounds up", city.City{X: 0, Y: 0}, city.City{X: 2, Y: 2}, 3},
		{"negative coordinates", city.City{X: -4, Y: -3}, city.City{X: 0, Y: 0}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, city.Distance(tc.a, tc.b))
			assert.Equal(t, tc.want, city.Distance(tc.b, tc.a))
		})
	}
}

func TestDistance_NoExactHalves(t *testing.T) {
	// dx²+dy² is an integer, so the distance is never k+0.5 and the
	// rounding direction of halves cannot change a result.
	a := city.City{X: 0, Y: 0}
	assert.Equal(t, 2, city.Distance(a, city.City{X: 1, Y: 2})) // √5 ≈ 2.236
	assert.Equal(t, 4, city.Distance(a, city.City{X: 3, Y: 3})) // √18 ≈ 4.243
	assert.Equal(t, 7, city.Distance(a, city.City{X: 5, Y: 5})) // √50 ≈ 7.071
}

func TestCity_String(t *testing.T) {
	assert.Equal(t, "7(-1,3)", city.City{ID: 7, X: -1, Y: 3}.String())
}
