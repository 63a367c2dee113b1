package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseSegment(t *testing.T) {
	cases := []struct {
		name string
		i, j int
		want []int
	}{
		{"whole", 0, 5, []int{5, 4, 3, 2, 1, 0}},
		{"inner even", 1, 4, []int{0, 4, 3, 2, 1, 5}},
		{"inner odd", 2, 4, []int{0, 1, 4, 3, 2, 5}},
		{"pair", 3, 4, []int{0, 1, 2, 4, 3, 5}},
		{"single", 2, 2, []int{0, 1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tour := []int{0, 1, 2, 3, 4, 5}
			reverseSegment(tour, tc.i, tc.j)
			assert.Equal(t, tc.want, tour)
		})
	}
}
