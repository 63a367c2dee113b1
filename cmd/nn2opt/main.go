// Command nn2opt computes a short closed tour through the cities of a text
// file with nearest-neighbour construction and 2-opt refinement.
//
// Usage:
//
//	nn2opt [flags] <input-file>
//
// The tour is written to <input-file><suffix> (".tour" by default): the tour
// length first, then one city ID per line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nn2opt: %v\n", err)
		os.Exit(1)
	}
}
