// SPDX-License-Identifier: MIT

// Package matrix provides the all-pairs distance table used by the tour solvers.
//
// Distance is a dense, row-major n×n table of non-negative integers indexed by
// dense city index (see city.Set). It is symmetric with a zero diagonal and is
// immutable once built: no exported method writes to it.
//
// Builders:
//   - NewEuclidean: rounded Euclidean distances for every pair of a city.Set.
//   - FromRows:     ingestion of an explicit table, validated on the way in.
//
// Validators (validators.go) are the single source of truth for the structural
// invariants and return plain sentinels from errors.go wrapped with a tag.
//
// Complexity:
//   - NewEuclidean: O(n²) time and memory; only the upper triangle is computed.
//   - At / Get:     O(1).
package matrix
