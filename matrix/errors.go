// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All builders and validators return these sentinels (optionally wrapped with
// context via %w); tests match them with errors.Is.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Distance was passed where a table is required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that a row or column index is outside [0, N()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that an ingested table is not n×n.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that D[i][j] != D[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals that D[i][i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeWeight signals a negative distance.
	ErrNegativeWeight = errors.New("matrix: negative distance")
)
