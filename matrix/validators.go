// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the distance-table invariants.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     match them with errors.Is.
//
// All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the table reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(d *Distance) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSymmetric ensures D[i][j] == D[j][i] for all i < j.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	var (
		n    = d.n
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] != d.data[j*n+i] {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures D[i][i] == 0 for all i.
// Complexity: O(n).
func ValidateZeroDiagonal(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	var i int
	for i = 0; i < d.n; i++ {
		if d.data[i*d.n+i] != 0 {
			return validatorErrorf("ValidateZeroDiagonal", fmt.Errorf("(%d,%d): %w", i, i, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateNonNegative ensures every entry is >= 0.
// Complexity: O(n²).
func ValidateNonNegative(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	for k, w := range d.data {
		if w < 0 {
			return validatorErrorf("ValidateNonNegative", fmt.Errorf("(%d,%d): %w", k/d.n, k%d.n, ErrNegativeWeight))
		}
	}

	return nil
}
