package city

import "errors"

var (
	// ErrNegativeID is returned by NewSet when a city has an identifier below zero.
	ErrNegativeID = errors.New("city: negative identifier")

	// ErrDuplicateID is returned by NewSet when two cities share an identifier.
	ErrDuplicateID = errors.New("city: duplicate identifier")
)
