// Package mutate defines sentinel errors for the in-place tree
// transforms: Prune, SquareLabels, and MapLabels.
package mutate

import "errors"

var (
	// ErrNilTree is returned when a nil root is passed to Prune,
	// SquareLabels, or MapLabels.
	ErrNilTree = errors.New("mutate: tree is nil")

	// ErrNegativeLimit indicates a negative branch limit passed to Prune.
	// The limit is a non-negative count applied uniformly at every depth.
	ErrNegativeLimit = errors.New("mutate: branch limit must be non-negative")

	// ErrNilTransform indicates a nil label transform passed to MapLabels.
	ErrNilTransform = errors.New("mutate: transform must be non-nil")
)
