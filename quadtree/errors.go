package quadtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or region.
	ErrInvalidConfig = errors.New("quadtree: invalid configuration")
	// ErrOutOfBounds signals a point outside of the tree's root box.
	ErrOutOfBounds = errors.New("quadtree: point out of bounds")
	// ErrNotFound signals that no entry is stored at a point.
	ErrNotFound = errors.New("quadtree: no entry at point")
	// ErrDescentLimit signals a descent taking more steps than the tree may
	// have levels. It indicates a corrupted tree.
	ErrDescentLimit = errors.New("quadtree: descent limit exceeded")
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("quadtree: invariant violated")
)
