package tree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// SearchTree defines an ordered tree keyed by the stored values themselves.
type SearchTree[T constraints.Ordered] interface {
	// Insert adds a value to the tree. Duplicates are allowed.
	Insert(value T)
	// Search reports whether an exactly equal value is stored in the tree.
	Search(value T) bool
	// FindMin returns the smallest value, or false if the tree is empty.
	FindMin() (T, bool)
	// FindMax returns the largest value, or false if the tree is empty.
	FindMax() (T, bool)
	// Height returns the number of edges on the longest root-to-leaf path.
	// An empty tree has height -1.
	Height() int

	InOrder() iter.Seq[T]
	PreOrder() iter.Seq[T]
	PostOrder() iter.Seq[T]
}
