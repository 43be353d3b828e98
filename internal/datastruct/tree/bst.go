package tree

import (
	"iter"

	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

var _ SearchTree[int] = (*BinarySearchTree[int])(nil)

// Node is a single element of a BinarySearchTree.
// Every node exclusively owns its children; nodes are never shared
// between trees or between parents.
type Node[T constraints.Ordered] struct {
	value T

	// left holds values strictly less than value.
	left *Node[T]

	// right holds values greater than or equal to value.
	right *Node[T]
}

func newNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Min returns the smallest value in the subtree rooted at n.
// It is safe to call on a nil node, which reports false.
func (n *Node[T]) Min() (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}

	for n.left != nil {
		n = n.left
	}

	return n.value, true
}

// Max returns the largest value in the subtree rooted at n.
func (n *Node[T]) Max() (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}

	for n.right != nil {
		n = n.right
	}

	return n.value, true
}

// BinarySearchTree is an unbalanced binary search tree.
// Values equal to a node's value are routed to its right subtree,
// so an in-order walk always yields a non-decreasing sequence.
//
// All operations are iterative; sorted insertion degrades the tree into
// a chain of right children and no recursion depth is spent on it.
//
// A BinarySearchTree is not safe for concurrent use.
type BinarySearchTree[T constraints.Ordered] struct {
	root *Node[T]
}

// NewBinarySearchTree creates an empty tree.
func NewBinarySearchTree[T constraints.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

// Root returns the root node, or nil if the tree is empty.
func (t *BinarySearchTree[T]) Root() *Node[T] {
	return t.root
}

func (t *BinarySearchTree[T]) IsEmpty() bool {
	return t.root == nil
}

// Insert places value in the first free slot found by descending from the root.
func (t *BinarySearchTree[T]) Insert(value T) {
	if t.root == nil {
		t.root = newNode(value)
		return
	}

	n := t.root
	for {
		if value < n.value {
			if n.left == nil {
				n.left = newNode(value)
				return
			}
			n = n.left
			continue
		}

		if n.right == nil {
			n.right = newNode(value)
			return
		}
		n = n.right
	}
}

// Search reports whether value is stored in the tree.
func (t *BinarySearchTree[T]) Search(value T) bool {
	n := t.root
	for n != nil {
		if value == n.value {
			return true
		}

		if value < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}

	return false
}

func (t *BinarySearchTree[T]) FindMin() (T, bool) {
	return t.root.Min()
}

func (t *BinarySearchTree[T]) FindMax() (T, bool) {
	return t.root.Max()
}

// Height counts the levels below the root with a breadth-first walk.
// The result equals 1 + max(height(left), height(right)) with an empty
// subtree counted as -1.
func (t *BinarySearchTree[T]) Height() int {
	if t.root == nil {
		return -1
	}

	q := arrayqueue.New[*Node[T]]()
	q.Enqueue(t.root)

	height := -1
	for !q.Empty() {
		height++

		// Drain exactly one level.
		for levelSize := q.Size(); levelSize > 0; levelSize-- {
			n, _ := q.Dequeue()
			if n.left != nil {
				q.Enqueue(n.left)
			}
			if n.right != nil {
				q.Enqueue(n.right)
			}
		}
	}

	return height
}

// InOrder yields values as left subtree, node, right subtree.
func (t *BinarySearchTree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := arraystack.New[*Node[T]]()
		n := t.root

		for n != nil || !s.Empty() {
			for n != nil {
				s.Push(n)
				n = n.left
			}

			n, _ = s.Pop()
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// PreOrder yields values as node, left subtree, right subtree.
func (t *BinarySearchTree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}

		s := arraystack.New[*Node[T]]()
		s.Push(t.root)

		for !s.Empty() {
			n, _ := s.Pop()
			if !yield(n.value) {
				return
			}

			// Right goes first so that left is popped first.
			if n.right != nil {
				s.Push(n.right)
			}
			if n.left != nil {
				s.Push(n.left)
			}
		}
	}
}

// PostOrder yields values as left subtree, right subtree, node.
func (t *BinarySearchTree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := arraystack.New[*Node[T]]()
		var last *Node[T]
		n := t.root

		for n != nil || !s.Empty() {
			if n != nil {
				s.Push(n)
				n = n.left
				continue
			}

			top, _ := s.Peek()
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}

			s.Pop()
			if !yield(top.value) {
				return
			}
			last = top
		}
	}
}
