package stack

import (
	"slices"

	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"github.com/xvzc/containers/internal/datastruct"
)

var _ datastruct.Sequence[int] = (*Stack[int])(nil)

// Stack is a LIFO container.
type Stack[T comparable] struct {
	s *arraystack.Stack[T]
}

func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{s: arraystack.New[T]()}
}

func (s *Stack[T]) Push(value T) {
	s.s.Push(value)
}

// Pop removes and returns the top element.
// The second result is false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.s.Pop()
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.s.Peek()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.s.Empty()
}

func (s *Stack[T]) Len() int {
	return s.s.Size()
}

func (s *Stack[T]) Clear() {
	s.s.Clear()
}

// Values returns the elements from bottom to top, i.e. in push order.
func (s *Stack[T]) Values() []T {
	values := s.s.Values()
	slices.Reverse(values)
	return values
}
