package array

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/xvzc/containers/internal/datastruct"
)

var _ datastruct.Sequence[int] = (*Array[int])(nil)

// Array is a growable, index-addressed container.
type Array[T comparable] struct {
	l *arraylist.List[T]
}

func NewArray[T comparable]() *Array[T] {
	return &Array[T]{l: arraylist.New[T]()}
}

// Add appends value.
func (a *Array[T]) Add(value T) {
	a.l.Add(value)
}

// Remove deletes the element at index and returns it, shifting the rest
// left. The second result is false if index is out of range.
func (a *Array[T]) Remove(index int) (T, bool) {
	v, ok := a.l.Get(index)
	if !ok {
		return v, false
	}

	a.l.Remove(index)
	return v, true
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, bool) {
	return a.l.Get(index)
}

// IndexOf returns the index of the first element equal to value, or -1.
func (a *Array[T]) IndexOf(value T) int {
	return a.l.IndexOf(value)
}

func (a *Array[T]) IsEmpty() bool {
	return a.l.Empty()
}

func (a *Array[T]) Len() int {
	return a.l.Size()
}

func (a *Array[T]) Clear() {
	a.l.Clear()
}

func (a *Array[T]) Values() []T {
	return a.l.Values()
}
