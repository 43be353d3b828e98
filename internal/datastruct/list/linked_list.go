package list

import (
	"iter"

	"github.com/xvzc/containers/internal/datastruct"
)

var _ datastruct.Sequence[int] = (*LinkedList[int])(nil)

// listNode is a single link of the chain. Each node owns its successor.
type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// LinkedList is a singly linked list with O(1) insertion and removal at
// the head. Operations at the tail walk the whole chain.
type LinkedList[T any] struct {
	head *listNode[T]
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// AddFirst prepends value.
func (l *LinkedList[T]) AddFirst(value T) {
	l.head = &listNode[T]{value: value, next: l.head}
	l.size++
}

// AddLast appends value.
func (l *LinkedList[T]) AddLast(value T) {
	n := &listNode[T]{value: value}
	l.size++

	if l.head == nil {
		l.head = n
		return
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// RemoveFirst detaches the head and returns its value.
// The second result is false if the list is empty.
func (l *LinkedList[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	n := l.head
	l.head = n.next
	l.size--

	return n.value, true
}

// RemoveLast detaches the tail and returns its value.
// The second result is false if the list is empty.
func (l *LinkedList[T]) RemoveLast() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	if l.head.next == nil {
		return l.RemoveFirst()
	}

	// Stop at the node right before the tail.
	cur := l.head
	for cur.next.next != nil {
		cur = cur.next
	}

	tail := cur.next
	cur.next = nil
	l.size--

	return tail.value, true
}

// Get returns the value at index, counting from the head.
func (l *LinkedList[T]) Get(index int) (T, bool) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, false
	}

	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}

	return cur.value, true
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Values returns the elements from head to tail.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// All yields the elements from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}
