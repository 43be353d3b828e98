package queue

import (
	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/xvzc/containers/internal/datastruct"
)

var _ datastruct.Sequence[int] = (*Queue[int])(nil)

// Queue is a FIFO container.
type Queue[T comparable] struct {
	q *arrayqueue.Queue[T]
}

func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{q: arrayqueue.New[T]()}
}

// Enqueue adds value at the back.
func (q *Queue[T]) Enqueue(value T) {
	q.q.Enqueue(value)
}

// Dequeue removes and returns the front element.
// The second result is false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.q.Dequeue()
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.q.Peek()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.q.Empty()
}

func (q *Queue[T]) Len() int {
	return q.q.Size()
}

func (q *Queue[T]) Clear() {
	q.q.Clear()
}

// Values returns the elements from front to back.
func (q *Queue[T]) Values() []T {
	return q.q.Values()
}
