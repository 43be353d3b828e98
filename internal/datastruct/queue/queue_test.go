package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Scenario(t *testing.T) {
	q := NewQueue[int]()
	for _, v := range []int{10, 20, 30, 40, 50} {
		q.Enqueue(v)
	}

	assert.Equal(t, []int{10, 20, 30, 40, 50}, q.Values())

	v, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{20, 30, 40, 50}, q.Values())

	assert.False(t, q.IsEmpty())
	assert.Equal(t, 4, q.Len())

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.Values())
}

func TestQueue_Empty(t *testing.T) {
	q := NewQueue[string]()

	v, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	v, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	v, _ := q.Dequeue()
	assert.Equal(t, 1, v)

	q.Enqueue(3)

	var got []int
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3}, got)
}
