package datastruct

// Sequence is the read side shared by the linear containers
// (linked list, stack, queue and array).
type Sequence[T any] interface {
	// Len returns the number of stored elements.
	Len() int
	// IsEmpty reports whether the container holds no elements.
	IsEmpty() bool
	// Values returns a snapshot of the elements in the container's
	// natural order. The returned slice is owned by the caller.
	Values() []T
}
