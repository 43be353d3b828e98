package ptr

import "slices"

// Clone returns a pointer to a copy of *x, or nil.
func Clone[T any](x *T) *T {
	if x == nil {
		return nil
	}

	v := *x
	return &v
}

// CloneOr clones x, falling back to a clone of fallback when x is nil.
func CloneOr[T any](x *T, fallback *T) *T {
	if x == nil {
		return Clone(fallback)
	}

	return Clone(x)
}

// CloneSlice returns a shallow copy of x. A nil slice stays nil and an
// empty slice stays empty, so "unset" and "explicitly empty" survive a clone.
func CloneSlice[T any](x []T) []T {
	return slices.Clone(x)
}

func CloneSliceOr[T any](x []T, fallback []T) []T {
	if x == nil {
		return CloneSlice(fallback)
	}

	return CloneSlice(x)
}

func FromValue[T any](v T) *T {
	return &v
}

// FromPtr dereferences x, yielding the zero value for nil.
func FromPtr[T any](x *T) T {
	if x == nil {
		var zero T
		return zero
	}

	return *x
}

func FromPtrOr[T any](x *T, v T) T {
	if x == nil {
		return v
	}

	return *x
}
