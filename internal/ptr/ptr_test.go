package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone(t *testing.T) {
	val := 10
	tcs := []struct {
		name   string
		input  *int
		assert func(t *testing.T, output *int)
	}{
		{
			name:  "nil input",
			input: nil,
			assert: func(t *testing.T, output *int) {
				assert.Nil(t, output)
			},
		},
		{
			name:  "non-nil input",
			input: &val,
			assert: func(t *testing.T, output *int) {
				assert.NotNil(t, output)
				assert.Equal(t, val, *output)
				assert.NotSame(t, &val, output)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, Clone(tc.input))
		})
	}
}

func TestCloneOr(t *testing.T) {
	val := 10
	fallbackVal := 5

	tcs := []struct {
		name     string
		input    *int
		fallback *int
		assert   func(t *testing.T, output *int)
	}{
		{
			name:     "nil input with fallback",
			input:    nil,
			fallback: &fallbackVal,
			assert: func(t *testing.T, output *int) {
				assert.NotNil(t, output)
				assert.Equal(t, fallbackVal, *output)
				assert.NotSame(t, &fallbackVal, output)
			},
		},
		{
			name:     "nil input and nil fallback",
			input:    nil,
			fallback: nil,
			assert: func(t *testing.T, output *int) {
				assert.Nil(t, output)
			},
		},
		{
			name:     "non-nil input",
			input:    &val,
			fallback: &fallbackVal,
			assert: func(t *testing.T, output *int) {
				assert.Equal(t, val, *output)
				assert.NotSame(t, &val, output)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, CloneOr(tc.input, tc.fallback))
		})
	}
}

func TestCloneSlice(t *testing.T) {
	tcs := []struct {
		name   string
		input  []int
		assert func(t *testing.T, input []int, output []int)
	}{
		{
			name:  "nil input",
			input: nil,
			assert: func(t *testing.T, input []int, output []int) {
				assert.Nil(t, output)
			},
		},
		{
			name:  "empty input",
			input: []int{},
			assert: func(t *testing.T, input []int, output []int) {
				assert.NotNil(t, output)
				assert.Empty(t, output)
			},
		},
		{
			name:  "non-empty input",
			input: []int{1, 2, 3},
			assert: func(t *testing.T, input []int, output []int) {
				assert.Equal(t, []int{1, 2, 3}, output)
				assert.NotSame(t, &input[0], &output[0])
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, tc.input, CloneSlice(tc.input))
		})
	}
}

func TestCloneSliceOr(t *testing.T) {
	assert.Equal(t, []int{1}, CloneSliceOr(nil, []int{1}))
	assert.Equal(t, []int{2}, CloneSliceOr([]int{2}, []int{1}))
	assert.Equal(t, []int{}, CloneSliceOr([]int{}, []int{1}))
	assert.Nil(t, CloneSliceOr[int](nil, nil))
}

func TestFromPtr(t *testing.T) {
	val := 10

	assert.Equal(t, 0, FromPtr[int](nil))
	assert.Equal(t, val, FromPtr(&val))
	assert.Equal(t, 100, FromPtrOr(nil, 100))
	assert.Equal(t, val, FromPtrOr(&val, 100))
	assert.Equal(t, val, *FromValue(val))
}
