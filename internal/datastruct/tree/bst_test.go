package tree

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTreeFrom(values ...int) *BinarySearchTree[int] {
	t := NewBinarySearchTree[int]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

func TestBinarySearchTree_Scenario(t *testing.T) {
	bst := newTreeFrom(10, 5, 15, 3, 7, 13, 17)

	assert.Equal(t, []int{3, 5, 7, 10, 13, 15, 17}, slices.Collect(bst.InOrder()))
	assert.Equal(t, []int{10, 5, 3, 7, 15, 13, 17}, slices.Collect(bst.PreOrder()))
	assert.Equal(t, []int{3, 7, 5, 13, 17, 15, 10}, slices.Collect(bst.PostOrder()))
	assert.Equal(t, 2, bst.Height())

	minVal, ok := bst.FindMin()
	assert.True(t, ok)
	assert.Equal(t, 3, minVal)

	maxVal, ok := bst.FindMax()
	assert.True(t, ok)
	assert.Equal(t, 17, maxVal)

	assert.True(t, bst.Search(7))
	assert.False(t, bst.Search(8))
}

func TestNode_MinMax(t *testing.T) {
	bst := newTreeFrom(10, 5, 15, 3, 7, 13, 17)

	tcs := []struct {
		name    string
		node    *Node[int]
		wantMin int
		wantMax int
		wantOk  bool
	}{
		{name: "root", node: bst.Root(), wantMin: 3, wantMax: 17, wantOk: true},
		{name: "left subtree", node: bst.Root().Left(), wantMin: 3, wantMax: 7, wantOk: true},
		{name: "right subtree", node: bst.Root().Right(), wantMin: 13, wantMax: 17, wantOk: true},
		{name: "leaf", node: bst.Root().Right().Left(), wantMin: 13, wantMax: 13, wantOk: true},
		{name: "nil node", node: nil, wantOk: false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			minVal, ok := tc.node.Min()
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.wantMin, minVal)

			maxVal, ok := tc.node.Max()
			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.wantMax, maxVal)
		})
	}
}

func TestBinarySearchTree_Empty(t *testing.T) {
	bst := NewBinarySearchTree[string]()

	assert.True(t, bst.IsEmpty())
	assert.Nil(t, bst.Root())
	assert.Equal(t, -1, bst.Height())
	assert.False(t, bst.Search(""))
	assert.Empty(t, slices.Collect(bst.InOrder()))
	assert.Empty(t, slices.Collect(bst.PreOrder()))
	assert.Empty(t, slices.Collect(bst.PostOrder()))

	v, ok := bst.FindMin()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	v, ok = bst.FindMax()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestBinarySearchTree_Insert(t *testing.T) {
	tcs := []struct {
		name   string
		input  []int
		assert func(t *testing.T, bst *BinarySearchTree[int])
	}{
		{
			name:  "single value becomes root",
			input: []int{42},
			assert: func(t *testing.T, bst *BinarySearchTree[int]) {
				require.NotNil(t, bst.Root())
				assert.Equal(t, 42, bst.Root().Value())
				assert.Nil(t, bst.Root().Left())
				assert.Nil(t, bst.Root().Right())
				assert.Equal(t, 0, bst.Height())
			},
		},
		{
			name:  "duplicates go right",
			input: []int{5, 5, 5},
			assert: func(t *testing.T, bst *BinarySearchTree[int]) {
				root := bst.Root()
				require.NotNil(t, root)
				assert.Nil(t, root.Left())
				require.NotNil(t, root.Right())
				assert.Equal(t, 5, root.Right().Value())
				require.NotNil(t, root.Right().Right())
				assert.Equal(t, 5, root.Right().Right().Value())
				assert.Equal(t, []int{5, 5, 5}, slices.Collect(bst.InOrder()))
				assert.Equal(t, 2, bst.Height())
			},
		},
		{
			name:  "smaller values go left",
			input: []int{5, 4, 6},
			assert: func(t *testing.T, bst *BinarySearchTree[int]) {
				root := bst.Root()
				require.NotNil(t, root)
				require.NotNil(t, root.Left())
				require.NotNil(t, root.Right())
				assert.Equal(t, 4, root.Left().Value())
				assert.Equal(t, 6, root.Right().Value())
			},
		},
		{
			name:  "ascending insertion degenerates into a chain",
			input: []int{1, 2, 3, 4, 5},
			assert: func(t *testing.T, bst *BinarySearchTree[int]) {
				assert.Equal(t, 4, bst.Height())
				assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(bst.PreOrder()))
				assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(bst.PostOrder()))
			},
		},
		{
			name:  "descending insertion degenerates into a chain",
			input: []int{5, 4, 3, 2, 1},
			assert: func(t *testing.T, bst *BinarySearchTree[int]) {
				assert.Equal(t, 4, bst.Height())
				assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(bst.InOrder()))
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, newTreeFrom(tc.input...))
		})
	}
}

func TestBinarySearchTree_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(200)
		inserted := make(map[int]struct{}, n)
		values := make([]int, 0, n)
		for i := 0; i < n; i++ {
			// Even numbers only, so every odd number is a guaranteed miss.
			v := r.Intn(100) * 2
			values = append(values, v)
			inserted[v] = struct{}{}
		}

		bst := newTreeFrom(values...)

		ordered := slices.Collect(bst.InOrder())
		assert.Len(t, ordered, n)
		assert.True(t, slices.IsSorted(ordered), "in-order must be non-decreasing")

		for v := range inserted {
			assert.True(t, bst.Search(v), "inserted value %d must be found", v)
			assert.False(t, bst.Search(v+1), "value %d was never inserted", v+1)
		}

		lower := int(math.Ceil(math.Log2(float64(n+1)))) - 1
		h := bst.Height()
		assert.GreaterOrEqual(t, h, lower)
		assert.LessOrEqual(t, h, n-1)

		sorted := slices.Clone(values)
		slices.Sort(sorted)

		minVal, _ := bst.FindMin()
		maxVal, _ := bst.FindMax()
		assert.Equal(t, sorted[0], minVal)
		assert.Equal(t, sorted[len(sorted)-1], maxVal)
	}
}

func TestBinarySearchTree_Traversals(t *testing.T) {
	bst := newTreeFrom(10, 5, 15, 3, 7, 13, 17)

	t.Run("restartable", func(t *testing.T) {
		seq := bst.InOrder()
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)
	})

	t.Run("early termination", func(t *testing.T) {
		var got []int
		for v := range bst.InOrder() {
			got = append(got, v)
			if len(got) == 3 {
				break
			}
		}
		assert.Equal(t, []int{3, 5, 7}, got)

		got = got[:0]
		for v := range bst.PreOrder() {
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{10, 5}, got)

		got = got[:0]
		for v := range bst.PostOrder() {
			got = append(got, v)
			if len(got) == 4 {
				break
			}
		}
		assert.Equal(t, []int{3, 7, 5, 13}, got)
	})

	t.Run("does not mutate", func(t *testing.T) {
		_ = slices.Collect(bst.PostOrder())
		assert.Equal(t, []int{10, 5, 3, 7, 15, 13, 17}, slices.Collect(bst.PreOrder()))
		assert.Equal(t, 2, bst.Height())
	})
}

func TestBinarySearchTree_DeepChain(t *testing.T) {
	const n = 5000

	bst := NewBinarySearchTree[int]()
	for i := 0; i < n; i++ {
		bst.Insert(i)
	}

	assert.Equal(t, n-1, bst.Height())
	assert.True(t, bst.Search(n-1))

	count := 0
	for range bst.PostOrder() {
		count++
	}
	assert.Equal(t, n, count)
}
