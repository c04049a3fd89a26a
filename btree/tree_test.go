package btree_test

import (
	"math/rand"
	"testing"

	"github.com/mikenye/balancedtrees/btree"
	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, m int) *btree.Tree[int] {
	t.Helper()
	tree, err := btree.New[int](m, order.Natural[int]())
	require.NoError(t, err)
	return tree
}

func TestNewRejectsInvalidOrder(t *testing.T) {
	_, err := btree.New[int](1, order.Natural[int]())
	assert.Error(t, err)
	_, err = btree.New[int](0, order.Natural[int]())
	assert.Error(t, err)
}

func TestInsertAndContains(t *testing.T) {
	tree := newTree(t, 2)
	assert.True(t, tree.Insert(10))
	assert.True(t, tree.Contains(10))
	assert.False(t, tree.Insert(10))
	assert.Equal(t, 1, tree.Size())
}

// S3 — B-tree split propagation (m = 2).
func TestScenarioS3_SplitPropagation(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(k)
	}
	require.NoError(t, tree.IsValid())

	assert.Equal(t, []int{2, 4, 6}, tree.Root().Keys())
	assert.Equal(t, 1, tree.GetHeight())

	leaves := tree.Root().Children()
	require.Len(t, leaves, 4)
	assert.Equal(t, []int{1}, leaves[0].Keys())
	assert.Equal(t, []int{3}, leaves[1].Keys())
	assert.Equal(t, []int{5}, leaves[2].Keys())
	assert.Equal(t, []int{7}, leaves[3].Keys())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Inorder())
}

// S4 — continuing S3, delete(3).
//
// Every leaf produced by S3 holds exactly one key, the minimum for m=2.
// Both of leaf [3]'s siblings ([1] and [5]) are also at the minimum, so
// neither can spare a key to borrow; deletion forces children 0 and 1 to
// merge into [1, 2, 3] before the key is removed, leaving three leaves
// rather than the four a borrow would have produced.
func TestScenarioS4_DeleteForcesMerge(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(k)
	}

	assert.True(t, tree.Delete(3))
	require.NoError(t, tree.IsValid())

	assert.Equal(t, []int{4, 6}, tree.Root().Keys())
	leaves := tree.Root().Children()
	require.Len(t, leaves, 3)
	assert.Equal(t, []int{1, 2}, leaves[0].Keys())
	assert.Equal(t, []int{5}, leaves[1].Keys())
	assert.Equal(t, []int{7}, leaves[2].Keys())

	assert.Equal(t, []int{1, 2, 4, 5, 6, 7}, tree.Inorder())
	assert.False(t, tree.Contains(3))
}

// A borrow is reachable when the donating sibling has more than the
// minimum. Here m=2: insert 10, 20, 30, 40 splits into root [20], left
// [10], right [30, 40]; deleting 10 pulls the separator down and the
// sibling's first key up rather than merging.
func TestBorrowFromRightSibling(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{10, 20, 30, 40} {
		tree.Insert(k)
	}
	require.NoError(t, tree.IsValid())

	assert.True(t, tree.Delete(10))
	require.NoError(t, tree.IsValid())
	assert.Equal(t, []int{30}, tree.Root().Keys())
	assert.Equal(t, []int{10, 20, 30, 40}[1:], tree.Inorder())
}

// Mirror of the above: insert 10, 20, 30, 5 splits into root [20], left
// [5, 10], right [30]; deleting 30 borrows from the left sibling instead.
func TestBorrowFromLeftSibling(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{10, 20, 30, 5} {
		tree.Insert(k)
	}
	require.NoError(t, tree.IsValid())

	assert.True(t, tree.Delete(30))
	require.NoError(t, tree.IsValid())
	assert.Equal(t, []int{10}, tree.Root().Keys())
	assert.Equal(t, []int{5, 10, 20}, tree.Inorder())
}

// Deleting a key resident in an internal node (rather than a leaf) must
// pull in the predecessor or successor from a leaf child without touching
// that leaf's nonexistent children slice. m=2: insert 1, 2, 3, 4 splits
// into root [2], left [1], right [3, 4]; deleting the separator 2 takes
// the right-spare branch, since only the right leaf holds more than the
// minimum.
func TestDeleteSeparatorBorrowsSuccessorFromLeaf(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{1, 2, 3, 4} {
		tree.Insert(k)
	}
	require.NoError(t, tree.IsValid())

	assert.True(t, tree.Delete(2))
	require.NoError(t, tree.IsValid())
	assert.Equal(t, []int{3}, tree.Root().Keys())
	assert.Equal(t, []int{1, 3, 4}, tree.Inorder())
}

// Mirror of the above: insert 10, 20, 30, 5 splits into root [20], left
// [5, 10], right [30]; deleting the separator 20 takes the left-spare
// branch instead, pulling the predecessor up from the left leaf.
func TestDeleteSeparatorBorrowsPredecessorFromLeaf(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{10, 20, 30, 5} {
		tree.Insert(k)
	}
	require.NoError(t, tree.IsValid())

	assert.True(t, tree.Delete(20))
	require.NoError(t, tree.IsValid())
	assert.Equal(t, []int{10}, tree.Root().Keys())
	assert.Equal(t, []int{5, 10, 30}, tree.Inorder())
}

func TestDeleteIdempotent(t *testing.T) {
	tree := newTree(t, 2)
	tree.Insert(1)
	assert.True(t, tree.Delete(1))
	assert.False(t, tree.Delete(1))
	assert.Equal(t, 0, tree.Size())
}

func TestRangeQueryAndCount(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(k)
	}
	assert.Equal(t, []int{3, 4, 5}, tree.RangeQuery(3, 5))
	assert.Equal(t, 3, tree.CountRange(3, 5))
	assert.Empty(t, tree.RangeQuery(10, 5))
}

func TestKthSmallestLargest(t *testing.T) {
	tree := newTree(t, 3)
	keys := []int{12, 5, 2, 9, 18, 15, 19, 13, 17, 20}
	for _, k := range keys {
		tree.Insert(k)
	}
	min, _ := tree.GetMin()
	max, _ := tree.GetMax()

	k1, ok := tree.KthSmallest(1)
	assert.True(t, ok)
	assert.Equal(t, min, k1)

	kn, ok := tree.KthLargest(1)
	assert.True(t, ok)
	assert.Equal(t, max, kn)

	_, ok = tree.KthSmallest(0)
	assert.False(t, ok)
}

// Property: a large random sequence of insertions and deletions at
// several orders keeps every leaf at the same depth and capacity bounds
// satisfied at every node.
func TestRandomInsertDeleteStaysValid(t *testing.T) {
	for _, m := range []int{2, 3, 4} {
		tree := newTree(t, m)
		rng := rand.New(rand.NewSource(int64(m)))
		present := map[int]bool{}

		for i := 0; i < 1000; i++ {
			k := rng.Intn(300)
			if present[k] {
				tree.Delete(k)
				present[k] = false
			} else {
				tree.Insert(k)
				present[k] = true
			}
			require.NoError(t, tree.IsValid())
		}
	}
}

func TestShuffledPermutationInorder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 500
	keys := rng.Perm(n)
	for i := range keys {
		keys[i]++
	}

	tree := newTree(t, 4)
	for _, k := range keys {
		tree.Insert(k)
	}
	require.NoError(t, tree.IsValid())

	inorder := tree.Inorder()
	require.Len(t, inorder, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, i+1, inorder[i])
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9} {
		tree.Insert(k)
	}

	exported := tree.Export()
	rebuilt, err := btree.Import[int](order.Natural[int](), exported, record.Direct[int]())
	require.NoError(t, err)

	assert.Equal(t, tree.Inorder(), rebuilt.Inorder())
	assert.Equal(t, tree.Size(), rebuilt.Size())
	require.NoError(t, rebuilt.IsValid())
}

func TestImportRejectsMissingFields(t *testing.T) {
	_, err := btree.Import[int](order.Natural[int](), record.Map{}, record.Direct[int]())
	assert.Error(t, err)
}

func TestImportViaJSONRoundTrip(t *testing.T) {
	tree := newTree(t, 2)
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6, 8, 7} {
		tree.Insert(k)
	}
	data, err := record.ToJSON(tree.Export())
	require.NoError(t, err)

	m, err := record.FromJSON(data)
	require.NoError(t, err)

	decodeInt := func(v any) (int, bool) {
		f, ok := v.(float64)
		if !ok {
			return 0, false
		}
		return int(f), true
	}
	rebuilt, err := btree.Import[int](order.Natural[int](), m, decodeInt)
	require.NoError(t, err)
	assert.Equal(t, tree.Inorder(), rebuilt.Inorder())
}

func TestClear(t *testing.T) {
	tree := newTree(t, 2)
	tree.Insert(1)
	tree.Insert(2)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, -1, tree.GetHeight())
}
