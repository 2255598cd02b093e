package bplus

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, order int) *BPlusTree {
	t.Helper()
	tree, err := NewBPlusTree(order)
	require.NoError(t, err)
	return tree
}

func leafKeys(tree *BPlusTree) [][]int {
	var out [][]int
	for _, leaf := range tree.Leaves() {
		keys := make([]int, len(leaf))
		for i, e := range leaf {
			keys[i] = e.Key
		}
		out = append(out, keys)
	}
	return out
}

func TestNewBPlusTreeRejectsSmallOrder(t *testing.T) {
	for _, order := range []int{-1, 0, 1, 2} {
		tree, err := NewBPlusTree(order)
		assert.Nil(t, tree)
		require.Error(t, err)
		assert.True(t, errors.IsNotValid(err), "order %d: %v", order, err)
	}

	tree, err := NewBPlusTree(MinOrder)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.LeafCapacity())
	assert.Equal(t, 1, tree.MinLeafEntries())
	assert.Equal(t, 3, tree.MaxDegree())
}

func TestEmptyTree(t *testing.T) {
	tree := newTestTree(t, 3)

	_, ok := tree.Search(10)
	assert.False(t, ok)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Height())
	assert.False(t, tree.First().Valid())
	assert.False(t, tree.SeekGE(0).Valid())
	assert.NoError(t, tree.Verify())
}

func TestSingleLeafState(t *testing.T) {
	tree := newTestTree(t, 3)
	tree.Insert(20, 200)
	tree.Insert(10, 100)

	assert.Equal(t, NodeID(0), tree.root, "no internal root while one leaf holds everything")
	assert.Equal(t, [][]int{{10, 20}}, leafKeys(tree))
	assert.Equal(t, 1, tree.Height())

	v, ok := tree.Search(10)
	assert.True(t, ok)
	assert.Equal(t, int64(100), v)
	_, ok = tree.Search(15)
	assert.False(t, ok)
	require.NoError(t, tree.Verify())
}

func TestFirstLeafSplitCreatesRoot(t *testing.T) {
	tree := newTestTree(t, 3)
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k, int64(k*10))
	}

	root := tree.nodes.get(tree.root)
	require.NotNil(t, root)
	assert.Equal(t, []int{20}, root.keys)
	assert.Equal(t, [][]int{{10}, {20, 30}}, leafKeys(tree))
	assert.Equal(t, 2, tree.Height())

	v, ok := tree.Search(20)
	assert.True(t, ok)
	assert.Equal(t, int64(200), v)
	require.NoError(t, tree.Verify())
}

func TestInternalSplitPromotesNewRoot(t *testing.T) {
	tree := newTestTree(t, 3)
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k, int64(k*10))
	}

	root := tree.nodes.get(tree.root)
	assert.Equal(t, []int{30}, root.keys)
	assert.Len(t, root.children, 2)
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, [][]int{{10}, {20}, {30}, {40, 50}}, leafKeys(tree))

	left := tree.nodes.get(root.children[0])
	right := tree.nodes.get(root.children[1])
	assert.Equal(t, []int{20}, left.keys)
	assert.Equal(t, []int{40}, right.keys)
	assert.Equal(t, right.id, left.right)
	assert.Equal(t, left.id, right.left)

	for _, k := range []int{10, 20, 30, 40, 50} {
		v, ok := tree.Search(k)
		assert.True(t, ok, "key %d", k)
		assert.Equal(t, int64(k*10), v)
	}
	require.NoError(t, tree.Verify())
}

func TestLeafSplitMidpoint(t *testing.T) {
	// order 4: capacity 3, a full leaf plus one splits 2 | 2
	tree := newTestTree(t, 4)
	for _, k := range []int{1, 2, 3, 4} {
		tree.Insert(k, int64(k))
	}
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, leafKeys(tree))
	assert.Equal(t, []int{3}, tree.nodes.get(tree.root).keys)

	// order 5: capacity 4, five entries split 2 | 3
	tree = newTestTree(t, 5)
	for _, k := range []int{5, 1, 4, 2, 3} {
		tree.Insert(k, int64(k))
	}
	assert.Equal(t, [][]int{{1, 2}, {3, 4, 5}}, leafKeys(tree))
	require.NoError(t, tree.Verify())
}

func TestRoundTripRandomOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, order := range []int{3, 4, 5, 7, 16, 64} {
		tree := newTestTree(t, order)
		keys := rng.Perm(2000)
		for _, k := range keys {
			tree.Insert(k*3, int64(k)*7)
			require.LessOrEqual(t, tree.Len(), len(keys))
		}
		require.NoError(t, tree.Verify(), "order %d", order)
		assert.Equal(t, len(keys), tree.Len())

		for _, k := range keys {
			v, ok := tree.Search(k * 3)
			require.True(t, ok, "order %d key %d", order, k*3)
			assert.Equal(t, int64(k)*7, v)

			// keys not divisible by 3 were never inserted
			_, ok = tree.Search(k*3 + 1)
			assert.False(t, ok)
		}
	}
}

func TestVerifyAfterEveryInsert(t *testing.T) {
	tree := newTestTree(t, 3)
	rng := rand.New(rand.NewSource(7))
	for i, k := range rng.Perm(300) {
		tree.Insert(k, int64(i))
		require.NoError(t, tree.Verify(), "after inserting %d", k)
	}
}

func TestDescendingAndAscendingInserts(t *testing.T) {
	for _, order := range []int{3, 4, 6} {
		asc := newTestTree(t, order)
		desc := newTestTree(t, order)
		for i := 0; i < 500; i++ {
			asc.Insert(i, int64(i))
			desc.Insert(499-i, int64(499-i))
		}
		require.NoError(t, asc.Verify())
		require.NoError(t, desc.Verify())

		for i := 0; i < 500; i++ {
			v, ok := desc.Search(i)
			require.True(t, ok)
			assert.Equal(t, int64(i), v)
		}
	}
}

func TestNegativeKeys(t *testing.T) {
	tree := newTestTree(t, 3)
	for _, k := range []int{0, -5, 5, -10, 10, -1} {
		tree.Insert(k, int64(k))
	}
	require.NoError(t, tree.Verify())

	var got []int
	tree.Ascend(func(e Entry) bool {
		got = append(got, e.Key)
		return true
	})
	assert.Equal(t, []int{-10, -5, -1, 0, 5, 10}, got)
}

func TestSearchIsIdempotent(t *testing.T) {
	tree := newTestTree(t, 4)
	for k := 0; k < 100; k += 2 {
		tree.Insert(k, int64(k)+1)
	}
	for k := -1; k < 102; k++ {
		v1, ok1 := tree.Search(k)
		v2, ok2 := tree.Search(k)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, v1, v2)
	}
}

// Insert trusts the caller for unique keys: a repeated key is stored again
// instead of being rejected or overwritten.
func TestDuplicateKeyIsNotRejected(t *testing.T) {
	tree := newTestTree(t, 3)
	tree.Insert(10, 1)
	tree.Insert(10, 2)

	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, [][]int{{10, 10}}, leafKeys(tree))

	v, ok := tree.Search(10)
	assert.True(t, ok)
	assert.Contains(t, []int64{1, 2}, v)
}

func TestIteratorSeekGE(t *testing.T) {
	tree := newTestTree(t, 3)
	for k := 10; k <= 100; k += 10 {
		tree.Insert(k, int64(k))
	}

	var got []int
	for it := tree.SeekGE(35); it.Valid(); it.Next() {
		got = append(got, it.Key())
		assert.Equal(t, int64(it.Key()), it.Value())
	}
	assert.Equal(t, []int{40, 50, 60, 70, 80, 90, 100}, got)

	it := tree.SeekGE(100)
	require.True(t, it.Valid())
	assert.Equal(t, 100, it.Key())
	assert.False(t, it.Next())
	assert.False(t, it.Valid())

	assert.False(t, tree.SeekGE(101).Valid())
	assert.Equal(t, 10, tree.SeekGE(-5).Key())

	// Ascend stops when fn returns false
	count := 0
	tree.Ascend(func(e Entry) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestLeafChainIsComplete(t *testing.T) {
	tree := newTestTree(t, 5)
	rng := rand.New(rand.NewSource(99))
	keys := rng.Perm(1000)
	for _, k := range keys {
		tree.Insert(k, int64(k))
	}

	prev := -1
	count := 0
	for _, leaf := range tree.Leaves() {
		assert.LessOrEqual(t, len(leaf), tree.LeafCapacity())
		for _, e := range leaf {
			assert.Greater(t, e.Key, prev)
			prev = e.Key
			count++
		}
	}
	assert.Equal(t, len(keys), count)
}

func TestInspectTo(t *testing.T) {
	tree := newTestTree(t, 3)
	var buf bytes.Buffer
	tree.InspectTo(&buf)
	assert.Contains(t, buf.String(), "(empty tree)")

	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k, int64(k))
	}
	buf.Reset()
	tree.InspectTo(&buf)
	out := buf.String()
	assert.Contains(t, out, "order=3 entries=5 height=3")
	assert.Contains(t, out, "INTERNAL keys=[30]")
	assert.Contains(t, out, "Leaf chain: {10} -> {20} -> {30} -> {40,50}")
}

func TestVerifyDetectsCorruption(t *testing.T) {
	tree := newTestTree(t, 3)
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Insert(k, int64(k))
	}
	require.NoError(t, tree.Verify())

	root := tree.nodes.get(tree.root)
	root.keys[0] = 5
	assert.Error(t, tree.Verify())
	root.keys[0] = 30

	leaf := tree.nodes.get(tree.firstLeaf)
	leaf.right = 0
	assert.Error(t, tree.Verify())
}
