package bplus

// Iterator provides a forward-only scan over the leaf chain.
type Iterator struct {
	tree  *BPlusTree
	leaf  *Node
	index int
	valid bool
}

// First positions the iterator at the smallest key.
func (t *BPlusTree) First() *Iterator {
	it := &Iterator{tree: t}
	leaf := t.nodes.get(t.firstLeaf)
	if leaf == nil || len(leaf.entries) == 0 {
		return it
	}
	it.leaf = leaf
	it.valid = true
	return it
}

// SeekGE positions the iterator at the first key >= target.
func (t *BPlusTree) SeekGE(target int) *Iterator {
	it := &Iterator{tree: t}
	if t.IsEmpty() {
		return it
	}
	leaf := t.findLeaf(target)
	i := lowerBound(leaf.entries, target)
	if i >= len(leaf.entries) {
		// move to next leaf if present
		leaf = t.nodes.get(leaf.right)
		if leaf == nil || len(leaf.entries) == 0 {
			return it
		}
		i = 0
	}
	it.leaf = leaf
	it.index = i
	it.valid = true
	return it
}

func (it *Iterator) Valid() bool {
	return it.valid
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	if it.index < len(it.leaf.entries) {
		return true
	}
	// move to next leaf
	next := it.tree.nodes.get(it.leaf.right)
	if next == nil || len(next.entries) == 0 {
		it.valid = false
		return false
	}
	it.leaf = next
	it.index = 0
	return true
}

// Key returns the current key.
func (it *Iterator) Key() int {
	if !it.valid {
		return 0
	}
	return it.leaf.entries[it.index].Key
}

// Value returns the current value.
func (it *Iterator) Value() int64 {
	if !it.valid {
		return 0
	}
	return it.leaf.entries[it.index].Value
}

// Ascend calls fn for every entry in key order until fn returns false.
func (t *BPlusTree) Ascend(fn func(e Entry) bool) {
	for it := t.First(); it.Valid(); it.Next() {
		if !fn(it.leaf.entries[it.index]) {
			return
		}
	}
}

// Leaves returns a copy of every leaf's entries, following the leaf chain.
func (t *BPlusTree) Leaves() [][]Entry {
	var out [][]Entry
	for leaf := t.nodes.get(t.firstLeaf); leaf != nil; leaf = t.nodes.get(leaf.right) {
		out = append(out, append([]Entry(nil), leaf.entries...))
	}
	return out
}
