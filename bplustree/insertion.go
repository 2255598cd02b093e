package bplus

// Insert stores value under key. It cannot fail.
//
// Insert does not look for an existing entry with the same key. Callers that
// need unique keys must check with Search first. A repeated key is kept as an
// extra entry, after which Search and the separator bounds no longer give any
// guarantee for that key.
func (t *BPlusTree) Insert(key int, value int64) {
	e := Entry{Key: key, Value: value}
	t.size++

	// If tree is empty
	if t.IsEmpty() {
		leaf := t.newNode(NodeLeaf)
		leaf.entries = append(leaf.entries, e)
		t.firstLeaf = leaf.id
		return
	}

	leaf := t.findLeaf(key)
	full := t.isLeafFull(leaf)

	i := entryUpperBound(leaf.entries, key)
	leaf.entries = insert(leaf.entries, i, e)

	// the leaf now holds order entries, one past its capacity
	if full {
		t.splitLeaf(leaf)
	}
}
