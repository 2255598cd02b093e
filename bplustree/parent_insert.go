package bplus

// insertIntoParent inserts sepKey and right into parent, right after left.
// If the parent becomes overfull it is split and the split propagates upward.
func (t *BPlusTree) insertIntoParent(parent *Node, left *Node, sepKey int, right *Node) {
	// find index of left in parent's children
	idx := parent.childIndex(left.id)

	// keys: insert at idx, children: insert right at idx+1
	parent.keys = insert(parent.keys, idx, sepKey)
	parent.children = insert(parent.children, idx+1, right.id)
	right.parent = parent.id

	if t.isOverfull(parent) {
		t.splitInternal(parent)
	}
}
