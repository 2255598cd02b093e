package bplus

// splitLeaf splits an overfull leaf holding order entries. Entries [0, mid)
// stay, [mid, order) move to a new right sibling whose first key is promoted.
func (t *BPlusTree) splitLeaf(leaf *Node) {
	mid := t.midpoint()

	right := t.newNode(NodeLeaf)
	right.entries = append(right.entries, leaf.entries[mid:]...)
	leaf.entries = leaf.entries[:mid]

	t.linkAfter(leaf, right)

	sepKey := right.entries[0].Key

	if leaf.parent == 0 {
		t.createNewRoot(leaf, sepKey, right)
		return
	}
	t.insertIntoParent(t.nodes.get(leaf.parent), leaf, sepKey, right)
}

// linkAfter puts right immediately after left in their level's sibling chain.
// It is the same for leaves and internal nodes.
func (t *BPlusTree) linkAfter(left, right *Node) {
	right.right = left.right
	if next := t.nodes.get(left.right); next != nil {
		next.left = right.id
	}
	left.right = right.id
	right.left = left.id
}
