package bplus

// splitInternal splits an overfull internal node (degree == order+1) and
// promotes the middle key.
func (t *BPlusTree) splitInternal(node *Node) {
	// mid is the index of the key to promote
	mid := t.midpoint()
	promote := node.keys[mid]

	// keys: left keeps [0:mid), promote key[mid], right gets (mid, end]
	// children: left keeps [0:mid], right gets [mid+1:]
	right := t.newNode(NodeInternal)
	right.keys = append(right.keys, node.keys[mid+1:]...)
	right.children = append(right.children, node.children[mid+1:]...)

	// update parent pointers for children moved to right
	for _, cid := range right.children {
		t.nodes.get(cid).parent = right.id
	}

	// shrink left node
	node.keys = node.keys[:mid]
	node.children = node.children[:mid+1]

	t.linkAfter(node, right)

	if node.parent == 0 {
		t.createNewRoot(node, promote, right)
		return
	}
	t.insertIntoParent(t.nodes.get(node.parent), node, promote, right)
}
