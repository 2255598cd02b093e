package bplus

// createNewRoot creates a new root internal node with left and right as its
// two children, separated by promoteKey.
func (t *BPlusTree) createNewRoot(left *Node, promoteKey int, right *Node) {
	root := t.newNode(NodeInternal)
	root.keys = append(root.keys, promoteKey)
	root.children = append(root.children, left.id, right.id)

	left.parent = root.id
	right.parent = root.id
	t.root = root.id
}
