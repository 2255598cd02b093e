package bplus

// findLeaf descends from the root to the leaf whose range covers key.
// In each internal node the first separator strictly greater than key picks
// the child; when there is none the last child is taken.
func (t *BPlusTree) findLeaf(key int) *Node {
	if t.root == 0 {
		return t.nodes.get(t.firstLeaf)
	}
	n := t.nodes.get(t.root)
	for !n.isLeaf() {
		i := upperBound(n.keys, key)
		if i >= len(n.children) {
			i = len(n.children) - 1
		}
		n = t.nodes.get(n.children[i])
	}
	return n
}
