package bplus

// newNode allocates a node of the given type with room for one element past
// its bound, which is what a split needs while it is in progress.
func (t *BPlusTree) newNode(nodeType NodeType) *Node {
	n := t.nodes.allocate(nodeType)
	if nodeType == NodeInternal {
		n.keys = make([]int, 0, t.order)
		n.children = make([]NodeID, 0, t.order+1)
	} else {
		n.entries = make([]Entry, 0, t.order)
	}
	return n
}

func (n *Node) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// degree is the number of child pointers of an internal node.
func (n *Node) degree() int {
	return len(n.children)
}

func (t *BPlusTree) isOverfull(n *Node) bool {
	return n.degree() == t.order+1
}

func (t *BPlusTree) isLeafFull(n *Node) bool {
	return len(n.entries) == t.order-1
}

// childIndex returns the slot of child in n.children, or -1.
func (n *Node) childIndex(child NodeID) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
