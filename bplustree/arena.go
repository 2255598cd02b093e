package bplus

// arena owns every node of a tree. Parent and sibling fields only hold ids,
// so they never keep a node reachable on their own.
type arena struct {
	nodes []*Node
}

func newArena() *arena {
	// slot 0 is reserved so the zero NodeID can mean "no node"
	return &arena{nodes: make([]*Node, 1, 16)}
}

func (a *arena) allocate(nodeType NodeType) *Node {
	n := &Node{
		id:       NodeID(len(a.nodes)),
		nodeType: nodeType,
	}
	a.nodes = append(a.nodes, n)
	return n
}

func (a *arena) get(id NodeID) *Node {
	if id <= 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

// allocated returns the number of live node slots.
func (a *arena) allocated() int {
	return len(a.nodes) - 1
}
