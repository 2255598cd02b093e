// Structure of B+ Tree
/*
Tree
 ├── root: Internal Node (separator keys + child ids)   (absent while one leaf holds everything)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (entries + left/right ids)
 └── firstLeaf: head of the leaf chain


- keys: sorted ascending order
- internal nodes: len(children) == len(keys)+1 == degree <= order
- leaf nodes: len(entries) <= order-1
- leaf nodes linked with left/right for ordered scans, internal nodes too
- all leaf nodes at same depth
- nodes live in an arena and point at each other by NodeID, 0 is nil

*/
package bplus

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

// MinOrder is the smallest order for which the split arithmetic is defined.
const MinOrder = 3

// NodeID indexes a node in the tree's arena. The zero value means no node.
type NodeID int64

// Entry is one key/value pair stored in a leaf.
type Entry struct {
	Key   int
	Value int64
}

type Node struct {
	id       NodeID
	nodeType NodeType
	keys     []int    // only for internal node
	children []NodeID // only for internal node
	entries  []Entry  // only for leaf node
	parent   NodeID
	left     NodeID // sibling on the same level
	right    NodeID
}

// BPlusTree is not safe for concurrent use while Insert is running.
// Concurrent Search calls are fine on their own.
type BPlusTree struct {
	order     int
	root      NodeID // internal root, 0 while the tree is a single leaf
	firstLeaf NodeID // 0 only when the tree is empty
	size      int
	nodes     *arena
}
