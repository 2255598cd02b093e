// Package bplus: tree inspection for debugging.
// Use InspectTo(w) to print a human-readable dump of the index.

package bplus

import (
	"fmt"
	"io"
	"strings"
)

// InspectTo writes the tree level by level (BFS) to w, followed by the leaf
// chain as seen from firstLeaf.
func (t *BPlusTree) InspectTo(w io.Writer) {
	p := func(format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }
	pln := func(s string) { fmt.Fprintln(w, s) }

	p("B+ tree: order=%d entries=%d height=%d nodes=%d\n", t.order, t.size, t.Height(), t.nodes.allocated())
	if t.IsEmpty() {
		pln("  (empty tree)")
		return
	}

	start := t.root
	if start == 0 {
		start = t.firstLeaf
	}

	pln("\n  Nodes (BFS):")
	pln("  ---")

	queue := []NodeID{start}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			node := t.nodes.get(queue[i])
			if node.nodeType == NodeInternal {
				p("    [node %d] INTERNAL keys=%v children=%v parent=%d\n",
					node.id, node.keys, node.children, node.parent)
				queue = append(queue, node.children...)
				continue
			}
			p("    [node %d] LEAF count=%d parent=%d left=%d right=%d\n",
				node.id, len(node.entries), node.parent, node.left, node.right)
			for _, e := range node.entries {
				p("      %d -> %d\n", e.Key, e.Value)
			}
		}
		pln("  ---")
		queue = queue[size:]
		level++
	}

	chain := make([]string, 0)
	for _, leaf := range t.Leaves() {
		keys := make([]string, len(leaf))
		for i, e := range leaf {
			keys[i] = fmt.Sprint(e.Key)
		}
		chain = append(chain, "{"+strings.Join(keys, ",")+"}")
	}
	p("  Leaf chain: %s\n", strings.Join(chain, " -> "))
}
