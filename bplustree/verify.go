package bplus

import "github.com/juju/errors"

// Verify walks the whole tree and reports the first broken invariant:
// separator bounds, node sizes, parent ids, equal leaf depth, and the
// sibling chains on every level. It assumes unique keys.
func (t *BPlusTree) Verify() error {
	if t.IsEmpty() {
		if t.root != 0 || t.size != 0 {
			return errors.Errorf("empty tree has root %d and size %d", t.root, t.size)
		}
		return nil
	}

	v := &verifier{tree: t, leafDepth: -1}
	start := t.root
	if start == 0 {
		start = t.firstLeaf
	}
	if err := v.check(start, 0, nil, nil, 0); err != nil {
		return err
	}
	if err := v.checkChains(); err != nil {
		return err
	}
	if v.entries != t.size {
		return errors.Errorf("tree holds %d entries, expected %d", v.entries, t.size)
	}
	return nil
}

type verifier struct {
	tree      *BPlusTree
	leafDepth int
	entries   int
	levels    [][]NodeID // DFS order per level
}

func (v *verifier) check(id NodeID, parent NodeID, lo, hi *int, depth int) error {
	t := v.tree
	n := t.nodes.get(id)
	if n == nil {
		return errors.Errorf("node %d missing from arena", id)
	}
	if n.parent != parent {
		return errors.Errorf("node %d: parent is %d, expected %d", id, n.parent, parent)
	}
	if len(v.levels) <= depth {
		v.levels = append(v.levels, nil)
	}
	v.levels[depth] = append(v.levels[depth], id)

	inRange := func(k int) bool {
		return (lo == nil || k >= *lo) && (hi == nil || k < *hi)
	}

	if n.isLeaf() {
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.Errorf("leaf %d at depth %d, other leaves at %d", id, depth, v.leafDepth)
		}
		if len(n.entries) == 0 || len(n.entries) > t.LeafCapacity() {
			return errors.Errorf("leaf %d holds %d entries, capacity %d", id, len(n.entries), t.LeafCapacity())
		}
		for i, e := range n.entries {
			if i > 0 && n.entries[i-1].Key >= e.Key {
				return errors.Errorf("leaf %d: key %d out of order", id, e.Key)
			}
			if !inRange(e.Key) {
				return errors.Errorf("leaf %d: key %d outside separator range", id, e.Key)
			}
		}
		v.entries += len(n.entries)
		return nil
	}

	if n.degree() < 2 || n.degree() > t.MaxDegree() {
		return errors.Errorf("internal %d has degree %d, max %d", id, n.degree(), t.MaxDegree())
	}
	if len(n.keys) != n.degree()-1 {
		return errors.Errorf("internal %d has %d keys for %d children", id, len(n.keys), n.degree())
	}
	for i, k := range n.keys {
		if i > 0 && n.keys[i-1] >= k {
			return errors.Errorf("internal %d: key %d out of order", id, k)
		}
		if !inRange(k) {
			return errors.Errorf("internal %d: key %d outside separator range", id, k)
		}
	}
	for i, c := range n.children {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.check(c, id, childLo, childHi, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// checkChains compares each level's left/right links with the DFS order.
func (v *verifier) checkChains() error {
	t := v.tree
	for depth, level := range v.levels {
		if t.nodes.get(level[0]).left != 0 {
			return errors.Errorf("level %d: first node %d has a left sibling", depth, level[0])
		}
		for i, id := range level {
			n := t.nodes.get(id)
			var want NodeID
			if i+1 < len(level) {
				want = level[i+1]
			}
			if n.right != want {
				return errors.Errorf("level %d: node %d right sibling is %d, expected %d", depth, id, n.right, want)
			}
			if want != 0 && t.nodes.get(want).left != id {
				return errors.Errorf("level %d: node %d left sibling does not point back to %d", depth, want, id)
			}
		}
	}
	leaves := v.levels[len(v.levels)-1]
	if leaves[0] != t.firstLeaf {
		return errors.Errorf("first leaf is %d, leftmost leaf is %d", t.firstLeaf, leaves[0])
	}
	return nil
}
