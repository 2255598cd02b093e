package bplus

import "github.com/juju/errors"

// NewBPlusTree returns an empty tree of the given order (max children per
// internal node). Orders below MinOrder are rejected.
func NewBPlusTree(order int) (*BPlusTree, error) {
	if order < MinOrder {
		return nil, errors.NotValidf("b+ tree order %d (minimum %d)", order, MinOrder)
	}
	return &BPlusTree{
		order: order,
		nodes: newArena(),
	}, nil
}

func (t *BPlusTree) Order() int { return t.order }

// Len returns the number of entries inserted so far.
func (t *BPlusTree) Len() int { return t.size }

func (t *BPlusTree) IsEmpty() bool { return t.firstLeaf == 0 }

// LeafCapacity is the most entries a leaf may hold.
func (t *BPlusTree) LeafCapacity() int { return t.order - 1 }

// MinLeafEntries is ceil(m/2)-1. Nothing enforces it since there is no delete.
func (t *BPlusTree) MinLeafEntries() int { return (t.order+1)/2 - 1 }

// MaxDegree is the most children an internal node may have.
func (t *BPlusTree) MaxDegree() int { return t.order }

// Height counts levels, leaves included. An empty tree has height 0.
func (t *BPlusTree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	h := 1
	for id := t.root; id != 0; {
		n := t.nodes.get(id)
		h++
		if len(n.children) == 0 {
			break
		}
		c := t.nodes.get(n.children[0])
		if c.isLeaf() {
			break
		}
		id = c.id
	}
	return h
}

// midpoint is ceil((m+1)/2)-1, the split index for both node kinds.
func (t *BPlusTree) midpoint() int {
	return (t.order+2)/2 - 1
}
