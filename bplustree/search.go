package bplus

// Search returns the value stored under key. The boolean is false when the
// key was never inserted.
func (t *BPlusTree) Search(key int) (int64, bool) {
	if t.IsEmpty() {
		return 0, false
	}

	leaf := t.findLeaf(key)
	idx := binarySearch(leaf.entries, key)
	if idx == -1 {
		return 0, false
	}
	return leaf.entries[idx].Value, true
}
