package storageengine

import (
	"RecordIndex/types"

	"github.com/juju/errors"
)

// Lookup returns the record indexed under key.
func (se *StorageEngine) Lookup(key int) (types.Employee, bool, error) {
	se.mu.RLock()
	offset, ok := se.tree.Search(key)
	se.mu.RUnlock()

	if !ok {
		return types.Employee{}, false, nil
	}
	e, err := se.RecordFile.ReadAt(offset)
	if err != nil {
		return types.Employee{}, false, errors.Annotatef(err, "read record %d", key)
	}
	return e, true, nil
}

// Display calls fn for every record in file order, including records whose
// index entry never made it to the log.
func (se *StorageEngine) Display(fn func(e types.Employee) error) error {
	return se.RecordFile.Scan(func(_ int64, e types.Employee) error {
		return fn(e)
	})
}

// Ascend calls fn for every indexed record in key order until fn returns
// false or an error.
func (se *StorageEngine) Ascend(fn func(e types.Employee) (bool, error)) error {
	for _, offset := range se.offsetsInKeyOrder() {
		e, err := se.RecordFile.ReadAt(offset)
		if err != nil {
			return errors.Annotatef(err, "read record at %d", offset)
		}
		more, err := fn(e)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}

// offsetsInKeyOrder snapshots the leaf chain so records can be read
// without holding the tree lock.
func (se *StorageEngine) offsetsInKeyOrder() []int64 {
	se.mu.RLock()
	defer se.mu.RUnlock()

	offsets := make([]int64, 0, se.tree.Len())
	for it := se.tree.First(); it.Valid(); it.Next() {
		offsets = append(offsets, it.Value())
	}
	return offsets
}
