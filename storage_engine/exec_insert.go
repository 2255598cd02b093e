package storageengine

import (
	"RecordIndex/logger"
	"RecordIndex/types"

	"github.com/juju/errors"
)

// AddRecord stores e and indexes it by Emp_ID. A key that is already indexed
// is rejected with an already-exists error before anything is written.
// The record is appended first, then its index line, and the tree is only
// updated once both writes succeeded.
func (se *StorageEngine) AddRecord(e types.Employee) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	key, err := e.Key()
	if err != nil {
		return 0, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	if _, ok := se.tree.Search(key); ok {
		return 0, errors.AlreadyExistsf("key %d", key)
	}

	offset, err := se.RecordFile.Append(e)
	if err != nil {
		return 0, errors.Annotatef(err, "add record %d", key)
	}
	if err := se.IndexLog.Append(key, offset); err != nil {
		return 0, errors.Annotatef(err, "index record %d", key)
	}
	se.tree.Insert(key, offset)

	logger.Debugf("added record %d at offset %d", key, offset)
	return offset, nil
}
