package storageengine

import (
	bplus "RecordIndex/bplustree"
	"RecordIndex/logger"

	"github.com/juju/errors"
)

// BuildIndex replays the index log into a new tree and swaps it in.
// Entries whose key is already indexed are skipped, so the first occurrence
// wins. Entries pointing past the end of the record file are skipped too.
// It returns the number of keys indexed.
func (se *StorageEngine) BuildIndex() (int, error) {
	tree, err := bplus.NewBPlusTree(se.cfg.Order)
	if err != nil {
		return 0, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()

	limit := se.RecordFile.Size()
	skipped := 0

	_, err = se.IndexLog.Replay(func(key int, offset int64) error {
		if offset >= limit {
			logger.Warnf("index entry %d,%d points past record file end (%d), skipping", key, offset, limit)
			skipped++
			return nil
		}
		if _, ok := tree.Search(key); ok {
			logger.Warnf("duplicate key %d in index log, keeping first occurrence", key)
			skipped++
			return nil
		}
		tree.Insert(key, offset)
		return nil
	})
	if err != nil {
		return 0, errors.Trace(err)
	}

	se.tree = tree
	if skipped > 0 {
		logger.Warnf("index rebuild skipped %d entries", skipped)
	}
	logger.Debugf("index rebuilt: %d keys, height %d", tree.Len(), tree.Height())
	return tree.Len(), nil
}
