package storageengine

import (
	"os"

	bplus "RecordIndex/bplustree"
	"RecordIndex/config"
	indexlog "RecordIndex/indexlog_manager"
	"RecordIndex/logger"
	recordfile "RecordIndex/recordfile_manager"

	"github.com/juju/errors"
)

/*
The main file of storage engine. Open creates the data dir, opens the record
file and the index log, then replays the log into a fresh in-memory tree.
*/

func Open(cfg *config.Cfg) (*StorageEngine, error) {
	if cfg == nil {
		cfg = config.NewCfg()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, errors.Annotatef(err, "create data dir %s", cfg.DataDir)
	}

	tree, err := bplus.NewBPlusTree(cfg.Order)
	if err != nil {
		return nil, err
	}

	rf, err := recordfile.Open(cfg.RecordPath(), cfg.CacheMaxCost, cfg.SyncWrites)
	if err != nil {
		return nil, err
	}

	il, err := indexlog.Open(cfg.IndexPath(), cfg.SyncWrites)
	if err != nil {
		rf.Close()
		return nil, err
	}

	se := &StorageEngine{
		cfg:        cfg,
		RecordFile: rf,
		IndexLog:   il,
		tree:       tree,
	}

	n, err := se.BuildIndex()
	if err != nil {
		se.Close()
		return nil, errors.Annotate(err, "build index")
	}
	logger.Infof("storage engine ready: %d records indexed, order=%d, data dir %s", n, cfg.Order, cfg.DataDir)
	return se, nil
}

// Close closes the index log and the record file. The engine must not be
// used afterwards.
func (se *StorageEngine) Close() error {
	se.mu.Lock()
	defer se.mu.Unlock()

	var firstErr error
	if se.IndexLog != nil {
		if err := se.IndexLog.Close(); err != nil {
			firstErr = err
		}
	}
	if se.RecordFile != nil {
		if err := se.RecordFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return errors.Trace(firstErr)
}
