package storageengine

import (
	"sync"

	bplus "RecordIndex/bplustree"
	"RecordIndex/config"
	indexlog "RecordIndex/indexlog_manager"
	recordfile "RecordIndex/recordfile_manager"
)

type StorageEngine struct {
	cfg *config.Cfg

	RecordFile *recordfile.RecordFile
	IndexLog   *indexlog.IndexLog

	// mu guards tree. AddRecord holds it for writing across the duplicate
	// check, both appends and the insert.
	mu   sync.RWMutex
	tree *bplus.BPlusTree
}

type Stats struct {
	Records        int
	Height         int
	Order          int
	RecordFileSize int64
	IndexLogSize   int64
}
