package storageengine

import (
	"io"
)

func (se *StorageEngine) Stats() Stats {
	se.mu.RLock()
	defer se.mu.RUnlock()

	return Stats{
		Records:        se.tree.Len(),
		Height:         se.tree.Height(),
		Order:          se.tree.Order(),
		RecordFileSize: se.RecordFile.Size(),
		IndexLogSize:   se.IndexLog.Size(),
	}
}

// Inspect prints the tree level by level.
func (se *StorageEngine) Inspect(w io.Writer) {
	se.mu.RLock()
	defer se.mu.RUnlock()
	se.tree.InspectTo(w)
}

func (se *StorageEngine) Verify() error {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.tree.Verify()
}
