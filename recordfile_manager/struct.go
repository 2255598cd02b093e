package recordfile

import (
	"os"
	"sync"

	"RecordIndex/types"

	"github.com/dgraph-io/ristretto/v2"
)

// RecordFile is an append-only text file holding one employee per line.
// A record is addressed by the byte offset its line starts at.
type RecordFile struct {
	filePath   string
	file       *os.File
	size       int64 // next append offset
	syncWrites bool
	cache      *ristretto.Cache[int64, types.Employee] // offset -> decoded record
	mu         sync.RWMutex
}
