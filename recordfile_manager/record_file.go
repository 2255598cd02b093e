package recordfile

import (
	"bufio"
	"io"
	"os"

	"RecordIndex/types"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/juju/errors"
)

// Open opens or creates the record file at path. cacheMaxCost bounds the
// read cache in bytes of encoded record text.
func Open(path string, cacheMaxCost int64, syncWrites bool) (*RecordFile, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Annotatef(err, "open record file %s", path)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Annotatef(err, "stat record file %s", path)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[int64, types.Employee]{
		NumCounters: 10 * (cacheMaxCost/64 + 1),
		MaxCost:     cacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		file.Close()
		return nil, errors.Annotate(err, "create record cache")
	}

	return &RecordFile{
		filePath:   path,
		file:       file,
		size:       stat.Size(),
		syncWrites: syncWrites,
		cache:      cache,
	}, nil
}

// Append writes e as a new line at the end of the file and returns the
// offset the line starts at.
func (rf *RecordFile) Append(e types.Employee) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	line := e.Encode() + "\n"

	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return 0, errors.New("record file is closed")
	}

	// Record offset before write
	offset := rf.size
	n, err := rf.file.WriteString(line)
	rf.size += int64(n)
	if err != nil {
		return 0, errors.Annotatef(err, "append record at offset %d", offset)
	}
	if rf.syncWrites {
		if err := rf.file.Sync(); err != nil {
			return 0, errors.Annotate(err, "sync record file")
		}
	}

	rf.cache.Set(offset, e, int64(len(line)))
	return offset, nil
}

// ReadAt decodes the record whose line starts at offset.
func (rf *RecordFile) ReadAt(offset int64) (types.Employee, error) {
	if e, ok := rf.cache.Get(offset); ok {
		return e, nil
	}

	rf.mu.RLock()
	defer rf.mu.RUnlock()

	if rf.file == nil {
		return types.Employee{}, errors.New("record file is closed")
	}
	if offset < 0 || offset >= rf.size {
		return types.Employee{}, errors.NotValidf("record offset %d (file size %d)", offset, rf.size)
	}

	r := bufio.NewReader(io.NewSectionReader(rf.file, offset, rf.size-offset))
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return types.Employee{}, errors.Annotatef(err, "read record at offset %d", offset)
	}
	e, err := types.ParseEmployee(line)
	if err != nil {
		return types.Employee{}, errors.Annotatef(err, "record at offset %d", offset)
	}

	rf.cache.Set(offset, e, int64(len(line)))
	return e, nil
}

// Scan calls fn for every record in file order. Scanning stops at the first
// error from fn or from decoding.
func (rf *RecordFile) Scan(fn func(offset int64, e types.Employee) error) error {
	rf.mu.RLock()
	defer rf.mu.RUnlock()

	if rf.file == nil {
		return errors.New("record file is closed")
	}

	r := bufio.NewReader(io.NewSectionReader(rf.file, 0, rf.size))
	var offset int64
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			e, perr := types.ParseEmployee(line)
			if perr != nil {
				return errors.Annotatef(perr, "record at offset %d", offset)
			}
			if ferr := fn(offset, e); ferr != nil {
				return ferr
			}
			offset += int64(len(line))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Annotatef(err, "scan record file at offset %d", offset)
		}
	}
}

// Size returns the file length in bytes.
func (rf *RecordFile) Size() int64 {
	rf.mu.RLock()
	defer rf.mu.RUnlock()
	return rf.size
}

func (rf *RecordFile) Path() string {
	return rf.filePath
}

// Close syncs and closes the file and releases the cache.
func (rf *RecordFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return nil // Already closed
	}
	rf.cache.Close()

	err := rf.file.Sync()
	if cerr := rf.file.Close(); err == nil {
		err = cerr
	}
	rf.file = nil
	return errors.Trace(err)
}
