package indexlog

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"RecordIndex/logger"

	"github.com/juju/errors"
)

/*

Index Log File
──────────────────────────
| key,offset\n | key,offset\n | ... |
──────────────────────────

One line per indexed record, appended in insertion order.
Replaying every line through Insert rebuilds the in-memory tree.

*/

type IndexLog struct {
	filePath   string
	file       *os.File
	size       int64
	syncWrites bool
	mu         sync.Mutex
}

// Open opens the log file in append-only mode, creating it if needed.
func Open(path string, syncWrites bool) (*IndexLog, error) {
	// O_APPEND ensures atomic appends at the OS level
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Annotatef(err, "open index log %s", path)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Annotatef(err, "stat index log %s", path)
	}

	return &IndexLog{
		filePath:   path,
		file:       file,
		size:       stat.Size(),
		syncWrites: syncWrites,
	}, nil
}

// Append writes one key,offset line.
func (l *IndexLog) Append(key int, offset int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return errors.New("index log not opened")
	}

	line := strconv.Itoa(key) + "," + strconv.FormatInt(offset, 10) + "\n"
	n, err := l.file.WriteString(line)
	l.size += int64(n)
	if err != nil {
		return errors.Annotatef(err, "append index entry %d", key)
	}
	if l.syncWrites {
		return errors.Trace(l.file.Sync())
	}
	return nil
}

// Replay reads the log from the start and calls apply for every entry in
// file order. Blank lines are skipped; any other line that is not
// "key,offset" stops the replay with its line number. A final line without
// its newline is left over from an interrupted Append: it is cut off the file
// with a warning and not applied. It returns the number of entries passed to
// apply.
func (l *IndexLog) Replay(apply func(key int, offset int64) error) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return 0, errors.New("index log not opened")
	}

	r := bufio.NewReader(io.NewSectionReader(l.file, 0, l.size))
	count := 0
	lineNo := 0
	var pos int64
	for {
		raw, err := r.ReadString('\n')
		if err == io.EOF {
			if raw != "" {
				return count, l.truncateTail(pos, lineNo+1, raw)
			}
			return count, nil
		}
		if err != nil {
			return count, errors.Annotatef(err, "read index log %s", l.filePath)
		}
		lineNo++
		pos += int64(len(raw))

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		key, offset, err := parseEntry(line)
		if err != nil {
			return count, errors.Annotatef(err, "%s line %d", l.filePath, lineNo)
		}
		if err := apply(key, offset); err != nil {
			return count, errors.Trace(err)
		}
		count++
	}
}

// truncateTail drops an unterminated last line so later appends start on a
// fresh line.
func (l *IndexLog) truncateTail(at int64, lineNo int, tail string) error {
	logger.Warnf("%s line %d: dropping unterminated entry %q", l.filePath, lineNo, tail)
	if err := l.file.Truncate(at); err != nil {
		return errors.Annotatef(err, "truncate index log %s", l.filePath)
	}
	l.size = at
	return nil
}

func parseEntry(line string) (int, int64, error) {
	keyStr, offStr, ok := strings.Cut(line, ",")
	if !ok {
		return 0, 0, errors.NotValidf("index entry %q", line)
	}
	key, err := strconv.ParseInt(strings.TrimSpace(keyStr), 10, 32)
	if err != nil {
		return 0, 0, errors.NotValidf("index key %q", keyStr)
	}
	offset, err := strconv.ParseInt(strings.TrimSpace(offStr), 10, 64)
	if err != nil || offset < 0 {
		return 0, 0, errors.NotValidf("index offset %q", offStr)
	}
	return int(key), offset, nil
}

// Size returns the log length in bytes.
func (l *IndexLog) Size() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// Sync ensures data is persisted to disk
func (l *IndexLog) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return errors.New("index log not opened")
	}
	return errors.Trace(l.file.Sync())
}

// Close closes the log file
func (l *IndexLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return errors.Trace(err)
	}
	return nil
}
