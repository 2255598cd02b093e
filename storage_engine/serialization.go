package storageengine

import (
	"bufio"
	"io"

	"RecordIndex/types"

	"github.com/golang/snappy"
	"github.com/juju/errors"
)

/*
Export stream: snappy framed, uncompressed payload is the record file format
(one comma-joined employee per line) ordered by Emp_ID.
*/

// Export writes every indexed record to w in key order and returns how many
// were written.
func (se *StorageEngine) Export(w io.Writer) (int, error) {
	sw := snappy.NewBufferedWriter(w)
	count := 0
	err := se.Ascend(func(e types.Employee) (bool, error) {
		if _, err := io.WriteString(sw, e.Encode()+"\n"); err != nil {
			return false, errors.Annotate(err, "write export")
		}
		count++
		return true, nil
	})
	if err != nil {
		sw.Close()
		return count, err
	}
	if err := sw.Close(); err != nil {
		return count, errors.Annotate(err, "flush export")
	}
	return count, nil
}

// ReadExport decodes a stream written by Export.
func ReadExport(r io.Reader) ([]types.Employee, error) {
	scanner := bufio.NewScanner(snappy.NewReader(r))
	var out []types.Employee
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		e, err := types.ParseEmployee(scanner.Text())
		if err != nil {
			return out, errors.Annotatef(err, "export record %d", len(out)+1)
		}
		out = append(out, e)
	}
	if err := scanner.Err(); err != nil {
		return out, errors.Annotate(err, "read export")
	}
	return out, nil
}
