package cli

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"RecordIndex/config"
	"RecordIndex/seeder"
	storageengine "RecordIndex/storage_engine"
	"RecordIndex/types"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type session struct {
	engine *storageengine.StorageEngine
	cfg    *config.Cfg
	slept  []time.Duration
}

func newSession(t *testing.T) *session {
	t.Helper()
	cfg := config.NewCfg()
	cfg.DataDir = t.TempDir()
	cfg.CacheMaxCost = 1 << 16
	se, err := storageengine.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { se.Close() })
	return &session{engine: se, cfg: cfg}
}

func (s *session) run(input string) string {
	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader(input)), &out, s.engine, s.cfg)
	c.sleep = func(d time.Duration) { s.slept = append(s.slept, d) }
	c.Start()
	return out.String()
}

func recordInput(e types.Employee) string {
	return "1\n" + strings.Join(e.Fields(), "\n") + "\n"
}

func TestAddThenSearch(t *testing.T) {
	s := newSession(t)
	e := seeder.FakeEmployee(277509)

	out := s.run(recordInput(e) + "2\n277509\n4\n")

	assert.Contains(t, out, "BPLUSTREE INDEXING")
	assert.Contains(t, out, "Enter the Emp_ID: ")
	assert.Contains(t, out, "Enter the Phone_No: ")
	assert.Contains(t, out, "WAITING...")
	assert.Contains(t, out, "Record added successfully")
	assert.Contains(t, out, "First_Name: "+e.FirstName+"\n")
	assert.Contains(t, out, "Exiting..\nExited successfully")

	// add and search each pause once, then clear
	assert.Equal(t, []time.Duration{time.Second, time.Second}, s.slept)
	assert.Equal(t, 2, strings.Count(out, clearSequence))
}

func TestDuplicateKey(t *testing.T) {
	s := newSession(t)
	_, err := s.engine.AddRecord(seeder.FakeEmployee(5))
	require.NoError(t, err)

	out := s.run(recordInput(seeder.FakeEmployee(5)) + "4\n")
	assert.Contains(t, out, "Key already exists")
	assert.NotContains(t, out, "Record added successfully")
}

func TestSearchMissing(t *testing.T) {
	s := newSession(t)
	out := s.run("2\n42\n2\nnot-a-number\n4\n")
	assert.Equal(t, 2, strings.Count(out, "Record not found"))
}

func TestDisplayAll(t *testing.T) {
	s := newSession(t)
	for _, id := range []int{3, 1, 2} {
		_, err := s.engine.AddRecord(seeder.FakeEmployee(id))
		require.NoError(t, err)
	}

	out := s.run("3\n4\n")
	assert.Contains(t, out, "Total records: 3")
	first := strings.Index(out, "Emp_ID: 3\n")
	second := strings.Index(out, "Emp_ID: 1\n")
	third := strings.Index(out, "Emp_ID: 2\n")
	require.True(t, first >= 0 && second >= 0 && third >= 0, out)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestInvalidChoiceAndEOF(t *testing.T) {
	s := newSession(t)
	out := s.run("9\nabc\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice"))
	assert.NotContains(t, out, "Exited successfully")
}

func TestNoClearWhenDisabled(t *testing.T) {
	s := newSession(t)
	s.cfg.ClearScreen = false
	s.cfg.Pace = 0
	out := s.run("3\n4\n")
	assert.NotContains(t, out, clearSequence)
	assert.Equal(t, []time.Duration{0}, s.slept)
}

func TestShowIndex(t *testing.T) {
	s := newSession(t)
	for _, id := range []int{10, 20, 30} {
		_, err := s.engine.AddRecord(seeder.FakeEmployee(id))
		require.NoError(t, err)
	}
	out := s.run("5\n4\n")
	assert.Contains(t, out, "B+ tree: order=3 entries=3 height=2")
	assert.Contains(t, out, "3 records")
}

func TestExport(t *testing.T) {
	s := newSession(t)
	for _, id := range []int{30, 10, 20} {
		_, err := s.engine.AddRecord(seeder.FakeEmployee(id))
		require.NoError(t, err)
	}
	path := filepath.Join(t.TempDir(), "export.snappy")

	out := s.run("6\n" + path + "\n4\n")
	assert.Contains(t, out, "Exported 3 records to "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := storageengine.ReadExport(f)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "10", records[0].EmpID)
	assert.Equal(t, "20", records[1].EmpID)
	assert.Equal(t, "30", records[2].EmpID)
}
