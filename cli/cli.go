package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"RecordIndex/config"
	"RecordIndex/logger"
	storageengine "RecordIndex/storage_engine"
	"RecordIndex/types"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/juju/errors"
)

const clearSequence = "\033[H\033[2J"

// Engine is the part of the storage engine the menu drives.
type Engine interface {
	AddRecord(e types.Employee) (int64, error)
	Lookup(key int) (types.Employee, bool, error)
	Display(fn func(e types.Employee) error) error
	Export(w io.Writer) (int, error)
	Stats() storageengine.Stats
	Inspect(w io.Writer)
}

type Cli struct {
	scanner     *bufio.Scanner
	out         io.Writer
	engine      Engine
	pace        time.Duration
	clearScreen bool
	sleep       func(time.Duration)

	ok   *color.Color
	warn *color.Color
	info *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, engine Engine, cfg *config.Cfg) *Cli {
	return &Cli{
		scanner:     s,
		out:         out,
		engine:      engine,
		pace:        cfg.Pace,
		clearScreen: cfg.ClearScreen,
		sleep:       time.Sleep,
		ok:          color.New(color.FgGreen),
		warn:        color.New(color.FgRed),
		info:        color.New(color.FgCyan, color.Bold),
	}
}

// Start runs the menu loop until the user exits or input ends.
func (c *Cli) Start() {
	c.info.Fprintln(c.out, "BPLUSTREE INDEXING")
	for {
		c.printMenu()

		line, ok := c.readLine()
		if !ok {
			return
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = -1
		}

		switch choice {
		case 1:
			if !c.addRecord() {
				return
			}
			c.pauseAndClear()
		case 2:
			c.pauseAndClear()
			if !c.search() {
				return
			}
		case 3:
			c.pauseAndClear()
			c.display()
		case 4:
			fmt.Fprintln(c.out, "Exiting..")
			c.ok.Fprintln(c.out, "Exited successfully")
			return
		case 5:
			c.showIndex()
		case 6:
			if !c.export() {
				return
			}
		default:
			c.warn.Fprintln(c.out, "Invalid choice")
		}
	}
}

func (c *Cli) printMenu() {
	fmt.Fprintln(c.out, "WELCOME")
	fmt.Fprintln(c.out, "ENTER YOUR CHOICE")
	fmt.Fprintln(c.out, `1>Enter the details
2>Enter the ID(Emp_id) to Search
3>Display All Records
4>Exit
5>Show Index Structure
6>Export Records (sorted by Emp_ID)`)
}

func (c *Cli) readLine() (string, bool) {
	if !c.scanner.Scan() { // Ctrl+D pressed
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *Cli) pauseAndClear() {
	c.sleep(c.pace)
	if c.clearScreen {
		fmt.Fprint(c.out, clearSequence)
	}
}

// addRecord returns false when input ended mid-record.
func (c *Cli) addRecord() bool {
	var e types.Employee
	for i, name := range types.FieldNames {
		fmt.Fprintf(c.out, "Enter the %s: \n", name)
		value, ok := c.readLine()
		if !ok {
			return false
		}
		e.SetField(i, value)
	}
	fmt.Fprintln(c.out, "WAITING...")

	_, err := c.engine.AddRecord(e)
	switch {
	case err == nil:
		c.ok.Fprintln(c.out, "Record added successfully")
	case errors.IsAlreadyExists(err):
		c.warn.Fprintln(c.out, "Key already exists")
	default:
		logger.Errorf("add record: %v", err)
		c.warn.Fprintf(c.out, "Error: %v\n", err)
	}
	return true
}

func (c *Cli) search() bool {
	fmt.Fprintln(c.out, "Enter the Emp_ID: ")
	line, ok := c.readLine()
	if !ok {
		return false
	}
	key, err := types.Employee{EmpID: line}.Key()
	if err != nil {
		c.warn.Fprintln(c.out, "Record not found")
		return true
	}

	e, found, err := c.engine.Lookup(key)
	if err != nil {
		logger.Errorf("lookup %d: %v", key, err)
		c.warn.Fprintf(c.out, "Error: %v\n", err)
		return true
	}
	if !found {
		c.warn.Fprintln(c.out, "Record not found")
		return true
	}
	c.printRecord(e)
	return true
}

func (c *Cli) display() {
	stats := c.engine.Stats()
	fmt.Fprintf(c.out, "Total records: %d\n", stats.Records)

	err := c.engine.Display(func(e types.Employee) error {
		c.printRecord(e)
		return nil
	})
	if err != nil {
		logger.Errorf("display records: %v", err)
		c.warn.Fprintf(c.out, "Error: %v\n", err)
	}
}

func (c *Cli) printRecord(e types.Employee) {
	for i, v := range e.Fields() {
		fmt.Fprintf(c.out, "%s: %s\n", types.FieldNames[i], v)
	}
	fmt.Fprintln(c.out)
}

func (c *Cli) showIndex() {
	stats := c.engine.Stats()
	c.engine.Inspect(c.out)
	fmt.Fprintf(c.out, "Record file: %s, index log: %s, %s records\n",
		humanize.Bytes(uint64(stats.RecordFileSize)),
		humanize.Bytes(uint64(stats.IndexLogSize)),
		humanize.Comma(int64(stats.Records)))
}

func (c *Cli) export() bool {
	fmt.Fprintln(c.out, "Enter the export file path: ")
	path, ok := c.readLine()
	if !ok {
		return false
	}
	if path == "" {
		c.warn.Fprintln(c.out, "Invalid choice")
		return true
	}

	n, size, err := exportTo(c.engine, path)
	if err != nil {
		logger.Errorf("export to %s: %v", path, err)
		c.warn.Fprintf(c.out, "Error: %v\n", err)
		return true
	}
	c.ok.Fprintf(c.out, "Exported %s records to %s (%s)\n", humanize.Comma(int64(n)), path, humanize.Bytes(uint64(size)))
	return true
}

func exportTo(engine Engine, path string) (int, int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, 0, errors.Annotatef(err, "create %s", path)
	}
	n, err := engine.Export(f)
	if err != nil {
		f.Close()
		return n, 0, err
	}
	stat, err := f.Stat()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, 0, errors.Trace(err)
	}
	return n, stat.Size(), nil
}
