// Seed program: appends generated employees to the configured data dir.
// Run: go run ./cmd/seed -n 500
// Then inspect: go run ./cmd/inspect_idx data/index.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"RecordIndex/config"
	"RecordIndex/logger"
	"RecordIndex/seeder"
	storageengine "RecordIndex/storage_engine"

	"github.com/juju/errors"
)

func main() {
	configPath := flag.String("config", "recordindex.ini", "ini config file")
	n := flag.Int("n", 100, "number of records to add")
	from := flag.Int("from", 1, "first Emp_ID")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.InitLogger(logger.LogConfig{LogLevel: cfg.LogLevel}); err != nil {
		log.Fatalf("logger: %v", err)
	}

	if err := run(os.Stdout, cfg, *n, *from); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run seeds through the engine and always closes it, so buffered writes
// reach the disk even when seeding fails half way.
func run(w io.Writer, cfg *config.Cfg, n, from int) (err error) {
	se, err := storageengine.Open(cfg)
	if err != nil {
		return errors.Annotate(err, "open storage engine")
	}
	defer func() {
		if cerr := se.Close(); err == nil {
			err = cerr
		}
	}()

	added, err := seeder.Seed(se, n, from)
	if err != nil {
		return err
	}

	stats := se.Stats()
	fmt.Fprintf(w, "Added %d records to %s (total %d, tree height %d)\n", added, cfg.DataDir, stats.Records, stats.Height)
	return nil
}
