package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"RecordIndex/cli"
	"RecordIndex/config"
	"RecordIndex/logger"
	"RecordIndex/seeder"
	storageengine "RecordIndex/storage_engine"
)

var (
	configPath  *string
	shouldReset *bool
	seedRecords *int
	seedFirstID *int
)

func main() {
	setupFlags()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.InitLogger(logger.LogConfig{
		InfoLogPath:  cfg.LogInfos,
		ErrorLogPath: cfg.LogError,
		LogLevel:     cfg.LogLevel,
	}); err != nil {
		log.Fatal(err)
	}

	if *shouldReset {
		if err := os.RemoveAll(cfg.DataDir); err != nil {
			log.Fatal(err)
		}
	}

	se, err := storageengine.Open(cfg)
	if err != nil {
		logger.Errorf("open storage engine: %v", err)
		os.Exit(1)
	}
	defer se.Close()

	if *seedRecords > 0 {
		if _, err := seeder.Seed(se, *seedRecords, *seedFirstID); err != nil {
			logger.Errorf("seed: %v", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, se, cfg)
	demo.Start()
}

func setupFlags() {
	configPath = flag.String("config", "recordindex.ini", "Path of the ini config file. Defaults apply when it does not exist.")
	shouldReset = flag.Bool("reset", false, "Erase the data dir before startup.")
	seedRecords = flag.Int("seed", 0, "Number of go-faker generated records to add on startup.")
	seedFirstID = flag.Int("seed-from", 1, "First Emp_ID used when seeding.")
	flag.Usage = func() {
		fmt.Println("\nB+ tree record index\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
