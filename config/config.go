package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/juju/errors"
	"gopkg.in/ini.v1"
)

/*
[storage]
data_dir       = data
record_file    = human_resource.txt
index_file     = index.txt
order          = 3
cache_max_cost = 1048576
sync_writes    = false

[logs]
log_level = info
log_infos =
log_error =

[cli]
pace         = 1s
clear_screen = true
*/
type Cfg struct {
	// storage
	DataDir      string
	RecordFile   string
	IndexFile    string
	Order        int
	CacheMaxCost int64
	SyncWrites   bool

	// logs
	LogLevel string
	LogInfos string
	LogError string

	// cli
	Pace        time.Duration
	ClearScreen bool
}

func NewCfg() *Cfg {
	return &Cfg{
		DataDir:      "data",
		RecordFile:   "human_resource.txt",
		IndexFile:    "index.txt",
		Order:        3,
		CacheMaxCost: 1 << 20,
		LogLevel:     "info",
		Pace:         time.Second,
		ClearScreen:  true,
	}
}

// Load reads path on top of the defaults. A missing file leaves the defaults
// in place; an empty path does the same.
func Load(path string) (*Cfg, error) {
	cfg := NewCfg()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, errors.Annotatef(err, "load config %s", path)
	}

	if err := cfg.parseStorageCfg(iniFile.Section("storage")); err != nil {
		return nil, err
	}
	cfg.parseLogsCfg(iniFile.Section("logs"))
	if err := cfg.parseCliCfg(iniFile.Section("cli")); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (cfg *Cfg) parseStorageCfg(section *ini.Section) error {
	cfg.DataDir = section.Key("data_dir").MustString(cfg.DataDir)
	cfg.RecordFile = section.Key("record_file").MustString(cfg.RecordFile)
	cfg.IndexFile = section.Key("index_file").MustString(cfg.IndexFile)

	if section.HasKey("order") {
		order, err := section.Key("order").Int()
		if err != nil {
			return errors.NotValidf("storage.order %q", section.Key("order").String())
		}
		cfg.Order = order
	}
	if section.HasKey("cache_max_cost") {
		cost, err := section.Key("cache_max_cost").Int64()
		if err != nil {
			return errors.NotValidf("storage.cache_max_cost %q", section.Key("cache_max_cost").String())
		}
		cfg.CacheMaxCost = cost
	}
	cfg.SyncWrites = section.Key("sync_writes").MustBool(cfg.SyncWrites)
	return nil
}

func (cfg *Cfg) parseLogsCfg(section *ini.Section) {
	cfg.LogLevel = section.Key("log_level").MustString(cfg.LogLevel)
	cfg.LogInfos = section.Key("log_infos").MustString(cfg.LogInfos)
	cfg.LogError = section.Key("log_error").MustString(cfg.LogError)
}

func (cfg *Cfg) parseCliCfg(section *ini.Section) error {
	if section.HasKey("pace") {
		pace, err := section.Key("pace").Duration()
		if err != nil {
			return errors.NotValidf("cli.pace %q", section.Key("pace").String())
		}
		cfg.Pace = pace
	}
	cfg.ClearScreen = section.Key("clear_screen").MustBool(cfg.ClearScreen)
	return nil
}

func (cfg *Cfg) Validate() error {
	if cfg.Order < 3 {
		return errors.NotValidf("storage.order %d (minimum 3)", cfg.Order)
	}
	if cfg.CacheMaxCost <= 0 {
		return errors.NotValidf("storage.cache_max_cost %d", cfg.CacheMaxCost)
	}
	if cfg.Pace < 0 {
		return errors.NotValidf("cli.pace %s", cfg.Pace)
	}
	return nil
}

func (cfg *Cfg) RecordPath() string {
	return filepath.Join(cfg.DataDir, cfg.RecordFile)
}

func (cfg *Cfg) IndexPath() string {
	return filepath.Join(cfg.DataDir, cfg.IndexFile)
}
