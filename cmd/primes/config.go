package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/jedisct1/dlog"
)

const (
	AlgorithmTrial        = "trial"
	AlgorithmEratosthenes = "eratosthenes"
)

// Config is the optional TOML configuration of the primes command.
type Config struct {
	LogLevel         int            `toml:"log_level"`
	LogFile          *string        `toml:"log_file"`
	UseSyslog        bool           `toml:"use_syslog"`
	Algorithm        string         `toml:"algorithm"`
	ReportFile       string         `toml:"report_file"`
	ReportMaxSize    int            `toml:"report_max_size"`
	ReportMaxAge     int            `toml:"report_max_age"`
	ReportMaxBackups int            `toml:"report_max_backups"`
	Known            map[string]int `toml:"known"`
}

func newConfig() Config {
	return Config{
		LogLevel:         int(dlog.LogLevel()),
		Algorithm:        AlgorithmTrial,
		ReportMaxSize:    10,
		ReportMaxAge:     7,
		ReportMaxBackups: 1,
	}
}

// defaultKnown maps upper bounds to the number of primes below them.
var defaultKnown = map[uint32]int{
	1:     0,
	10:    4,
	100:   25,
	1000:  168,
	10000: 1229,
}

// ConfigLoad reads the configuration file at path. An empty path yields the defaults.
func ConfigLoad(path string) (Config, error) {
	config := newConfig()
	if path == "" {
		return config, nil
	}

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, fmt.Errorf("failed to load configuration file [%s]: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return config, fmt.Errorf("unsupported key in configuration file: [%s]", undecoded[0])
	}
	if _, err := config.KnownCounts(); err != nil {
		return config, err
	}
	if _, err := lookupAlgorithm(config.Algorithm); err != nil {
		return config, err
	}
	return config, nil
}

// KnownCounts returns the known-count table, falling back to defaultKnown
// when the configuration does not define one.
func (config *Config) KnownCounts() (map[uint32]int, error) {
	if len(config.Known) == 0 {
		return defaultKnown, nil
	}

	known := make(map[uint32]int, len(config.Known))
	for key, count := range config.Known {
		bound, err := ParseBound(key)
		if err != nil {
			return nil, fmt.Errorf("invalid key in [known] table: %w", err)
		}
		if count < 0 {
			return nil, fmt.Errorf("invalid count for bound %s in [known] table: %d", key, count)
		}
		known[bound] = count
	}
	return known, nil
}

func (config *Config) applyLogging() {
	if config.LogLevel >= 0 && config.LogLevel < int(dlog.SeverityLast) {
		dlog.SetLogLevel(dlog.Severity(config.LogLevel))
	}
	if config.UseSyslog {
		dlog.UseSyslog(true)
	} else if config.LogFile != nil {
		dlog.UseLogFile(*config.LogFile)
	}
}
