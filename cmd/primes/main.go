// Command primes prints every prime less than or equal to an upper bound.
//
// The bound is taken from the first argument; without one the command asks
// for bounds interactively until the input ends. With -verify it checks the
// selected algorithm against a table of known prime counts instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jedisct1/dlog"
)

const AppVersion = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	dlog.Init("primes", dlog.SeverityNotice, "")

	version := flag.Bool("version", false, "print current version")
	configFile := flag.String("config", "", "path to a TOML configuration file")
	algorithm := flag.String("algorithm", "", fmt.Sprintf("sieve algorithm: %s or %s", AlgorithmTrial, AlgorithmEratosthenes))
	verify := flag.Bool("verify", false, "check prime counts against the known-count table")
	logLevel := flag.Int("log-level", -1, fmt.Sprintf("log level (%d-%d), overrides log_level", dlog.SeverityDebug, dlog.SeverityFatal))
	flag.Parse()

	if *version {
		fmt.Println(AppVersion)
		return 0
	}

	config, err := ConfigLoad(*configFile)
	if err != nil {
		dlog.Error(err)
		return 1
	}
	if *logLevel >= 0 {
		config.LogLevel = *logLevel
	}
	config.applyLogging()
	if len(*algorithm) > 0 {
		config.Algorithm = *algorithm
	}

	app, err := NewApp(&config, os.Stdout)
	if err != nil {
		dlog.Error(err)
		return 1
	}
	defer app.Close()

	switch {
	case *verify:
		known, err := config.KnownCounts()
		if err != nil {
			dlog.Error(err)
			return 1
		}
		if !app.Verify(known) {
			return 1
		}
	case flag.NArg() > 0:
		bound, err := ParseBound(flag.Arg(0))
		if err != nil {
			dlog.Error(err)
			return 1
		}
		if err := app.Run(bound); err != nil {
			dlog.Error(err)
			return 1
		}
	default:
		if err := app.Interactive(os.Stdin); err != nil {
			dlog.Error(err)
			return 1
		}
	}
	return 0
}
