package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedisct1/dlog"

	"primes/sieve"
)

var algorithms = map[string]func(uint32) sieve.PrimeSet{
	AlgorithmTrial:        sieve.Sieve,
	AlgorithmEratosthenes: sieve.Eratosthenes,
}

func lookupAlgorithm(name string) (func(uint32) sieve.PrimeSet, error) {
	compute, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm [%s]: expected %s or %s", name, AlgorithmTrial, AlgorithmEratosthenes)
	}
	return compute, nil
}

// App ties the selected algorithm to its output and report destinations.
type App struct {
	algorithm string
	compute   func(uint32) sieve.PrimeSet
	out       io.Writer
	report    *Report
}

func NewApp(config *Config, out io.Writer) (*App, error) {
	compute, err := lookupAlgorithm(config.Algorithm)
	if err != nil {
		return nil, err
	}
	report, err := NewReport(config)
	if err != nil {
		return nil, err
	}
	return &App{
		algorithm: config.Algorithm,
		compute:   compute,
		out:       out,
		report:    report,
	}, nil
}

func (app *App) Close() error {
	return app.report.Close()
}

// Run computes the primes up to bound and prints them in ascending order.
func (app *App) Run(bound uint32) error {
	start := time.Now()
	primes := app.compute(bound)
	elapsed := time.Since(start)
	dlog.Debugf("[%s] found %d primes up to %d in %v", app.algorithm, primes.Len(), bound, elapsed)

	if _, err := io.WriteString(app.out, render(bound, primes)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return app.report.Record(bound, app.algorithm, primes.Len(), elapsed)
}

// Interactive reads bounds from in until EOF, answering each one.
func (app *App) Interactive(in io.Reader) error {
	prompter := NewPrompter(in, app.out)
	for {
		bound, err := prompter.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := app.Run(bound); err != nil {
			return err
		}
	}
}

// Verify checks the algorithm against the known-count table and reports
// whether every entry matched.
func (app *App) Verify(known map[uint32]int) bool {
	mismatches := Verify(known, app.compute)
	for _, m := range mismatches {
		dlog.Errorf("[%s] expected %d primes up to %d, got %d", app.algorithm, m.Expected, m.Bound, m.Got)
	}
	if len(mismatches) > 0 {
		return false
	}
	dlog.Noticef("[%s] all %d known counts match", app.algorithm, len(known))
	return true
}

func render(bound uint32, primes sieve.PrimeSet) string {
	var sb strings.Builder
	sb.WriteString("primes <= ")
	sb.WriteString(strconv.FormatUint(uint64(bound), 10))
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(primes.Len()))
	sb.WriteString("):")
	for _, p := range primes.Sorted() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(p), 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}
