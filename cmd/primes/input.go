package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseBound parses a base-10 upper bound in [0, math.MaxUint32].
// Signs, fractions and out-of-range values are rejected, never clamped.
func ParseBound(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	value, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid upper bound %q: must be an integer in [0, %d]", s, uint32(math.MaxUint32))
	}
	return uint32(value), nil
}

// Prompter asks for upper bounds on an interactive session until it reads a valid one.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Next prompts until a valid upper bound is entered. It returns io.EOF once
// the input is exhausted.
func (p *Prompter) Next() (uint32, error) {
	for {
		fmt.Fprint(p.out, "Enter an upper bound: ")
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(p.out)
			return 0, io.EOF
		}

		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			continue
		}

		bound, err := ParseBound(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return bound, nil
	}
}
