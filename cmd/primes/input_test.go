package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	testCases := []struct {
		input    string
		expected uint32
		valid    bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{" 100\n", 100, true},
		{"4294967295", 4294967295, true},
		{"4294967296", 0, false},
		{"-1", 0, false},
		{"+5", 0, false},
		{"3.5", 0, false},
		{"1e3", 0, false},
		{"ten", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		got, err := ParseBound(tc.input)
		if !tc.valid {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, got, "input %q", tc.input)
	}
}

func TestPrompterRepromptsOnInvalidInput(t *testing.T) {
	in := strings.NewReader("abc\n\n-4\n99999999999\n42\n")
	var out bytes.Buffer

	prompter := NewPrompter(in, &out)
	bound, err := prompter.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), bound)

	assert.Equal(t, 5, strings.Count(out.String(), "Enter an upper bound: "))
	assert.Contains(t, out.String(), `invalid upper bound "abc"`)
	assert.Contains(t, out.String(), `invalid upper bound "-4"`)
	assert.Contains(t, out.String(), `invalid upper bound "99999999999"`)
}

func TestPrompterEOF(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("7\nnope"), &out)

	bound, err := prompter.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), bound)

	_, err = prompter.Next()
	assert.True(t, errors.Is(err, io.EOF))
}
