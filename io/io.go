// Package io handles the files around a conversion: COMCOT layer naming,
// reading coordinate and grid files, writing XYZ files and reading
// configuration.
package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"
)

// LayerFileError reports a layer input file which could not be read.
type LayerFileError struct {
	Layer LayerID
	Path  string
	Err   error
}

func (e *LayerFileError) Error() string {
	return fmt.Sprintf("layer %s: could not read '%s': %s",
		e.Layer, e.Path, e.Err.Error())
}

func (e *LayerFileError) Unwrap() error { return e.Err }

// ReadLines reads every line of a file into memory. Trailing blank lines are
// dropped.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil { return nil, err }
	defer f.Close()

	lines := []string{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil { return nil, err }

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// ReadCoordinates reads a longitude or latitude file and returns its
// tokens in file order. Files may hold one value per line or wrap several
// values onto each line.
func ReadCoordinates(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil { return nil, err }

	tokens := []string{}
	for _, line := range lines {
		tokens = append(tokens, strings.Fields(line)...)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("'%s' contains no coordinates", path)
	}
	return tokens, nil
}

// CheckCoordinates checks that the coordinate file at path is numeric and
// agrees with tokens, the values ReadCoordinates returned for it. Files with
// one value per line are read as a numeric column. Wrapped files can't be
// read as a single column, so their tokens are parsed one at a time.
func CheckCoordinates(path string, tokens []string) error {
	lines, err := ReadLines(path)
	if err != nil { return err }

	wrapped := false
	for _, line := range lines {
		if len(strings.Fields(line)) > 1 {
			wrapped = true
			break
		}
	}

	if wrapped {
		for i, tok := range tokens {
			if _, err := strconv.ParseFloat(tok, 64); err != nil {
				return fmt.Errorf(
					"'%s': coordinate %d, '%s', is not numeric", path, i, tok,
				)
			}
		}
		return nil
	}

	cols, err := table.ReadTable(path, []int{0}, nil)
	if err != nil {
		return fmt.Errorf("'%s' is not a numeric column: %w", path, err)
	}
	if len(cols) == 0 || len(cols[0]) != len(tokens) {
		found := 0
		if len(cols) > 0 { found = len(cols[0]) }
		return fmt.Errorf(
			"'%s' has %d numeric values, but %d coordinates were read",
			path, found, len(tokens),
		)
	}
	return nil
}
