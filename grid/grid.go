// Package grid rebuilds dense 2D grids from wrapped COMCOT text output and
// flattens them into XYZ records.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed is wrapped by every MalformedError.
	ErrMalformed = errors.New("malformed grid data")
	// ErrShape is returned when coordinate vectors don't match a Matrix.
	ErrShape = errors.New("coordinate vectors do not match grid shape")
)

// MalformedError describes a dataset whose tokens can't be arranged into a
// Width x Height grid. Row is -1 when the total token count is wrong and the
// index of the offending logical row otherwise.
type MalformedError struct {
	Dataset          string
	Expected, Actual int
	Row              int
}

func (e *MalformedError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf(
			"%s: expected %d tokens, but found %d", e.Dataset, e.Expected, e.Actual,
		)
	}
	return fmt.Sprintf(
		"%s: row %d has %d tokens, but the grid is %d tokens wide",
		e.Dataset, e.Row, e.Actual, e.Expected,
	)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Matrix is a Height x Width grid of string tokens. Row j holds the values
// of the j-th latitude sample, column i the values of the i-th longitude
// sample. Matrices are never modified after Reassemble returns them.
type Matrix struct {
	Name string
	rows [][]string
	width int
}

// Width returns the number of x samples.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of y samples.
func (m *Matrix) Height() int { return len(m.rows) }

// Cells returns Width() * Height().
func (m *Matrix) Cells() int { return m.width * len(m.rows) }

// At returns the token at x index i and y index j.
func (m *Matrix) At(i, j int) string { return m.rows[j][i] }

// Row returns a copy of the j-th logical row.
func (m *Matrix) Row(j int) []string {
	out := make([]string, m.width)
	copy(out, m.rows[j])
	return out
}

// BoundsCheck returns true if (i, j) lies inside the grid.
func (m *Matrix) BoundsCheck(i, j int) bool {
	return i >= 0 && j >= 0 && i < m.width && j < len(m.rows)
}

// WrapWidth returns the number of physical lines which make up one logical
// row of width tokens when each line holds tokensPerLine tokens.
func WrapWidth(width, tokensPerLine int) int {
	if tokensPerLine <= 0 { return 0 }
	return (width + tokensPerLine - 1) / tokensPerLine
}

// Reassemble joins the wrapped physical lines of a grid file into a
// height x width Matrix. The number of tokens on the first line decides how
// many lines are merged per row, so every dataset must be reassembled on its
// own.
func Reassemble(name string, lines []string, width, height int) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf(
			"%s: grid must have positive dimensions, got %d x %d: %w",
			name, width, height, ErrMalformed,
		)
	}

	total := 0
	for _, line := range lines {
		total += len(strings.Fields(line))
	}
	if total != width*height {
		return nil, &MalformedError{name, width * height, total, -1}
	}

	perLine := len(strings.Fields(lines[0]))
	if perLine == 0 {
		return nil, fmt.Errorf(
			"%s: first line holds no tokens: %w", name, ErrMalformed,
		)
	}
	wrap := WrapWidth(width, perLine)

	m := &Matrix{Name: name, rows: make([][]string, 0, height), width: width}
	for j := 0; j < height; j++ {
		if len(lines) == 0 {
			return nil, &MalformedError{name, width, 0, j}
		}

		n := wrap
		if n > len(lines) { n = len(lines) }
		row := strings.Fields(strings.Join(lines[:n], " "))
		lines = lines[n:]

		if len(row) != width {
			return nil, &MalformedError{name, width, len(row), j}
		}
		m.rows = append(m.rows, row)
	}

	return m, nil
}
