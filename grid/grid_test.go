package grid

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapRows lays out a row-major token stream the way COMCOT does: each row
// of width tokens is split over lines holding at most perLine tokens.
func wrapRows(tokens []string, width, perLine int) []string {
	lines := []string{}
	for start := 0; start < len(tokens); start += width {
		row := tokens[start : start+width]
		for k := 0; k < len(row); k += perLine {
			end := k + perLine
			if end > len(row) { end = len(row) }
			lines = append(lines, " "+strings.Join(row[k:end], "   "))
		}
	}
	return lines
}

func sequence(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%.3f", float64(i)*0.125)
	}
	return out
}

func TestWrapWidth(t *testing.T) {
	tests := []struct {
		width, perLine, want int
	}{
		{3, 2, 2},
		{3, 3, 1},
		{10, 10, 1},
		{11, 10, 2},
		{20, 10, 2},
		{1, 15, 1},
		{5, 0, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, WrapWidth(test.width, test.perLine),
			"WrapWidth(%d, %d)", test.width, test.perLine)
	}
}

func TestReassembleScenario(t *testing.T) {
	m, err := Reassemble("zmax", []string{"1 2", "3", "4 5", "6"}, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, []string{"1", "2", "3"}, m.Row(0))
	assert.Equal(t, []string{"4", "5", "6"}, m.Row(1))
}

func TestReassembleShape(t *testing.T) {
	for _, dims := range [][3]int{
		{1, 1, 1}, {1, 7, 4}, {7, 1, 4}, {15, 4, 6}, {16, 3, 16}, {9, 9, 10},
	} {
		width, height, perLine := dims[0], dims[1], dims[2]
		tokens := sequence(width * height)

		m, err := Reassemble("ttt", wrapRows(tokens, width, perLine),
			width, height)
		require.NoError(t, err, "dims %v", dims)

		require.Equal(t, height, m.Height(), "dims %v", dims)
		for j := 0; j < m.Height(); j++ {
			assert.Len(t, m.Row(j), width, "dims %v row %d", dims, j)
		}
	}
}

func TestReassembleRoundTrip(t *testing.T) {
	width, height := 13, 5
	tokens := sequence(width * height)

	for perLine := 1; perLine <= width+2; perLine++ {
		m, err := Reassemble("zmax", wrapRows(tokens, width, perLine),
			width, height)
		require.NoError(t, err, "perLine = %d", perLine)

		out := []string{}
		for j := 0; j < m.Height(); j++ {
			out = append(out, m.Row(j)...)
		}
		assert.Equal(t, tokens, out, "perLine = %d", perLine)
	}
}

func TestReassemblePreservesTokens(t *testing.T) {
	lines := []string{"  0.100E+01  -.5000E-02", " 1.000", "NaN 7", "0003"}
	m, err := Reassemble("zmax", lines, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, "0.100E+01", m.At(0, 0))
	assert.Equal(t, "-.5000E-02", m.At(1, 0))
	assert.Equal(t, "1.000", m.At(2, 0))
	assert.Equal(t, "0003", m.At(2, 1))
}

func TestReassembleTokenCount(t *testing.T) {
	_, err := Reassemble("zmax_layer02.dat", []string{"1 2", "3", "4 5"}, 3, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))

	var me *MalformedError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "zmax_layer02.dat", me.Dataset)
	assert.Equal(t, 6, me.Expected)
	assert.Equal(t, 5, me.Actual)
	assert.Equal(t, -1, me.Row)
	assert.Contains(t, err.Error(), "expected 6 tokens, but found 5")
}

func TestReassembleRaggedRows(t *testing.T) {
	// Six tokens in total, but the first line claims two per line, so the
	// first row becomes "1 2 3 4" instead of three tokens.
	_, err := Reassemble("ttt", []string{"1 2", "3 4", "5", "6"}, 3, 2)

	var me *MalformedError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 0, me.Row)
	assert.Equal(t, 3, me.Expected)
	assert.Equal(t, 4, me.Actual)
}

func TestReassembleEmpty(t *testing.T) {
	_, err := Reassemble("zmax", nil, 3, 2)
	assert.True(t, errors.Is(err, ErrMalformed))

	_, err = Reassemble("zmax", []string{"", "1 2 3 4 5 6"}, 3, 2)
	assert.True(t, errors.Is(err, ErrMalformed))

	_, err = Reassemble("zmax", []string{"1"}, 0, 1)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestBoundsCheck(t *testing.T) {
	m, err := Reassemble("zmax", []string{"1 2 3", "4 5 6"}, 3, 2)
	require.NoError(t, err)

	assert.True(t, m.BoundsCheck(0, 0))
	assert.True(t, m.BoundsCheck(2, 1))
	assert.False(t, m.BoundsCheck(3, 0))
	assert.False(t, m.BoundsCheck(0, 2))
	assert.False(t, m.BoundsCheck(-1, 0))
	assert.Equal(t, 6, m.Cells())
}
