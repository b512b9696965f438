package grid

import (
	"fmt"
	"strings"
)

// Record is a single x, y, value line of an XYZ file.
type Record struct {
	X, Y, Value string
}

// String returns the record as it appears in an XYZ file.
func (r Record) String() string {
	return r.X + " " + r.Y + " " + r.Value
}

// Flatten pairs every cell of m with its coordinates. Records are ordered
// x-major: all y samples of xs[0] come first, then those of xs[1], and so
// on. If reverseY is set, the y labels are walked from the end of ys while
// the values are still read from rows 0, 1, ..., which reproduces the
// north-up variant of the converter.
func Flatten(m *Matrix, xs, ys []string, reverseY bool) ([]Record, error) {
	if len(xs) != m.Width() || len(ys) != m.Height() {
		return nil, fmt.Errorf(
			"%s: %d x %d grid given %d x and %d y coordinates: %w",
			m.Name, m.Width(), m.Height(), len(xs), len(ys), ErrShape,
		)
	}

	nx, ny := m.Width(), m.Height()
	recs := make([]Record, 0, nx*ny)
	for i := 0; i < nx; i++ {
		x := strings.TrimSpace(xs[i])
		for j := 0; j < ny; j++ {
			yIdx := j
			if reverseY { yIdx = ny - 1 - j }

			recs = append(recs, Record{
				X:     x,
				Y:     strings.TrimSpace(ys[yIdx]),
				Value: strings.TrimSpace(m.At(i, j)),
			})
		}
	}

	return recs, nil
}
