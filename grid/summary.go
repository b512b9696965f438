package grid

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary gives basic statistics over the values of a Matrix. It is only
// used for log output.
type Summary struct {
	Cells          int
	Min, Max, Mean float64
	StdDev         float64
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"%d cells, min = %g, max = %g, mean = %g, std = %g",
		s.Cells, s.Min, s.Max, s.Mean, s.StdDev,
	)
}

// Summarize parses every token of m as a float and computes a Summary. The
// tokens stored in m are left untouched.
func Summarize(m *Matrix) (Summary, error) {
	vals := make([]float64, 0, m.Cells())
	for j := 0; j < m.Height(); j++ {
		for i := 0; i < m.Width(); i++ {
			v, err := strconv.ParseFloat(m.At(i, j), 64)
			if err != nil {
				return Summary{}, fmt.Errorf(
					"%s: cell (%d, %d) is not numeric: %w", m.Name, i, j, err,
				)
			}
			vals = append(vals, v)
		}
	}

	if len(vals) == 0 { return Summary{}, nil }

	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) == 1 { std = 0 }
	return Summary{
		Cells:  len(vals),
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   mean,
		StdDev: std,
	}, nil
}
