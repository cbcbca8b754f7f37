package maf

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

var ErrNoValues = errors.New("no MAF values to summarize")

// Summary describes the distribution of MAF values in a Result.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Median float64
	Mean   float64
	StdDev float64
}

func (s Summary) String() string {
	return fmt.Sprintf("N=%d min=%.3f max=%.3f median=%.3f mean=%.4f sd=%.4f", s.N, s.Min, s.Max, s.Median, s.Mean, s.StdDev)
}

func Summarize(r *Result) (Summary, error) {
	values := r.Values()
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}

	out := Summary{N: len(values)}

	data := stats.Float64Data(values)

	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, fmt.Errorf("Summarize: %w", err)
	}
	if out.Max, err = data.Max(); err != nil {
		return out, fmt.Errorf("Summarize: %w", err)
	}
	// Median sorts a copy, so values keeps its order
	if out.Median, err = data.Median(); err != nil {
		return out, fmt.Errorf("Summarize: %w", err)
	}

	out.Mean, out.StdDev = stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		// The sample standard deviation of one value is NaN
		out.StdDev = 0
	}

	return out, nil
}
