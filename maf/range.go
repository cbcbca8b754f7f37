package maf

import "fmt"

// Range is an inclusive MAF interval.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange is the interval reported by count mode unless overridden.
var DefaultRange = Range{Min: 0.02, Max: 0.3}

func (rng Range) Contains(v float64) bool {
	return v >= rng.Min && v <= rng.Max
}

func (rng Range) Validate() error {
	if rng.Min > rng.Max {
		return fmt.Errorf("MAF range minimum %g is greater than its maximum %g", rng.Min, rng.Max)
	}
	if rng.Min < 0 || rng.Max > 0.5 {
		return fmt.Errorf("MAF range [%g, %g] falls outside [0, 0.5]", rng.Min, rng.Max)
	}
	return nil
}

func (rng Range) String() string {
	return fmt.Sprintf("%g <= MAF <= %g", rng.Min, rng.Max)
}
