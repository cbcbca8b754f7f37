// Package maf computes minor allele frequencies from reference and alternate
// allele counts.
package maf

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Places is the number of decimal digits that allele frequencies are rounded
// to before the minor one is chosen.
const Places = 3

var ErrDivisionByZero = errors.New("reference and alternate allele counts sum to zero")

// ZeroCountError identifies the SNP whose counts could not produce a
// frequency.
type ZeroCountError struct {
	Name string
}

func (e *ZeroCountError) Error() string {
	return fmt.Sprintf("SNP %q: %s", e.Name, ErrDivisionByZero)
}

func (e *ZeroCountError) Unwrap() error {
	return ErrDivisionByZero
}

// MAF returns the smaller of the reference and alternate allele frequencies,
// each rounded to Places decimal digits. Since the two frequencies sum to 1,
// the result is always within [0, 0.5].
func MAF(ref, alt int) (float64, error) {
	return Record{Ref: ref, Alt: alt}.MAF()
}

// MAF is the minor allele frequency of the record's counts.
func (r Record) MAF() (float64, error) {
	total := r.Total()
	if total == 0 {
		return 0, ErrDivisionByZero
	}

	refFreq := float64(r.Ref) / total
	altFreq := float64(r.Alt) / total

	return math.Min(Round(refFreq, Places), Round(altFreq, Places)), nil
}

// Round rounds x to the given number of decimal places. The decision is made
// on the exact decimal expansion of x, with exact ties going to the even
// digit. Thus 1/80 (stored as 0.01250000000000000069...) rounds up to 0.013
// while 1/16 (exactly 0.0625) rounds down to 0.062.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	// strconv rounds the exact binary value, ties to even, and the shortest
	// decimal it prints parses back to the nearest float.
	out, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return out
}
