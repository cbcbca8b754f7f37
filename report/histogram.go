package report

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/snpmaf/maf"
)

// Histogram draws the MAF distribution as text, one bar per bin. If every SNP
// has the same MAF there is nothing to bin and a single line is printed.
func Histogram(w io.Writer, result *maf.Result, bins int) error {
	values := result.Values()
	if len(values) == 0 {
		return maf.ErrNoValues
	}
	if bins < 1 {
		bins = 1
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		_, err := fmt.Fprintf(w, "All %d SNPs have MAF %s\n", len(values), FormatMAF(lo))
		return err
	}

	hist := histogram.Hist(bins, values)

	return histogram.Fprint(w, hist, histogram.Linear(40))
}
