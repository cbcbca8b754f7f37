// Package report prints MAF results as a per-SNP table, a range count, or
// both.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/snpmaf/maf"
)

type Mode int

const (
	ModeBoth  Mode = iota // "0"
	ModeList              // "1"
	ModeCount             // "2"
)

var ErrInvalidMode = errors.New("operation must be one of 0, 1 or 2")

// modes maps the operation selectors accepted on the command line.
var modes = map[string]Mode{
	"0": ModeBoth,
	"1": ModeList,
	"2": ModeCount,
}

func ParseMode(s string) (Mode, error) {
	m, exists := modes[s]
	if !exists {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidMode)
	}

	return m, nil
}

func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeList:
		return "list"
	case ModeCount:
		return "count"
	}

	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Write emits the output for mode. identifier names the input in count
// output, normally the path the user passed.
func Write(w io.Writer, mode Mode, identifier string, result *maf.Result, rng maf.Range) error {
	switch mode {
	case ModeBoth:
		if err := List(w, result); err != nil {
			return err
		}
		return Count(w, identifier, result, rng)
	case ModeList:
		return List(w, result)
	case ModeCount:
		return Count(w, identifier, result, rng)
	}

	return fmt.Errorf("%v: %w", mode, ErrInvalidMode)
}

// List prints a SNPname/MAF table.
func List(w io.Writer, result *maf.Result) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", "SNPname", "MAF"); err != nil {
		return err
	}

	var err error
	result.Each(func(name string, v float64) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s\t%s\n", name, FormatMAF(v))
	})

	return err
}

// Count prints how many SNPs fall within rng.
func Count(w io.Writer, identifier string, result *maf.Result, rng maf.Range) error {
	_, err := fmt.Fprintf(w, "%s contains %d SNPS with %s\n", identifier, result.Count(rng), rng)
	return err
}

// FormatMAF prints v in its shortest exact decimal form, keeping a decimal
// point on whole numbers: 0.2 prints as "0.2" and 0 as "0.0".
func FormatMAF(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}
