package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/snpmaf"
	_ "github.com/carbocation/snpmaf/compileinfoprint"
	"github.com/carbocation/snpmaf/maf"
	"github.com/carbocation/snpmaf/report"
	"github.com/carbocation/snpmaf/snpfile"
)

const usageText = `snpmaf computes the minor allele frequency (MAF) of each SNP in a
tab-delimited file with a header row followed by
SNPname	ReferenceAlleleCount	AlternateAlleleCount
rows. The file may be local, ~/-relative, or a gs:// path, and may be
gzip, zip, bzip2, xz or zlib compressed.

Usage: snpmaf [flags] <input file> <operation>

Operations:
  0	SNPname list with MAFs, then the count of SNPs with min <= MAF <= max
  1	SNPname list with MAFs
  2	count of SNPs with min <= MAF <= max

Flags:
`

type config struct {
	Path    string
	Mode    report.Mode
	Range   maf.Range
	Summary bool
	Bins    int
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalln(err)
	}
}

// parseArgs validates the command line before any file is touched. Problems
// are reported to stderr along with the usage text.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	cfg := config{}

	fs := flag.NewFlagSet("snpmaf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.Range.Min, "min", maf.DefaultRange.Min, "Smallest MAF (inclusive) counted by operations 0 and 2.")
	fs.Float64Var(&cfg.Range.Max, "max", maf.DefaultRange.Max, "Largest MAF (inclusive) counted by operations 0 and 2.")
	fs.BoolVar(&cfg.Summary, "summary", false, "Also print summary statistics and a histogram of the MAFs to stderr.")
	fs.IntVar(&cfg.Bins, "bins", 10, "Number of histogram bins used by -summary.")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	fail := func(err error) (config, error) {
		fmt.Fprintln(stderr, "snpmaf:", err)
		fs.Usage()
		return cfg, err
	}

	if fs.NArg() != 2 {
		return fail(fmt.Errorf("expected 2 positional arguments (input file and operation), got %d", fs.NArg()))
	}

	cfg.Path = fs.Arg(0)
	if cfg.Path == "" {
		return fail(fmt.Errorf("input file path is empty"))
	}

	mode, err := report.ParseMode(fs.Arg(1))
	if err != nil {
		return fail(err)
	}
	cfg.Mode = mode

	if err := cfg.Range.Validate(); err != nil {
		return fail(err)
	}

	if cfg.Bins < 1 {
		return fail(fmt.Errorf("-bins must be at least 1, got %d", cfg.Bins))
	}

	return cfg, nil
}

// run produces the whole report in memory and only writes it to stdout once
// every SNP has been computed, so a failure leaves stdout untouched.
func run(cfg config, stdout, stderr io.Writer) error {
	var client *storage.Client
	if snpmaf.IsGoogleStoragePath(cfg.Path) {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	records, err := snpfile.Open(cfg.Path, client)
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", cfg.Path, err))
	}

	result, err := maf.Calculate(records)
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", cfg.Path, err))
	}

	logger := log.New(stderr, log.Prefix(), log.Flags())

	if dups := len(records) - result.Len(); dups > 0 {
		logger.Println("Saw", dups, "duplicate SNP names; the last row for each name was kept")
	}

	if cfg.Summary {
		if err := summarize(logger, stderr, cfg, len(records), result); err != nil {
			return err
		}
	}

	w := bufio.NewWriter(stdout)
	if err := report.Write(w, cfg.Mode, cfg.Path, result, cfg.Range); err != nil {
		return pfx.Err(err)
	}

	return w.Flush()
}

func summarize(logger *log.Logger, stderr io.Writer, cfg config, nRecords int, result *maf.Result) error {
	logger.Printf("Read %d records (%d distinct SNPs) from %s\n", nRecords, result.Len(), cfg.Path)

	summary, err := maf.Summarize(result)
	if errors.Is(err, maf.ErrNoValues) {
		logger.Println("No SNPs to summarize")
		return nil
	} else if err != nil {
		return pfx.Err(err)
	}
	logger.Println(summary)

	if err := report.Histogram(stderr, result, cfg.Bins); err != nil {
		return pfx.Err(err)
	}

	return nil
}
