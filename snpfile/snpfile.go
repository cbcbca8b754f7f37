// Package snpfile reads SNP allele count files: a header line followed by one
// tab-delimited SNPname, ReferenceAlleleCount, AlternateAlleleCount row per
// SNP.
package snpfile

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/snpmaf"
	"github.com/carbocation/snpmaf/maf"
)

// Map columns in the count file to their positions
const (
	SNPName int = iota
	ReferenceAlleleCount
	AlternateAlleleCount

	NumColumns
)

const Delimiter = '\t'

// FormatError reports a row that cannot be parsed. Line is 1-based and counts
// the header.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Reason)
}

// Open reads every record from a local, ~/ or gs:// path. Compressed inputs
// are decompressed transparently.
func Open(path string, client *storage.Client) ([]maf.Record, error) {
	rc, err := snpmaf.OpenInput(path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc)
}

// Read loads the full input into memory and parses it. The first line is a
// header and is ignored. Lines may end in \n, \r\n or \r. Blank lines are
// skipped. Any other malformed line aborts the read; no records are returned
// alongside an error.
func Read(r io.Reader) ([]maf.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// \r\n, \n and a bare \r all end a line
	lines := strings.Split(newlines.Replace(string(data)), "\n")

	records := make([]maf.Record, 0, len(lines))
	for i, raw := range lines {
		if i == 0 {
			// Header
			continue
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		rec, ferr := parseLine(line)
		if ferr != nil {
			ferr.Line = i + 1
			if ferr.Reason == errFieldCount {
				ferr.Reason += delimiterHint(data)
			}
			return nil, ferr
		}

		records = append(records, rec)
	}

	return records, nil
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

const errFieldCount = "expected 3 tab-delimited fields"

func parseLine(line string) (maf.Record, *FormatError) {
	cols := strings.Split(line, string(Delimiter))
	if len(cols) != NumColumns {
		return maf.Record{}, &FormatError{
			Text:   line,
			Reason: errFieldCount,
		}
	}

	ref, err := parseCount(cols[ReferenceAlleleCount])
	if err != nil {
		return maf.Record{}, &FormatError{
			Text:   line,
			Reason: "ReferenceAlleleCount: " + err.Error(),
		}
	}

	alt, err := parseCount(cols[AlternateAlleleCount])
	if err != nil {
		return maf.Record{}, &FormatError{
			Text:   line,
			Reason: "AlternateAlleleCount: " + err.Error(),
		}
	}

	return maf.Record{
		Name: cols[SNPName],
		Ref:  ref,
		Alt:  alt,
	}, nil
}

func parseCount(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", field)
	}
	if v < 0 {
		return 0, fmt.Errorf("%d is negative", v)
	}

	return v, nil
}

// delimiterHint names the delimiter the file seems to use, if it is not a
// tab.
func delimiterHint(data []byte) string {
	delim := snpmaf.DetermineDelimiter(bytes.NewReader(data))
	if delim == Delimiter {
		return ""
	}

	return fmt.Sprintf("; the file appears to be delimited by %q", delim)
}
