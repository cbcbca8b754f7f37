package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/carbocation/snpmaf/maf"
)

func mustCalculate(t *testing.T, records ...maf.Record) *maf.Result {
	t.Helper()

	result, err := maf.Calculate(records)
	if err != nil {
		t.Fatal(err)
	}

	return result
}

func TestParseMode(t *testing.T) {
	for in, expected := range map[string]Mode{"0": ModeBoth, "1": ModeList, "2": ModeCount} {
		if m, err := ParseMode(in); err != nil || m != expected {
			t.Errorf("ParseMode(%q) = %v, %v", in, m, err)
		}
	}

	for _, in := range []string{"", "3", "-1", "01", "list", " 1"} {
		if _, err := ParseMode(in); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q): expected ErrInvalidMode, got %v", in, err)
		}
	}
}

func TestFormatMAF(t *testing.T) {
	for in, expected := range map[float64]string{
		0.2:   "0.2",
		0.02:  "0.02",
		0.5:   "0.5",
		0.333: "0.333",
		0.001: "0.001",
		0:     "0.0",
		1:     "1.0",
	} {
		if got := FormatMAF(in); got != expected {
			t.Errorf("FormatMAF(%v) = %q, expected %q", in, got, expected)
		}
	}
}

func TestListSingle(t *testing.T) {
	result := mustCalculate(t, maf.Record{Name: "rs1", Ref: 80, Alt: 20})

	var buf bytes.Buffer
	if err := List(&buf, result); err != nil {
		t.Fatal(err)
	}

	if got, expected := buf.String(), "SNPname\tMAF\nrs1\t0.2\n"; got != expected {
		t.Fatalf("\nGot:      %q\nExpected: %q", got, expected)
	}
}

func TestListOrder(t *testing.T) {
	result := mustCalculate(t,
		maf.Record{Name: "rsB", Ref: 1, Alt: 2},
		maf.Record{Name: "rsA", Ref: 10, Alt: 0},
		maf.Record{Name: "rsB", Ref: 98, Alt: 2},
	)

	var buf bytes.Buffer
	if err := List(&buf, result); err != nil {
		t.Fatal(err)
	}

	if got, expected := buf.String(), "SNPname\tMAF\nrsB\t0.02\nrsA\t0.0\n"; got != expected {
		t.Fatalf("\nGot:      %q\nExpected: %q", got, expected)
	}
}

func TestCount(t *testing.T) {
	result := mustCalculate(t,
		maf.Record{Name: "rs1", Ref: 98, Alt: 2},
		maf.Record{Name: "rs2", Ref: 50, Alt: 50},
	)

	var buf bytes.Buffer
	if err := Count(&buf, "snps.txt", result, maf.DefaultRange); err != nil {
		t.Fatal(err)
	}

	if got, expected := buf.String(), "snps.txt contains 1 SNPS with 0.02 <= MAF <= 0.3\n"; got != expected {
		t.Fatalf("\nGot:      %q\nExpected: %q", got, expected)
	}

	buf.Reset()
	if err := Count(&buf, "snps.txt", result, maf.Range{Min: 0.4, Max: 0.5}); err != nil {
		t.Fatal(err)
	}
	if got, expected := buf.String(), "snps.txt contains 1 SNPS with 0.4 <= MAF <= 0.5\n"; got != expected {
		t.Fatalf("\nGot:      %q\nExpected: %q", got, expected)
	}
}

func TestWriteEmpty(t *testing.T) {
	result := mustCalculate(t)

	for mode, expected := range map[Mode]string{
		ModeList:  "SNPname\tMAF\n",
		ModeCount: "in.txt contains 0 SNPS with 0.02 <= MAF <= 0.3\n",
		ModeBoth:  "SNPname\tMAF\nin.txt contains 0 SNPS with 0.02 <= MAF <= 0.3\n",
	} {
		var buf bytes.Buffer
		if err := Write(&buf, mode, "in.txt", result, maf.DefaultRange); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != expected {
			t.Errorf("%v:\nGot:      %q\nExpected: %q", mode, got, expected)
		}
	}
}

func TestWriteBoth(t *testing.T) {
	result := mustCalculate(t,
		maf.Record{Name: "rs1", Ref: 80, Alt: 20},
		maf.Record{Name: "rs2", Ref: 50, Alt: 50},
	)

	var list, count, both bytes.Buffer
	if err := Write(&list, ModeList, "in.txt", result, maf.DefaultRange); err != nil {
		t.Fatal(err)
	}
	if err := Write(&count, ModeCount, "in.txt", result, maf.DefaultRange); err != nil {
		t.Fatal(err)
	}
	if err := Write(&both, ModeBoth, "in.txt", result, maf.DefaultRange); err != nil {
		t.Fatal(err)
	}

	if both.String() != list.String()+count.String() {
		t.Fatalf("Both mode should be list followed by count.\nGot: %q", both.String())
	}
}

func TestWriteInvalidMode(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Mode(7), "in.txt", mustCalculate(t), maf.DefaultRange); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("Expected ErrInvalidMode, got %v", err)
	}
}

func TestHistogram(t *testing.T) {
	result := mustCalculate(t,
		maf.Record{Name: "rs1", Ref: 80, Alt: 20},
		maf.Record{Name: "rs2", Ref: 98, Alt: 2},
		maf.Record{Name: "rs3", Ref: 50, Alt: 50},
		maf.Record{Name: "rs4", Ref: 70, Alt: 30},
	)

	var buf bytes.Buffer
	if err := Histogram(&buf, result, 5); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("Expected a histogram")
	}
	t.Log("\n" + buf.String())
}

func TestHistogramDegenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Histogram(&buf, mustCalculate(t), 5); !errors.Is(err, maf.ErrNoValues) {
		t.Fatalf("Expected ErrNoValues, got %v", err)
	}

	result := mustCalculate(t,
		maf.Record{Name: "rs1", Ref: 80, Alt: 20},
		maf.Record{Name: "rs2", Ref: 20, Alt: 80},
	)
	if err := Histogram(&buf, result, 5); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "All 2 SNPs have MAF 0.2") {
		t.Fatalf("Unexpected output: %q", buf.String())
	}
}
