package maf

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	result, err := Calculate([]Record{
		{"rs1", 80, 20},
		{"rs2", 98, 2},
		{"rs3", 50, 50},
	})
	if err != nil {
		t.Fatal(err)
	}

	s, err := Summarize(result)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []struct {
		Name     string
		Got      float64
		Expected float64
	}{
		{"Min", s.Min, 0.02},
		{"Max", s.Max, 0.5},
		{"Median", s.Median, 0.2},
		{"Mean", s.Mean, 0.24},
		{"StdDev", s.StdDev, 0.242487113},
	} {
		if math.Abs(v.Got-v.Expected) > 1e-6 {
			t.Errorf("%s: %v, expected %v", v.Name, v.Got, v.Expected)
		}
	}

	if s.N != 3 {
		t.Errorf("N: %d", s.N)
	}

	// Summarizing must not reorder the result
	if names := result.Names(); names[0] != "rs1" || names[2] != "rs3" {
		t.Errorf("Result was reordered: %v", names)
	}
}

func TestSummarizeSingle(t *testing.T) {
	result, _ := Calculate([]Record{{"rs1", 80, 20}})

	s, err := Summarize(result)
	if err != nil {
		t.Fatal(err)
	}
	if s.StdDev != 0 || s.Mean != 0.2 {
		t.Fatalf("%+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(NewResult()); !errors.Is(err, ErrNoValues) {
		t.Fatalf("Expected ErrNoValues, got %v", err)
	}
}
