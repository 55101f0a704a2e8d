package calc

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		v      float64
		full   string
		fixed2 string
	}{
		{8, "8", "8"},
		{8.5, "8.5", "8.50"},
		{-15, "-15", "-15"},
		{0, "0", "0"},
		{math.Copysign(0, -1), "0", "0"},
		{0.1 + 0.2, "0.30000000000000004", "0.30"},
		{1.0 / 3, "0.3333333333333333", "0.33"},
		{-2.675, "-2.675", "-2.67"},
		{-0.001, "-0.001", "0.00"},
		{1e20, "100000000000000000000", "100000000000000000000"},
		{0.000001, "0.000001", "0.00"},
	}
	for _, tt := range tests {
		if got := Format(tt.v); got != tt.full {
			t.Errorf("Format(%v) = %q, want %q", tt.v, got, tt.full)
		}
		if got := PrecisionFixed2.Format(tt.v); got != tt.fixed2 {
			t.Errorf("PrecisionFixed2.Format(%v) = %q, want %q", tt.v, got, tt.fixed2)
		}
	}
}

func TestFormatExtremes(t *testing.T) {
	for _, v := range []float64{math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64} {
		s := Format(v)
		if s == "" {
			t.Fatalf("empty output for %v", v)
		}
		// Results are fed back into expressions when chaining.
		got, err := Evaluate(s)
		if err != nil {
			t.Fatalf("formatted value %v does not evaluate: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip of %v gave %v", v, got)
		}
	}
}

func TestPrecisionSet(t *testing.T) {
	var p Precision
	if err := p.Set("fixed2"); err != nil || p != PrecisionFixed2 {
		t.Fatalf("Set(fixed2): %v, %v", p, err)
	}
	if p.String() != "fixed2" {
		t.Fatalf("wrong String %q", p.String())
	}
	if err := p.Set("full"); err != nil || p != PrecisionFull {
		t.Fatalf("Set(full): %v, %v", p, err)
	}
	if err := p.Set("3"); err == nil {
		t.Fatal("no error for invalid precision")
	}
}
