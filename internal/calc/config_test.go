package calc

import (
	"fmt"
	"testing"
)

func TestErrorStyleMessage(t *testing.T) {
	tests := []struct {
		err         error
		descriptive string
	}{
		{ErrDivisionByZero, "Error: division by zero"},
		{fmt.Errorf("6÷0: %w", ErrDivisionByZero), "Error: division by zero"},
		{ErrOverflow, "Error: too large"},
		{ErrMalformed, "Error"},
	}
	for _, tt := range tests {
		if got := ErrorsDescriptive.Message(tt.err); got != tt.descriptive {
			t.Errorf("descriptive message for %v = %q, want %q", tt.err, got, tt.descriptive)
		}
		if got := ErrorsLiteral.Message(tt.err); got != "Error" {
			t.Errorf("literal message for %v = %q", tt.err, got)
		}
	}
}

func TestErrorStyleSet(t *testing.T) {
	var s ErrorStyle
	if err := s.Set("literal"); err != nil || s != ErrorsLiteral {
		t.Fatalf("Set(literal): %v, %v", s, err)
	}
	if err := s.Set("loud"); err == nil {
		t.Fatal("no error for invalid style")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err != nil {
		t.Fatalf("zero config invalid: %v", err)
	}
	if err := (Config{Precision: 7, Errors: 9}).Validate(); err == nil {
		t.Fatal("no error for unknown policies")
	}
}
