package calc

import "testing"

func TestParseButton(t *testing.T) {
	tests := []struct {
		label string
		want  Button
	}{
		{"0", Digit(0)},
		{"9", Digit(9)},
		{"00", DoubleZero},
		{".", Decimal},
		{"+", Op(OpAdd)},
		{"-", Op(OpSubtract)},
		{"*", Op(OpMultiply)},
		{"x", Op(OpMultiply)},
		{"×", Op(OpMultiply)},
		{"/", Op(OpDivide)},
		{"÷", Op(OpDivide)},
		{"=", Equals},
		{"ac", Clear},
		{"C", Clear},
		{"DEL", Backspace},
		{"+/-", ToggleSign},
		{"±", ToggleSign},
	}
	for _, tt := range tests {
		got, err := ParseButton(tt.label)
		if err != nil {
			t.Errorf("ParseButton(%q): %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseButton(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
	for _, bad := range []string{"", "10", "%", "sqrt"} {
		if _, err := ParseButton(bad); err == nil {
			t.Errorf("ParseButton(%q) did not fail", bad)
		}
	}
}

func TestButtonStringRoundTrip(t *testing.T) {
	buttons := []Button{
		Digit(0), Digit(7), DoubleZero, Decimal,
		Op(OpAdd), Op(OpSubtract), Op(OpMultiply), Op(OpDivide),
		Equals, Clear, Backspace, ToggleSign,
	}
	for _, b := range buttons {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
}
