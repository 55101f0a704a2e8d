package main

import (
	"testing"

	"gioui.org/io/key"

	"github.com/fjl/giocalc/internal/calc"
)

func TestButtonForKey(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want calc.Button
	}{
		{key.Event{Name: "7"}, calc.Digit(7)},
		{key.Event{Name: "."}, calc.Decimal},
		{key.Event{Name: "*", Modifiers: key.ModShift}, calc.Op(calc.OpMultiply)},
		{key.Event{Name: "-"}, calc.Op(calc.OpSubtract)},
		{key.Event{Name: "-", Modifiers: key.ModAlt}, calc.ToggleSign},
		{key.Event{Name: key.NameReturn}, calc.Equals},
		{key.Event{Name: key.NameDeleteBackward}, calc.Backspace},
		{key.Event{Name: key.NameEscape}, calc.Clear},
	}
	for _, tt := range tests {
		got, ok := buttonForKey(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("buttonForKey(%q) = %v, %t, want %v", tt.ev.Name, got, ok, tt.want)
		}
	}
	if _, ok := buttonForKey(key.Event{Name: "Q"}); ok {
		t.Error("unexpected button for Q")
	}
}

func TestPendingOperator(t *testing.T) {
	tests := []struct {
		text string
		op   calc.Operator
		want bool
	}{
		{"5+", calc.OpAdd, true},
		{"5+", calc.OpSubtract, false},
		{"5+3", calc.OpAdd, false},
		{"5×-", calc.OpMultiply, true},
		{"5×-", calc.OpSubtract, false},
		{"-", calc.OpSubtract, false},
		{"0", calc.OpAdd, false},
	}
	for _, tt := range tests {
		if got := pendingOperator(calc.Display{Text: tt.text}, tt.op); got != tt.want {
			t.Errorf("pendingOperator(%q, %v) = %t, want %t", tt.text, tt.op, got, tt.want)
		}
	}
	if pendingOperator(calc.Display{Text: "Error", HasError: true}, calc.OpAdd) {
		t.Error("operator highlighted on error display")
	}
}
