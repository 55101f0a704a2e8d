package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fjl/giocalc/internal/calc"
)

func runPress(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"press"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPressCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"5", "+", "3", "="}, "8\n"},
		{[]string{"5", "+", "3", "x", "2", "="}, "11\n"},
		{[]string{"5", "x", "-", "3", "="}, "-15\n"},
		{[]string{"9", "/", "0", "="}, "Error: division by zero\n"},
		{[]string{"--errors", "literal", "9", "/", "0", "="}, "Error\n"},
		{[]string{"--precision", "fixed2", "1", "/", "3", "="}, "0.33\n"},
		{[]string{"1", "/", "3", "="}, "0.3333333333333333\n"},
		{[]string{"1", "2", "+/-"}, "-12\n"},
		{[]string{"C"}, "0\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runPress(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Fatalf("got output %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPressTrace(t *testing.T) {
	out, err := runPress(t, "--trace", "7", "x", "6", "=")
	if err != nil {
		t.Fatal(err)
	}
	want := "7    7\n×    7×\n6    7×6\n=    42\n"
	if out != want {
		t.Fatalf("got output\n%s\nwant\n%s", out, want)
	}
}

func TestPressErrors(t *testing.T) {
	if _, err := runPress(t, "5", "%"); err == nil || !strings.Contains(err.Error(), "unknown button") {
		t.Fatalf("got error %v, want unknown button", err)
	}
	if _, err := runPress(t); err == nil {
		t.Fatal("no error without buttons")
	}
	if _, err := runPress(t, "--precision", "huge", "1"); err == nil {
		t.Fatal("no error for bad precision flag")
	}
}

func TestPressWriter(t *testing.T) {
	var out bytes.Buffer
	buttons := []calc.Button{calc.Digit(2), calc.Op(calc.OpMultiply), calc.Digit(3), calc.Equals}
	if err := press(&out, calc.Engine{}, buttons, false); err != nil {
		t.Fatal(err)
	}
	if out.String() != "6\n" {
		t.Fatalf("got %q", out.String())
	}
}
