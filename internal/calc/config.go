package calc

import (
	"errors"
	"fmt"
)

const (
	ErrorsDescriptive ErrorStyle = iota
	ErrorsLiteral
)

// ErrorStyle selects how evaluation errors are shown on the display.
type ErrorStyle uint8

// Message returns the display text for an evaluation error.
func (s ErrorStyle) Message(err error) string {
	if s == ErrorsLiteral {
		return "Error"
	}
	switch FailureKindOf(err) {
	case DivisionByZero:
		return "Error: division by zero"
	case Overflow:
		return "Error: too large"
	default:
		return "Error"
	}
}

func (s ErrorStyle) String() string {
	switch s {
	case ErrorsDescriptive:
		return "descriptive"
	case ErrorsLiteral:
		return "literal"
	default:
		return fmt.Sprintf("ErrorStyle(%d)", uint8(s))
	}
}

// Set implements pflag.Value.
func (s *ErrorStyle) Set(v string) error {
	switch v {
	case "descriptive":
		*s = ErrorsDescriptive
	case "literal":
		*s = ErrorsLiteral
	default:
		return fmt.Errorf("invalid error style %q (want descriptive or literal)", v)
	}
	return nil
}

// Type implements pflag.Value.
func (s *ErrorStyle) Type() string {
	return "style"
}

// Config holds the display policies of an Engine. The zero value shows
// results at full precision with descriptive error messages.
type Config struct {
	Precision Precision
	Errors    ErrorStyle
}

// Validate checks that both policies are known values.
func (c Config) Validate() error {
	var errs []error
	if c.Precision > PrecisionFixed2 {
		errs = append(errs, fmt.Errorf("unknown precision %d", c.Precision))
	}
	if c.Errors > ErrorsLiteral {
		errs = append(errs, fmt.Errorf("unknown error style %d", c.Errors))
	}
	return errors.Join(errs...)
}
