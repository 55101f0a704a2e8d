package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("result too large")
	ErrMalformed      = errors.New("malformed expression")
)

const (
	Malformed FailureKind = iota
	DivisionByZero
	Overflow
)

// FailureKind classifies evaluation errors.
type FailureKind uint8

func (k FailureKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "overflow"
	default:
		return "malformed"
	}
}

// FailureKindOf returns the kind of an error returned by Evaluate. Unknown
// errors are reported as Malformed.
func FailureKindOf(err error) FailureKind {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return DivisionByZero
	case errors.Is(err, ErrOverflow):
		return Overflow
	default:
		return Malformed
	}
}

// Evaluate computes the value of an expression such as "5+3×2" or "5×-3".
// Multiplication and division bind tighter than addition and subtraction;
// operators of equal precedence apply left to right.
func Evaluate(text string) (float64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}

	// Reduce × and ÷ into terms.
	var (
		terms = []float64{tokens[0].Value}
		ops   []Operator
	)
	for i := 1; i+1 < len(tokens); i += 2 {
		op, y := tokens[i].Op, tokens[i+1].Value
		switch op {
		case OpDivide:
			if y == 0 {
				return 0, fmt.Errorf("%s: operand at offset %d: %w", text, tokens[i+1].Pos, ErrDivisionByZero)
			}
			fallthrough
		case OpMultiply:
			last := len(terms) - 1
			terms[last] = op.apply(terms[last], y)
		default:
			ops = append(ops, op)
			terms = append(terms, y)
		}
	}

	// Sum the terms.
	result := terms[0]
	for i, op := range ops {
		result = op.apply(result, terms[i+1])
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%s: %w", text, ErrOverflow)
	}
	return result, nil
}
