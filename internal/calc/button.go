package calc

import (
	"fmt"
	"strings"
)

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Operator is a binary arithmetic operator.
type Operator uint8

// Glyph returns the character used for op in expression text.
func (op Operator) Glyph() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		panic("unknown op")
	}
}

func (op Operator) String() string {
	return op.Glyph()
}

// apply computes the operation.
func (op Operator) apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	default:
		panic("unknown op")
	}
}

// operatorForGlyph returns the operator written as r.
func operatorForGlyph(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSubtract, true
	case '×':
		return OpMultiply, true
	case '÷':
		return OpDivide, true
	}
	return 0, false
}

const (
	KindDigit ButtonKind = iota
	KindDoubleZero
	KindDecimal
	KindOperator
	KindEquals
	KindClear
	KindBackspace
	KindToggleSign
)

// ButtonKind tells which key of the calculator was pressed.
type ButtonKind uint8

// Button is a single key press. Digit is set for KindDigit, Op for KindOperator.
type Button struct {
	Kind  ButtonKind
	Digit uint8
	Op    Operator
}

var (
	DoubleZero = Button{Kind: KindDoubleZero}
	Decimal    = Button{Kind: KindDecimal}
	Equals     = Button{Kind: KindEquals}
	Clear      = Button{Kind: KindClear}
	Backspace  = Button{Kind: KindBackspace}
	ToggleSign = Button{Kind: KindToggleSign}
)

// Digit returns the button for digit d.
func Digit(d int) Button {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("bad digit %d", d))
	}
	return Button{Kind: KindDigit, Digit: uint8(d)}
}

// Op returns the button for operator op.
func Op(op Operator) Button {
	return Button{Kind: KindOperator, Op: op}
}

// text is what the button appends to the expression while editing.
func (b Button) text() string {
	switch b.Kind {
	case KindDigit:
		return string(rune('0' + b.Digit))
	case KindDoubleZero:
		return "00"
	case KindDecimal:
		return "."
	case KindOperator:
		return b.Op.Glyph()
	}
	return ""
}

// String returns the label of the button.
func (b Button) String() string {
	switch b.Kind {
	case KindDigit, KindDoubleZero, KindDecimal, KindOperator:
		return b.text()
	case KindEquals:
		return "="
	case KindClear:
		return "AC"
	case KindBackspace:
		return "DEL"
	case KindToggleSign:
		return "±"
	default:
		return fmt.Sprintf("Button(%d)", b.Kind)
	}
}

// ParseButton returns the button with the given label. Besides the labels
// produced by String, it accepts the ASCII spellings typed on a keyboard.
func ParseButton(label string) (Button, error) {
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Digit(int(label[0] - '0')), nil
	}
	switch strings.ToUpper(label) {
	case "00":
		return DoubleZero, nil
	case ".", ",":
		return Decimal, nil
	case "+":
		return Op(OpAdd), nil
	case "-":
		return Op(OpSubtract), nil
	case "*", "X", "×":
		return Op(OpMultiply), nil
	case "/", "÷":
		return Op(OpDivide), nil
	case "=":
		return Equals, nil
	case "C", "AC":
		return Clear, nil
	case "DEL", "<", "BS":
		return Backspace, nil
	case "±", "+/-", "NEG":
		return ToggleSign, nil
	}
	return Button{}, fmt.Errorf("unknown button %q", label)
}
