package calc

import (
	"strings"
	"unicode/utf8"
)

// State is the state of a calculator between two button presses. The zero
// value is a cleared calculator.
//
// At most one of the three regimes is active: Err is set after a failed
// evaluation, HasResult after a successful one, and otherwise Expr holds the
// expression being edited.
type State struct {
	Expr      string
	Result    float64
	HasResult bool
	Err       error
}

// Display is what a host shows for a State.
type Display struct {
	Text     string
	HasError bool
}

// Engine applies button presses to calculator states.
type Engine struct {
	Config Config
}

// Press applies b to s using the default configuration.
func Press(s State, b Button) State {
	return Engine{}.Press(s, b)
}

// Press returns the state after pressing b.
func (e Engine) Press(s State, b Button) State {
	switch {
	case s.Err != nil:
		return e.pressAfterError(s, b)
	case s.HasResult:
		return e.pressAfterResult(s, b)
	default:
		return e.edit(s, b)
	}
}

// Display renders s.
func (e Engine) Display(s State) Display {
	switch {
	case s.Err != nil:
		return Display{Text: e.Config.Errors.Message(s.Err), HasError: true}
	case s.HasResult:
		return Display{Text: e.Config.Precision.Format(s.Result)}
	case s.Expr == "":
		return Display{Text: "0"}
	default:
		return Display{Text: s.Expr}
	}
}

// pressAfterError handles input while an error is shown. Entry keys
// discard the error and start over.
func (e Engine) pressAfterError(s State, b Button) State {
	switch b.Kind {
	case KindClear:
		return State{}
	case KindDigit, KindDoubleZero, KindDecimal, KindOperator:
		return e.edit(State{}, b)
	default:
		return s
	}
}

// pressAfterResult handles input while a result is shown. Digits start a new
// expression, operators and the decimal point continue from the result.
func (e Engine) pressAfterResult(s State, b Button) State {
	switch b.Kind {
	case KindDigit, KindDoubleZero:
		return State{Expr: b.text()}
	case KindOperator:
		return State{Expr: e.Config.Precision.Format(s.Result) + b.text()}
	case KindDecimal:
		expr := e.Config.Precision.Format(s.Result)
		if !strings.Contains(expr, ".") {
			expr += "."
		}
		return State{Expr: expr}
	case KindClear:
		return State{}
	default:
		return s
	}
}

// edit handles input while an expression is being edited.
func (e Engine) edit(s State, b Button) State {
	switch b.Kind {
	case KindDigit, KindDoubleZero:
		s.Expr += b.text()
	case KindDecimal:
		s.Expr = appendDecimal(s.Expr)
	case KindOperator:
		s.Expr = appendOperator(s.Expr, b.Op)
	case KindToggleSign:
		s.Expr = toggleSign(s.Expr)
	case KindBackspace:
		_, size := utf8.DecodeLastRuneInString(s.Expr)
		s.Expr = s.Expr[:len(s.Expr)-size]
	case KindClear:
		return State{}
	case KindEquals:
		return e.evaluate(s)
	}
	return s
}

// evaluate computes the expression, dropping operators that were never
// followed by an operand.
func (e Engine) evaluate(s State) State {
	expr := trimOperators(s.Expr)
	if expr == "" {
		return s
	}
	v, err := Evaluate(expr)
	if err != nil {
		return State{Err: err}
	}
	return State{Result: v, HasResult: true}
}

// appendDecimal adds a decimal point to the trailing operand unless it
// already has one.
func appendDecimal(expr string) string {
	start, _ := LastOperandSpan(expr)
	switch operand := expr[start:]; {
	case strings.Contains(operand, "."):
		return expr
	case operand == "":
		return expr + "0."
	default:
		return expr + "."
	}
}

// appendOperator adds op to expr. Pressing an operator right after another
// one replaces it, except that a minus after × or ÷ negates the next operand.
func appendOperator(expr string, op Operator) string {
	if expr == "" {
		if op == OpSubtract {
			return "-"
		}
		return expr
	}
	operand, opStart, prev := boundary(expr)
	if operand < len(expr) {
		// The trailing operand is complete.
		return expr + op.Glyph()
	}
	switch {
	case isCompound(prev):
		if op == OpSubtract {
			return expr
		}
		return expr[:opStart] + op.Glyph()
	case opStart == 0:
		// Only the leading minus sign has been entered.
		return expr
	case op == OpSubtract && (prev == "×" || prev == "÷"):
		return expr + op.Glyph()
	default:
		return expr[:opStart] + op.Glyph()
	}
}

// toggleSign flips the sign of the trailing operand by rewriting the
// operator in front of it.
func toggleSign(expr string) string {
	if expr == "" {
		return expr
	}
	operand, opStart, op := boundary(expr)
	prefix, num := expr[:opStart], expr[operand:]
	switch {
	case op == "":
		return "-" + num
	case opStart == 0 && op == "-":
		return num
	case isCompound(op):
		return prefix + strings.TrimSuffix(op, "-") + num
	default:
		return prefix + toggledOperator(op) + num
	}
}

func toggledOperator(op string) string {
	switch op {
	case "+":
		return "-"
	case "-":
		return "+"
	default:
		// × and ÷ carry no sign; negate the operand instead.
		return op + "-"
	}
}
