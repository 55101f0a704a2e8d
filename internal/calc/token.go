package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// IsOperatorGlyph reports whether r is one of + - × ÷.
func IsOperatorGlyph(r rune) bool {
	_, ok := operatorForGlyph(r)
	return ok
}

// isCompound reports whether s is ×- or ÷-, an operator followed by the sign
// of a negative operand.
func isCompound(s string) bool {
	return s == "×-" || s == "÷-"
}

// boundary finds the trailing operand of text. It returns the offset where the
// operand starts, the offset where the operator before it starts, and that
// operator. The operator is "" when the operand begins the text.
func boundary(text string) (operand, opStart int, op string) {
	operand = len(text)
	for operand > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:operand])
		if IsOperatorGlyph(r) {
			break
		}
		operand -= size
	}
	if operand == 0 {
		return 0, 0, ""
	}
	r, size := utf8.DecodeLastRuneInString(text[:operand])
	opStart = operand - size
	if r == '-' && opStart > 0 {
		prev, psize := utf8.DecodeLastRuneInString(text[:opStart])
		if prev == '×' || prev == '÷' {
			opStart -= psize
		}
	}
	return operand, opStart, text[opStart:operand]
}

// LastOperandSpan returns the byte offsets of the number currently being
// edited at the end of text. The span is empty when text ends in an operator.
func LastOperandSpan(text string) (start, end int) {
	start, _, _ = boundary(text)
	return start, len(text)
}

// TrailingOperator returns the operator in front of the trailing operand,
// which may be one of the compounds ×- and ÷-. A minus sign at the very
// start of the text is returned as "-".
func TrailingOperator(text string) (string, bool) {
	_, _, op := boundary(text)
	return op, op != ""
}

// trimOperators removes operators at the end of text, leaving the last
// complete operand.
func trimOperators(text string) string {
	for text != "" {
		r, size := utf8.DecodeLastRuneInString(text)
		if !IsOperatorGlyph(r) {
			break
		}
		text = text[:len(text)-size]
	}
	return text
}

const (
	TokenNumber TokenType = iota
	TokenOperator
)

// TokenType distinguishes numbers from operators.
type TokenType uint8

// Token is an element of a tokenized expression.
type Token struct {
	Type  TokenType
	Pos   int // byte offset in the expression
	Text  string
	Value float64  // TokenNumber
	Op    Operator // TokenOperator
}

func (t Token) String() string {
	return t.Text
}

// Tokenize splits text into alternating number and operator tokens. A minus
// sign at the start or right after an operator belongs to the number after it.
func Tokenize(text string) ([]Token, error) {
	var (
		tokens        []Token
		expectOperand = true
		pos           = 0
	)
	for pos < len(text) {
		if !expectOperand {
			r, size := utf8.DecodeRuneInString(text[pos:])
			op, ok := operatorForGlyph(r)
			if !ok {
				return nil, malformed(pos, "expected operator, found %q", r)
			}
			tokens = append(tokens, Token{Type: TokenOperator, Pos: pos, Text: text[pos : pos+size], Op: op})
			pos += size
			expectOperand = true
			continue
		}
		tok, err := scanNumber(text, pos)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		pos += len(tok.Text)
		expectOperand = false
	}
	if len(tokens) == 0 {
		return nil, malformed(0, "empty expression")
	}
	if expectOperand {
		return nil, malformed(len(text), "missing operand")
	}
	return tokens, nil
}

// scanNumber reads an operand starting at pos.
func scanNumber(text string, pos int) (Token, error) {
	end := pos
	if end < len(text) && text[end] == '-' {
		end++
	}
	digits, dots := 0, 0
loop:
	for end < len(text) {
		switch c := text[end]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return Token{}, malformed(end, "second decimal point in operand")
			}
		default:
			break loop
		}
		end++
	}
	if digits == 0 {
		return Token{}, malformed(pos, "missing operand")
	}
	lit := text[pos:end]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return Token{}, fmt.Errorf("operand %s: %w", lit, ErrOverflow)
		}
		return Token{}, malformed(pos, "bad operand %q", lit)
	}
	return Token{Type: TokenNumber, Pos: pos, Text: lit, Value: v}, nil
}

func malformed(pos int, format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrMalformed, pos, fmt.Sprintf(format, args...))
}
