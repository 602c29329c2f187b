package calc

import (
	"fmt"
	"math"
)

// Operator is a binary arithmetic operator.
// The zero value, OpNone, means no operator is pending.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the operator name.
func (op Operator) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Symbol returns the keypad glyph for the operator, or "" for OpNone.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// Valid reports whether op is one of the four binary operators.
func (op Operator) Valid() bool {
	return op >= OpAdd && op <= OpDivide
}

// ParseOperator accepts a keypad glyph or its ASCII spelling.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "*", "×", "x", "X":
		return OpMultiply, true
	case "/", "÷":
		return OpDivide, true
	}
	return OpNone, false
}

// MarshalText encodes the operator as its keypad glyph.
func (op Operator) MarshalText() ([]byte, error) {
	return []byte(op.Symbol()), nil
}

// UnmarshalText decodes a keypad glyph. Empty text decodes to OpNone.
func (op *Operator) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*op = OpNone
		return nil
	}
	parsed, ok := ParseOperator(string(text))
	if !ok {
		return fmt.Errorf("unknown operator %q", text)
	}
	*op = parsed
	return nil
}

// apply evaluates a op b. Division by zero yields NaN.
func apply(op Operator, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	default:
		return b
	}
}
