// Package errors provides structured error reporting for the calculator.
//
// Calculator events never fail: an undefined result is shown to the user as
// an error marker. The types here form a side channel so a host can log or
// count those conditions without changing what the engine displays.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindArithmetic indicates an undefined or non-finite result.
	KindArithmetic
	// KindParsing indicates rejected input, such as an unknown key label.
	KindParsing
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindArithmetic:
		return "arithmetic"
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrDivisionByZero is reported when the divisor of a division is zero.
	ErrDivisionByZero = stderrors.New("division by zero")
	// ErrOverflow is reported when a result is infinite.
	ErrOverflow = stderrors.New("result out of range")
)

// CalcError represents a structured calculator error.
type CalcError struct {
	// Op is the operation that failed (e.g., "calc.Equals").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Display is the display string at the time of the error, if any.
	Display string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CalcError) Error() string {
	if e.Display != "" {
		return fmt.Sprintf("%s [%s] display=%q: %v", e.Op, e.Kind, e.Display, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CalcError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.run").
	Op string
	// Value is the value passed to panic().
	Value any
	// Display is the calculator display when the panic occurred, if known.
	Display string
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	msg := "panic"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Display != "" {
		msg += fmt.Sprintf(" display=%q", e.Display)
	}
	return fmt.Sprintf("%s: %v", msg, e.Value)
}

// ParseError represents input that could not be interpreted.
type ParseError struct {
	// Input is the rejected text.
	Input string
	// Expected describes what would have been accepted.
	Expected string
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("cannot parse %q", e.Input)
	}
	return fmt.Sprintf("cannot parse %q: expected %s", e.Input, e.Expected)
}

// ErrorHandler receives errors reported by the calculator.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *CalcError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
