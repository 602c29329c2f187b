package calc

import (
	"slices"
	"strings"

	"github.com/go-drift/calcphone/pkg/errors"
)

// DefaultErrorMarker is shown when a result is undefined.
const DefaultErrorMarker = "Error"

// State is a snapshot of the calculator.
type State struct {
	// Display is the current entry or result, or the error marker.
	Display string `json:"display"`
	// Accumulator is the left operand of the pending operation, if any.
	Accumulator *float64 `json:"accumulator,omitempty"`
	// Pending is the operator awaiting its right operand.
	Pending Operator `json:"pending,omitempty"`
	// ReplaceNext makes the next digit start a fresh number.
	ReplaceNext bool `json:"replaceNext,omitempty"`
}

func initialState() State {
	return State{Display: "0"}
}

// HasAccumulator reports whether a left operand is stored.
func (s State) HasAccumulator() bool {
	return s.Accumulator != nil
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	if s.Accumulator != nil {
		v := *s.Accumulator
		s.Accumulator = &v
	}
	return s
}

// Options configures an Engine.
type Options struct {
	// ErrorMarker replaces DefaultErrorMarker. It must be non-empty and
	// must not parse as a number.
	ErrorMarker string
}

// ValidErrorMarker reports whether m can be told apart from any number
// the display may hold.
func ValidErrorMarker(m string) bool {
	if strings.TrimSpace(m) == "" {
		return false
	}
	_, numeric := parseDisplay(m)
	return !numeric
}

// Engine is the calculator state machine.
type Engine struct {
	state     State
	marker    string
	listeners []*listener
}

type listener struct {
	fn func(State)
}

// NewEngine returns an engine showing "0".
func NewEngine() *Engine {
	return NewEngineWithOptions(Options{})
}

// NewEngineWithOptions returns an engine configured by opts. An invalid
// ErrorMarker is reported and DefaultErrorMarker is used instead.
func NewEngineWithOptions(opts Options) *Engine {
	marker := opts.ErrorMarker
	if marker == "" {
		marker = DefaultErrorMarker
	} else if !ValidErrorMarker(marker) {
		errors.Report(&errors.CalcError{
			Op:   "calc.NewEngine",
			Kind: errors.KindConfig,
			Err:  &errors.ParseError{Input: marker, Expected: "a non-numeric error marker"},
		})
		marker = DefaultErrorMarker
	}
	return &Engine{state: initialState(), marker: marker}
}

// Display returns the current display string.
func (e *Engine) Display() string {
	return e.state.Display
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.clone()
}

// ErrorMarker returns the string shown for undefined results.
func (e *Engine) ErrorMarker() string {
	return e.marker
}

// IsError reports whether the display shows the error marker.
func (e *Engine) IsError() bool {
	return e.state.Display == e.marker
}

// AddListener registers fn to receive the state after every event.
// Returns a function that removes the listener.
func (e *Engine) AddListener(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	l := &listener{fn: fn}
	e.listeners = append(e.listeners, l)
	return func() {
		if i := slices.Index(e.listeners, l); i >= 0 {
			e.listeners = slices.Delete(e.listeners, i, i+1)
		}
	}
}

// commit replaces the state and notifies listeners.
func (e *Engine) commit(next State) string {
	e.state = next
	for _, l := range slices.Clone(e.listeners) {
		e.notify(l)
	}
	return e.state.Display
}

// notify calls one listener. A panicking listener is reported and does not
// stop the ones registered after it.
func (e *Engine) notify(l *listener) {
	defer errors.Recover("calc.listener", e.state.Display, nil)
	l.fn(e.state.clone())
}

// MaxDigits is the longest number that can be typed. Further digit presses
// are ignored, so a typed entry always parses back as a finite number.
const MaxDigits = 16

// Digit enters d, which must be '0' through '9'. Any other rune is
// reported and ignored, as is a digit beyond MaxDigits.
func (e *Engine) Digit(d rune) string {
	if d < '0' || d > '9' {
		errors.Report(&errors.CalcError{
			Op:      "calc.Digit",
			Kind:    errors.KindParsing,
			Display: e.state.Display,
			Err:     &errors.ParseError{Input: string(d), Expected: "a digit 0-9"},
		})
		return e.state.Display
	}
	s := e.state.clone()
	if s.ReplaceNext || s.Display == "0" {
		s.Display = string(d)
	} else if countDigits(s.Display) >= MaxDigits {
		return s.Display
	} else {
		s.Display += string(d)
	}
	s.ReplaceNext = false
	return e.commit(s)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// DecimalPoint starts the fractional part of the entry. Pressing it again
// has no effect.
func (e *Engine) DecimalPoint() string {
	s := e.state.clone()
	if s.ReplaceNext {
		s.Display = "0."
		s.ReplaceNext = false
	} else if !strings.Contains(s.Display, ".") {
		s.Display += "."
	}
	return e.commit(s)
}

// Clear resets the engine to its initial state.
func (e *Engine) Clear() string {
	return e.commit(initialState())
}

// ToggleSign negates the display. It does nothing while the display does
// not hold a number.
func (e *Engine) ToggleSign() string {
	s := e.state.clone()
	if v, ok := parseDisplay(s.Display); ok {
		s.Display = Format(-v)
	}
	return e.commit(s)
}

// Percent divides the display by 100. It does nothing while the display
// does not hold a number.
func (e *Engine) Percent() string {
	s := e.state.clone()
	if v, ok := parseDisplay(s.Display); ok {
		s.Display = Format(v / 100)
	}
	return e.commit(s)
}

// Operator stores op as the pending operator. If an operand was entered
// since the previous operator, the previous operation is folded into the
// accumulator first and its result is displayed.
func (e *Engine) Operator(op Operator) string {
	if !op.Valid() {
		errors.Report(&errors.CalcError{
			Op:      "calc.Operator",
			Kind:    errors.KindParsing,
			Display: e.state.Display,
			Err:     &errors.ParseError{Input: op.String(), Expected: "one of + − × ÷"},
		})
		return e.state.Display
	}
	s := e.state.clone()
	cur, _ := parseDisplay(s.Display)

	switch {
	case s.Accumulator == nil:
		s.Accumulator = &cur
	case s.Pending != OpNone && !s.ReplaceNext:
		result := apply(s.Pending, *s.Accumulator, cur)
		if isFinite(result) {
			s.Accumulator = &result
			s.Display = Format(result)
		} else {
			e.reportUndefined("calc.Operator", s.Pending, cur)
			s.Accumulator = nil
			s.Display = e.marker
		}
	}

	s.Pending = op
	s.ReplaceNext = true
	return e.commit(s)
}

// Equals completes the pending operation. It does nothing unless both an
// accumulator and a pending operator are present.
func (e *Engine) Equals() string {
	if e.state.Accumulator == nil || e.state.Pending == OpNone {
		return e.commit(e.state.clone())
	}
	s := e.state.clone()
	cur, _ := parseDisplay(s.Display)

	result := apply(s.Pending, *s.Accumulator, cur)
	if isFinite(result) {
		s.Display = Format(result)
		s.Accumulator = &result
	} else {
		e.reportUndefined("calc.Equals", s.Pending, cur)
		s.Display = e.marker
		s.Accumulator = nil
	}
	s.Pending = OpNone
	s.ReplaceNext = true
	return e.commit(s)
}

func (e *Engine) reportUndefined(op string, pending Operator, operand float64) {
	cause := errors.ErrOverflow
	if pending == OpDivide && operand == 0 {
		cause = errors.ErrDivisionByZero
	}
	errors.Report(&errors.CalcError{
		Op:      op,
		Kind:    errors.KindArithmetic,
		Display: e.state.Display,
		Err:     cause,
	})
}
