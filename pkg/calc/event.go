package calc

import (
	"fmt"
	"strings"

	"github.com/go-drift/calcphone/pkg/errors"
)

// EventKind identifies a button press.
type EventKind int

const (
	EventDigit EventKind = iota
	EventDecimal
	EventClear
	EventToggleSign
	EventPercent
	EventOperator
	EventEquals
)

func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventDecimal:
		return "decimal"
	case EventClear:
		return "clear"
	case EventToggleSign:
		return "toggle_sign"
	case EventPercent:
		return "percent"
	case EventOperator:
		return "operator"
	case EventEquals:
		return "equals"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one button press.
// Digit is set for EventDigit and Op for EventOperator.
type Event struct {
	Kind  EventKind
	Digit rune
	Op    Operator
}

// DigitEvent returns the event for pressing digit d.
func DigitEvent(d rune) Event {
	return Event{Kind: EventDigit, Digit: d}
}

// OperatorEvent returns the event for pressing op.
func OperatorEvent(op Operator) Event {
	return Event{Kind: EventOperator, Op: op}
}

// Label returns the keypad label that produces the event.
func (ev Event) Label() string {
	switch ev.Kind {
	case EventDigit:
		return string(ev.Digit)
	case EventDecimal:
		return "."
	case EventClear:
		return "AC"
	case EventToggleSign:
		return "±"
	case EventPercent:
		return "%"
	case EventOperator:
		return ev.Op.Symbol()
	case EventEquals:
		return "="
	default:
		return ""
	}
}

func (ev Event) String() string {
	return ev.Label()
}

// Apply dispatches ev to the matching engine method and returns the new
// display.
func (e *Engine) Apply(ev Event) string {
	switch ev.Kind {
	case EventDigit:
		return e.Digit(ev.Digit)
	case EventDecimal:
		return e.DecimalPoint()
	case EventClear:
		return e.Clear()
	case EventToggleSign:
		return e.ToggleSign()
	case EventPercent:
		return e.Percent()
	case EventOperator:
		return e.Operator(ev.Op)
	case EventEquals:
		return e.Equals()
	default:
		errors.Report(&errors.CalcError{
			Op:      "calc.Apply",
			Kind:    errors.KindParsing,
			Display: e.state.Display,
			Err:     &errors.ParseError{Input: ev.Kind.String(), Expected: "a known event kind"},
		})
		return e.state.Display
	}
}

// ParseKey converts a keypad label into an event. Besides the labels
// returned by Keypad it accepts ASCII spellings such as "*", "/", "-",
// "+/-", "C" and "enter". Words are matched case-insensitively.
func ParseKey(label string) (Event, error) {
	key := strings.TrimSpace(label)
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return DigitEvent(rune(key[0])), nil
	}
	if op, ok := ParseOperator(key); ok {
		return OperatorEvent(op), nil
	}
	switch strings.ToLower(key) {
	case ".", ",":
		return Event{Kind: EventDecimal}, nil
	case "ac", "c", "clear":
		return Event{Kind: EventClear}, nil
	case "±", "+/-", "neg":
		return Event{Kind: EventToggleSign}, nil
	case "%":
		return Event{Kind: EventPercent}, nil
	case "=", "enter":
		return Event{Kind: EventEquals}, nil
	}
	return Event{}, &errors.ParseError{Input: label, Expected: "a keypad label"}
}

// ParseKeys converts a sequence of labels, stopping at the first unknown one.
func ParseKeys(labels []string) ([]Event, error) {
	events := make([]Event, 0, len(labels))
	for _, label := range labels {
		ev, err := ParseKey(label)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

var keypad = [][]string{
	{"AC", "±", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "−"},
	{"1", "2", "3", "+"},
	{"0", ".", "="},
}

// Keypad returns the button labels row by row, top to bottom.
// Every label parses with ParseKey.
func Keypad() [][]string {
	rows := make([][]string, len(keypad))
	for i, row := range keypad {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}
