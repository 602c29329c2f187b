package testing

import (
	"fmt"
	"testing"

	"github.com/go-drift/calcphone/pkg/calc"
	"github.com/go-drift/calcphone/pkg/errors"
)

// TestingT is the subset of *testing.T used by assertions, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Step is one recorded event and the state it produced.
type Step struct {
	Key   string     `json:"key"`
	State calc.State `json:"state"`
}

// Tester drives a calculator engine and records what it displays.
type Tester struct {
	engine      *calc.Engine
	steps       []Step
	key         string
	reports     []*errors.CalcError
	removeHook  func()
	prevHandler errors.ErrorHandler
}

// NewTester creates a tester around a fresh engine configured by opts.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester(opts calc.Options) *Tester {
	t := &Tester{}
	// Install the handler first so option problems are collected too.
	t.prevHandler = errors.SetHandler(reportCollector{t})
	t.engine = calc.NewEngineWithOptions(opts)
	t.removeHook = t.engine.AddListener(func(s calc.State) {
		t.steps = append(t.steps, Step{Key: t.key, State: s})
	})
	return t
}

// NewTesterWithT creates a tester with default options that cleans up via
// t.Cleanup(). This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester(calc.Options{})
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup detaches from the engine and restores the previous error handler.
func (t *Tester) Cleanup() {
	if t.removeHook != nil {
		t.removeHook()
		t.removeHook = nil
		errors.SetHandler(t.prevHandler)
	}
}

// Engine returns the engine under test.
func (t *Tester) Engine() *calc.Engine {
	return t.engine
}

// Press applies a single event.
func (t *Tester) Press(ev calc.Event) string {
	t.key = ev.Label()
	defer func() { t.key = "" }()
	return t.engine.Apply(ev)
}

// Tap applies each keypad label in order. It stops at the first label
// that does not parse; the keys before it have already been applied.
func (t *Tester) Tap(labels ...string) error {
	for _, label := range labels {
		ev, err := calc.ParseKey(label)
		if err != nil {
			return fmt.Errorf("Tap: %w", err)
		}
		t.Press(ev)
	}
	return nil
}

// MustTap is Tap that fails the test on an unknown label.
func (t *Tester) MustTap(tt TestingT, labels ...string) {
	tt.Helper()
	if err := t.Tap(labels...); err != nil {
		tt.Fatalf("%v", err)
	}
}

// Display returns the current display string.
func (t *Tester) Display() string {
	return t.engine.Display()
}

// State returns the current engine state.
func (t *Tester) State() calc.State {
	return t.engine.State()
}

// ExpectDisplay fails the test if the display is not want.
func (t *Tester) ExpectDisplay(tt TestingT, want string) {
	tt.Helper()
	if got := t.engine.Display(); got != want {
		tt.Errorf("display = %q, want %q", got, want)
	}
}

// Transcript returns the recorded steps.
func (t *Tester) Transcript() []Step {
	return append([]Step(nil), t.steps...)
}

// Reports returns the errors the engine reported while under test.
func (t *Tester) Reports() []*errors.CalcError {
	return append([]*errors.CalcError(nil), t.reports...)
}

// Reset clears the engine, the transcript and the collected reports.
func (t *Tester) Reset() {
	t.engine.Clear()
	t.steps = nil
	t.reports = nil
}

type reportCollector struct {
	t *Tester
}

func (c reportCollector) HandleError(err *errors.CalcError) {
	c.t.reports = append(c.t.reports, err)
}

func (c reportCollector) HandlePanic(*errors.PanicError) {}
