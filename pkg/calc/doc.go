// Package calc implements the state machine behind a four-function
// pocket calculator.
//
// An Engine holds four pieces of state: the display string, an optional
// accumulator (the left operand of a pending operation), an optional pending
// operator, and a flag telling the next digit to start a fresh number. Each
// button press is one method call that replaces that state and returns the
// new display string:
//
//	e := calc.NewEngine()
//	e.Digit('2')
//	e.Operator(calc.OpAdd)
//	e.Digit('3')
//	e.Operator(calc.OpMultiply) // display "5"
//	e.Digit('4')
//	e.Equals()                  // display "20"
//
// # Sequential Evaluation
//
// Operators are evaluated left to right as they are entered, the way a
// simple hand-held calculator does it. Pressing an operator while another
// is pending folds the pending one immediately, so 2 + 3 × 4 = shows 20,
// not 14. There is no operator precedence.
//
// # Errors
//
// Events never fail. A division by zero, or a result too large to
// represent, puts the error marker on the display (see Options) and forgets
// the accumulator; the next digit starts a new calculation. The condition is
// also reported through the errors package so a host can log it.
//
// # Events and Keys
//
// Hosts that deal in button labels rather than method calls can use
// ParseKey and Engine.Apply. Keypad returns the standard button layout.
//
// # Listeners
//
// AddListener registers a callback that receives a copy of the state after
// every event. An Engine is not safe for concurrent use: like widget state,
// it must only be touched from the thread that handles input.
package calc
