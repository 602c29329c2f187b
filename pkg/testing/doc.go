// Package testing provides a test harness for the calculator engine.
//
// # Quick Start
//
// Create a tester, tap keys by their keypad labels, and make assertions:
//
//	func TestChain(t *testing.T) {
//	    tester := calctest.NewTesterWithT(t)
//	    if err := tester.Tap("2", "+", "3", "×", "4", "="); err != nil {
//	        t.Fatal(err)
//	    }
//	    tester.ExpectDisplay(t, "20")
//	}
//
// While a tester is alive it installs its own error handler, so reports
// from the engine are collected by Reports instead of being logged.
//
// # Snapshot Testing
//
// Every event is recorded in a transcript. Capture it and compare against
// a golden file:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/chain.snapshot.json")
//
// Update snapshots with:
//
//	CALC_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import calctest "github.com/go-drift/calcphone/pkg/testing"
package testing
