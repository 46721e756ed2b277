// Package viewtest drives a view tree without a window for tests.
//
// # Quick Start
//
// Create a tester, pump a view, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := viewtest.NewTesterWithT(t)
//	    tester.PumpView(demo.Counter())
//
//	    // Simulate gestures
//	    tester.Tap(viewtest.ByText("+"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(viewtest.ByText("1")).Exists() {
//	        t.Error("expected label to read 1")
//	    }
//	}
//
// Pointer methods dispatch a single interaction and do not run an update;
// call Pump to rebuild what the interaction changed.
//
// # Snapshot Testing
//
// Capture and compare tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	FLUX_UPDATE_SNAPSHOTS=1 go test ./...
package viewtest
