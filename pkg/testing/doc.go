// Package testing provides deterministic time and pointer simulation for
// drawer tests.
//
// # Quick Start
//
// Install a fake clock, build a DOM, and drive gestures:
//
//	func TestFlick(t *testing.T) {
//	    clk := drifttest.InstallFakeClock(t)
//	    sim := drifttest.NewPointerSimulator(clk, content)
//	    sim.Drag(600, 200, 10, 400*time.Millisecond)
//	}
//
// Every event the simulator dispatches carries the fake clock's time, and the
// clock advances between move events, so velocity estimates are exact.
//
// # Animation Testing
//
// Frame advances the clock and steps tickers, as one host frame would.
// Drawer timers run from the drawer's own Step:
//
//	clk.Frame(650 * time.Millisecond)
//	d.Step()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/drawer/pkg/testing"
package testing
