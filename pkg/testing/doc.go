// Package testing provides a component testing framework for Fortis.
//
// # Quick Start
//
// Create a tester, mount a tree, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := fortistest.NewTesterWithT(t)
//	    tester.MountBuild(Counter, factory.Props{"count": 1})
//
//	    // Find nodes, including those inside rendering boundaries
//	    button := tester.Find(fortistest.ByTag("button")).Element()
//
//	    // Simulate interaction
//	    tester.Click(fortistest.ByTag("button"))
//
//	    // Assert state
//	    if !tester.Find(fortistest.ByText("2")).Exists() {
//	        t.Error("expected '2'")
//	    }
//	}
//
// # Snapshot Testing
//
// Compare the mounted tree's outline with a golden file:
//
//	tester.MatchesGolden(t, "counter")
//
// Update golden files with:
//
//	go test ./... -update
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fortistest "github.com/go-fortis/fortis/pkg/testing"
package testing
