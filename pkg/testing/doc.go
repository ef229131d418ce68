// Package testing provides a render-object testing harness.
//
// Create a tester, attach a render object, pump a frame, and make
// assertions on the recorded canvas operations:
//
//	func TestMyBox(t *testing.T) {
//	    tester := sqtest.NewRenderTester(t)
//	    tester.SetSize(graphics.Size{Width: 100, Height: 100})
//	    tester.SetRoot(box)
//
//	    ops := tester.Pump()
//	    if sqtest.CountOps(ops, "drawPath") != 2 {
//	        t.Error("expected fill and stroke draws")
//	    }
//	}
//
// The recording canvas keeps the exact path pointers passed to it, so
// cache-reuse tests can compare object identity between frames.
package testing
