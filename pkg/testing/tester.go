package testing

import (
	"testing"

	"github.com/go-drift/squircle/pkg/graphics"
	"github.com/go-drift/squircle/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// RenderTester drives layout and paint for a render object tree without a
// real rendering backend, recording canvas calls for assertions.
type RenderTester struct {
	t      *testing.T
	owner  *layout.PipelineOwner
	root   layout.RenderObject
	size   graphics.Size
	Canvas *RecordingCanvas
}

// NewRenderTester creates a tester with the default surface size.
func NewRenderTester(t *testing.T) *RenderTester {
	return &RenderTester{
		t:     t,
		owner: &layout.PipelineOwner{},
		size:  graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// SetSize changes the surface size used for the root constraints.
func (rt *RenderTester) SetSize(size graphics.Size) {
	rt.size = size
}

// SetRoot attaches a root render object to the tester.
//
// Fresh render objects are born with their dirty flags already set, so
// marking them would early-return without reaching the owner; the root is
// scheduled directly instead.
func (rt *RenderTester) SetRoot(root layout.RenderObject) {
	rt.root = root
	attachOwner(root, rt.owner)
	rt.owner.ScheduleLayout(root)
	rt.owner.SchedulePaint(root)
}

// Pump runs one frame through the pipeline owner: flush layout, then flush
// paint into a fresh recording canvas, returning the recorded operations.
// A frame with nothing scheduled records no operations.
func (rt *RenderTester) Pump() []DisplayOp {
	if rt.root == nil {
		rt.t.Fatal("Pump called without a root; call SetRoot first")
	}
	rt.owner.FlushLayoutForRoot(rt.root, layout.Tight(rt.size))
	rt.Canvas = NewRecordingCanvas(rt.size)
	rt.owner.FlushPaint(rt.root, &layout.PaintContext{Canvas: rt.Canvas})
	return rt.Canvas.Ops()
}

// attachOwner assigns the pipeline owner through the whole subtree.
func attachOwner(node layout.RenderObject, owner *layout.PipelineOwner) {
	if node == nil {
		return
	}
	node.SetOwner(owner)
	if visitor, ok := node.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			attachOwner(child, owner)
		})
	}
}

// CountOps returns how many recorded operations have the given name.
func CountOps(ops []DisplayOp, name string) int {
	n := 0
	for _, op := range ops {
		if op.Op == name {
			n++
		}
	}
	return n
}

// FirstOp returns the first recorded operation with the given name.
func FirstOp(ops []DisplayOp, name string) (DisplayOp, bool) {
	for _, op := range ops {
		if op.Op == name {
			return op, true
		}
	}
	return DisplayOp{}, false
}

// OpNames returns the recorded operation names in call order.
func OpNames(ops []DisplayOp) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}
