package layout_test

import (
	"testing"

	"github.com/go-drift/squircle/pkg/graphics"
	"github.com/go-drift/squircle/pkg/layout"
	sqtest "github.com/go-drift/squircle/pkg/testing"
)

// countingBox tracks how often the layout and paint hooks run.
type countingBox struct {
	layout.RenderBoxBase
	desired graphics.Size
	layouts int
	paints  int
}

func newCountingBox(desired graphics.Size) *countingBox {
	b := &countingBox{desired: desired}
	b.SetSelf(b)
	return b
}

func (b *countingBox) PerformLayout() {
	b.layouts++
	b.SetSize(b.Constraints().Constrain(b.desired))
}

func (b *countingBox) Paint(ctx *layout.PaintContext) {
	b.paints++
	ctx.Canvas.DrawRect(
		graphics.RectFromLTWH(0, 0, b.Size().Width, b.Size().Height),
		graphics.Paint{Brush: graphics.SolidBrush(graphics.ColorBlack)},
	)
}

func TestLayout_SkipWhenClean(t *testing.T) {
	box := newCountingBox(graphics.Size{Width: 50, Height: 50})
	constraints := layout.Loose(graphics.Size{Width: 100, Height: 100})

	box.Layout(constraints, false)
	box.Layout(constraints, false)
	if box.layouts != 1 {
		t.Errorf("layouts = %d, want 1: clean node with unchanged constraints must skip", box.layouts)
	}

	// Changed constraints force a relayout even when the node is clean
	box.Layout(layout.Loose(graphics.Size{Width: 40, Height: 40}), false)
	if box.layouts != 2 {
		t.Errorf("layouts = %d, want 2 after constraint change", box.layouts)
	}
	if box.Size() != (graphics.Size{Width: 40, Height: 40}) {
		t.Errorf("size = %+v, want clamped to new constraints", box.Size())
	}
}

func TestLayout_DirtyRelayout(t *testing.T) {
	box := newCountingBox(graphics.Size{Width: 50, Height: 50})
	constraints := layout.Loose(graphics.Size{Width: 100, Height: 100})

	box.Layout(constraints, false)
	box.MarkNeedsLayout()
	box.Layout(constraints, false)
	if box.layouts != 2 {
		t.Errorf("layouts = %d, want 2: a dirty node relays out under unchanged constraints", box.layouts)
	}
}

func TestLayout_RootIsBoundary(t *testing.T) {
	box := newCountingBox(graphics.Size{Width: 50, Height: 50})
	box.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}), true)
	if box.RelayoutBoundary() != layout.RenderObject(box) {
		t.Error("a parentless node must be its own relayout boundary")
	}
}

func TestLayout_TightConstraintsMakeBoundary(t *testing.T) {
	parent := newCountingBox(graphics.Size{Width: 100, Height: 100})
	child := newCountingBox(graphics.Size{Width: 50, Height: 50})
	layout.SetParentOnChild(child, parent)

	child.Layout(layout.Tight(graphics.Size{Width: 50, Height: 50}), true)
	if child.RelayoutBoundary() != layout.RenderObject(child) {
		t.Error("tight constraints must make the child its own boundary")
	}
}

func TestMarkNeedsLayout_SchedulesBoundaryOnce(t *testing.T) {
	owner := &layout.PipelineOwner{}
	box := newCountingBox(graphics.Size{Width: 50, Height: 50})
	box.SetOwner(owner)

	box.Layout(layout.Loose(graphics.Size{Width: 100, Height: 100}), false)
	if owner.NeedsLayout() {
		t.Fatal("owner should be clean before marking")
	}

	box.MarkNeedsLayout()
	box.MarkNeedsLayout() // second mark is a no-op on an already dirty node
	if !owner.NeedsLayout() {
		t.Fatal("marking a boundary must schedule it")
	}

	owner.FlushLayoutForRoot(box, layout.Loose(graphics.Size{Width: 100, Height: 100}))
	if box.layouts != 2 {
		t.Errorf("layouts = %d, want 2: duplicate marks must not relayout twice", box.layouts)
	}
	if owner.NeedsLayout() {
		t.Error("owner must be clean after a flush")
	}
}

func TestSetParentOnChild_Reparent(t *testing.T) {
	old := newCountingBox(graphics.Size{Width: 100, Height: 100})
	next := newCountingBox(graphics.Size{Width: 100, Height: 100})
	child := newCountingBox(graphics.Size{Width: 10, Height: 10})

	layout.SetParentOnChild(child, old)
	if child.Parent() != layout.RenderObject(old) {
		t.Fatal("child parent not set")
	}
	if child.Depth() != 1 {
		t.Errorf("child depth = %d, want 1", child.Depth())
	}

	layout.SetParentOnChild(child, next)
	if child.Parent() != layout.RenderObject(next) {
		t.Error("child not reparented")
	}
	if !old.NeedsLayout() || !next.NeedsLayout() {
		t.Error("reparenting must dirty both the old and new parent")
	}
	if !child.NeedsLayout() {
		t.Error("a reparented child must need layout in its new subtree")
	}
}

func TestPaintContext_PaintChildOrder(t *testing.T) {
	child := newCountingBox(graphics.Size{Width: 10, Height: 10})
	child.Layout(layout.Tight(graphics.Size{Width: 10, Height: 10}), false)

	canvas := sqtest.NewRecordingCanvas(graphics.Size{Width: 100, Height: 100})
	ctx := &layout.PaintContext{Canvas: canvas}
	ctx.PaintChild(child, graphics.Offset{X: 7, Y: 9})

	want := []string{"save", "translate", "drawRect", "restore"}
	got := sqtest.OpNames(canvas.Ops())
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}

	translate := canvas.Ops()[1]
	if translate.Params["dx"] != 7.0 || translate.Params["dy"] != 9.0 {
		t.Errorf("translate params = %v, want dx=7 dy=9", translate.Params)
	}
}

func TestPaintContext_PaintChildNil(t *testing.T) {
	canvas := sqtest.NewRecordingCanvas(graphics.Size{Width: 100, Height: 100})
	ctx := &layout.PaintContext{Canvas: canvas}
	ctx.PaintChild(nil, graphics.Offset{})
	if len(canvas.Ops()) != 0 {
		t.Errorf("painting a nil child recorded %d ops, want 0", len(canvas.Ops()))
	}
}

func TestPaintContext_WithClipPathScope(t *testing.T) {
	path := &graphics.Path{}
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.Close()

	canvas := sqtest.NewRecordingCanvas(graphics.Size{Width: 100, Height: 100})
	ctx := &layout.PaintContext{Canvas: canvas}
	ctx.WithClipPath(path, func() {
		canvas.Clear(graphics.ColorWhite)
	})

	want := []string{"save", "clipPath", "clear", "restore"}
	got := sqtest.OpNames(canvas.Ops())
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}
	if canvas.Ops()[1].Path != path {
		t.Error("clip op must carry the given path instance")
	}
}

func TestPaintContext_WithClipPathRestoresOnPanic(t *testing.T) {
	canvas := sqtest.NewRecordingCanvas(graphics.Size{Width: 100, Height: 100})
	ctx := &layout.PaintContext{Canvas: canvas}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the panic to propagate")
			}
		}()
		ctx.WithClipPath(&graphics.Path{}, func() {
			panic("paint failure")
		})
	}()

	ops := sqtest.OpNames(canvas.Ops())
	if len(ops) == 0 || ops[len(ops)-1] != "restore" {
		t.Errorf("ops = %v, want a trailing restore after the panic", ops)
	}
}

func TestPipelineOwner_FlushPaint(t *testing.T) {
	owner := &layout.PipelineOwner{}
	box := newCountingBox(graphics.Size{Width: 50, Height: 50})
	box.SetOwner(owner)
	owner.ScheduleLayout(box)
	owner.FlushLayoutForRoot(box, layout.Tight(graphics.Size{Width: 50, Height: 50}))

	canvas := sqtest.NewRecordingCanvas(graphics.Size{Width: 50, Height: 50})
	ctx := &layout.PaintContext{Canvas: canvas}

	owner.FlushPaint(box, ctx)
	if box.paints != 1 {
		t.Fatalf("paints = %d, want 1", box.paints)
	}
	if box.NeedsPaint() {
		t.Error("root must be marked painted after a flush")
	}

	// Nothing dirty: the second flush is a no-op
	owner.FlushPaint(box, ctx)
	if box.paints != 1 {
		t.Errorf("paints = %d, want 1: a clean owner must skip painting", box.paints)
	}

	box.MarkNeedsPaint()
	owner.FlushPaint(box, ctx)
	if box.paints != 2 {
		t.Errorf("paints = %d, want 2 after re-marking", box.paints)
	}
}
