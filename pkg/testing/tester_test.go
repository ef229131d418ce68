package testing

import (
	"testing"

	"github.com/go-drift/squircle/pkg/graphics"
)

func TestRenderTesterFirstFrame(t *testing.T) {
	tester := NewRenderTester(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	box := NewFixedBox(40, 30, graphics.ColorBlack)
	tester.SetRoot(box)

	// The very first pump must lay out and paint the freshly mounted root:
	// it is born dirty, so SetRoot schedules it on the owner directly.
	ops := tester.Pump()
	if box.Size() != (graphics.Size{Width: 100, Height: 100}) {
		t.Errorf("size after first pump = %+v, want the tight surface size", box.Size())
	}
	if got := CountOps(ops, "drawRect"); got != 1 {
		t.Errorf("first pump recorded %d drawRect ops, want 1", got)
	}
}

func TestRenderTesterPumpSkipsCleanFrames(t *testing.T) {
	tester := NewRenderTester(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	box := NewFixedBox(40, 30, graphics.ColorBlack)
	tester.SetRoot(box)
	tester.Pump()

	// Nothing scheduled: the frame is skipped entirely
	if ops := tester.Pump(); len(ops) != 0 {
		t.Errorf("clean pump recorded %d ops, want 0", len(ops))
	}

	// Re-marking paints again through the owner
	box.MarkNeedsPaint()
	if got := CountOps(tester.Pump(), "drawRect"); got != 1 {
		t.Errorf("pump after re-mark recorded %d drawRect ops, want 1", got)
	}
}
