package testing

import (
	"github.com/go-drift/squircle/pkg/graphics"
)

// DisplayOp records one canvas call with its arguments.
//
// Path carries the exact *graphics.Path pointer passed to the canvas, so
// tests can assert object identity across frames (cache reuse), not just
// geometric equality.
type DisplayOp struct {
	Op     string
	Params map[string]any
	Path   *graphics.Path
	Paint  graphics.Paint
}

// RecordingCanvas implements graphics.Canvas and records every call.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas creates a recording canvas reporting the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations in call order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// Reset discards all recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

func (c *RecordingCanvas) record(op DisplayOp) {
	c.ops = append(c.ops, op)
}

func (c *RecordingCanvas) Save() {
	c.record(DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.record(DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.record(DisplayOp{Op: "translate", Params: map[string]any{"dx": dx, "dy": dy}})
}

func (c *RecordingCanvas) Scale(sx, sy float64) {
	c.record(DisplayOp{Op: "scale", Params: map[string]any{"sx": sx, "sy": sy}})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.record(DisplayOp{Op: "clipRect", Params: map[string]any{"rect": rect}})
}

func (c *RecordingCanvas) ClipPath(path *graphics.Path) {
	c.record(DisplayOp{Op: "clipPath", Path: path})
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.record(DisplayOp{Op: "clear", Params: map[string]any{"color": color}})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.record(DisplayOp{Op: "drawRect", Params: map[string]any{"rect": rect}, Paint: paint})
}

func (c *RecordingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.record(DisplayOp{Op: "drawPath", Path: path, Paint: paint})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}
