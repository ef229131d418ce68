package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (invisible brush).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Brush       Brush
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Brush:       SolidBrush(ColorWhite),
		Style:       PaintStyleFill,
		StrokeWidth: 1,
	}
}

// StrokePaint returns a paint object bound to the given brush and thickness.
//
// This is the pen abstraction: one stroke paint per (brush, thickness) pair,
// constructed once and reused until either input changes.
func StrokePaint(brush Brush, thickness float64) Paint {
	return Paint{
		Brush:       brush,
		Style:       PaintStyleStroke,
		StrokeWidth: thickness,
	}
}
