package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Inset returns the rectangle shrunk inward by the given distance on all sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Left:   r.Left + d,
		Top:    r.Top + d,
		Right:  r.Right - d,
		Bottom: r.Bottom - d,
	}
}

// CornerRadii holds one radius per rectangle corner.
type CornerRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// CornerRadiiAll creates radii with the same value at every corner.
func CornerRadiiAll(value float64) CornerRadii {
	return CornerRadii{
		TopLeft:     value,
		TopRight:    value,
		BottomRight: value,
		BottomLeft:  value,
	}
}

// UniformRadius returns the shared radius value if all corners match, or 0 if not.
func (c CornerRadii) UniformRadius() float64 {
	v := c.TopLeft
	if !floatEqual(c.TopRight, v) ||
		!floatEqual(c.BottomRight, v) ||
		!floatEqual(c.BottomLeft, v) {
		return 0
	}
	return v
}

// Max returns the largest of the four corner radii.
func (c CornerRadii) Max() float64 {
	v := c.TopLeft
	v = math.Max(v, c.TopRight)
	v = math.Max(v, c.BottomRight)
	v = math.Max(v, c.BottomLeft)
	return v
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
