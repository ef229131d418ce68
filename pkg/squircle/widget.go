package squircle

import (
	"github.com/go-drift/squircle/pkg/graphics"
	"github.com/go-drift/squircle/pkg/layout"
)

// Squircle is a render box that draws a superellipse-like rounded rectangle
// behind a single child and clips the child to the shape.
//
// Each corner radius is independent, and the smoothness factor interpolates
// continuously between a sharp rectangle, a standard rounded rectangle, and
// a circular corner. The desired size is the child's size inflated by
// padding and border thickness on all sides.
//
// Geometry and the stroke pen are cached across frames; a render call with
// unchanged parameters reuses the previous frame's objects without touching
// the builder. Properties are changed through setters, which declare the
// phase they affect by marking layout and/or paint dirty.
type Squircle struct {
	layout.RenderBoxBase
	child           layout.RenderObject
	radii           graphics.CornerRadii
	background      graphics.Brush
	border          graphics.Brush
	borderThickness float64
	smoothness      float64
	padding         layout.EdgeInsets
	cache           renderCache
}

// New creates a Squircle with no child, no paint, and the default
// smoothness of 1.0.
func New() *Squircle {
	s := &Squircle{smoothness: 1.0}
	s.SetSelf(s)
	return s
}

// SetChild replaces the wrapped child visual.
func (s *Squircle) SetChild(child layout.RenderObject) {
	if s.child == child {
		return
	}
	layout.SetParentOnChild(s.child, nil)
	s.child = child
	layout.SetParentOnChild(s.child, s)
	s.MarkNeedsLayout()
	s.MarkNeedsPaint()
}

// VisitChildren calls the visitor for the wrapped child, if any.
func (s *Squircle) VisitChildren(visitor func(layout.RenderObject)) {
	if s.child != nil {
		visitor(s.child)
	}
}

// SetCornerRadii sets the per-corner radii. Affects rendering only.
func (s *Squircle) SetCornerRadii(radii graphics.CornerRadii) {
	if s.radii == radii {
		return
	}
	s.radii = radii
	s.MarkNeedsPaint()
}

// CornerRadii returns the configured (unclamped) per-corner radii.
func (s *Squircle) CornerRadii() graphics.CornerRadii {
	return s.radii
}

// SetBackground sets the fill brush. Affects rendering only.
func (s *Squircle) SetBackground(brush graphics.Brush) {
	if s.background == brush {
		return
	}
	s.background = brush
	s.MarkNeedsPaint()
}

// SetBorder sets the stroke brush. Affects rendering only.
func (s *Squircle) SetBorder(brush graphics.Brush) {
	if s.border == brush {
		return
	}
	s.border = brush
	s.MarkNeedsPaint()
}

// SetBorderThickness sets the stroke thickness. The border contributes to
// the desired size, so this affects measurement as well as rendering.
func (s *Squircle) SetBorderThickness(thickness float64) {
	if s.borderThickness == thickness {
		return
	}
	s.borderThickness = thickness
	s.MarkNeedsLayout()
	s.MarkNeedsPaint()
}

// SetSmoothness sets the corner smoothness factor. Affects rendering only.
func (s *Squircle) SetSmoothness(smoothness float64) {
	if s.smoothness == smoothness {
		return
	}
	s.smoothness = smoothness
	s.MarkNeedsPaint()
}

// SetPadding sets the space between the shape edge and the child.
// Affects measurement and rendering.
func (s *Squircle) SetPadding(padding layout.EdgeInsets) {
	if s.padding == padding {
		return
	}
	s.padding = padding
	s.MarkNeedsLayout()
	s.MarkNeedsPaint()
}

// Padding returns the configured padding.
func (s *Squircle) Padding() layout.EdgeInsets {
	return s.padding
}

// CacheStats returns a snapshot of the render cache counters.
func (s *Squircle) CacheStats() Stats {
	return s.cache.stats
}

// Dispose releases the cached geometry and pen. The cache lives for the
// rendering lifetime of the control and dies with it.
func (s *Squircle) Dispose() {
	s.cache.invalidate()
}

// childInsets is the total inflation around the child: padding plus the
// border thickness on all sides.
func (s *Squircle) childInsets() layout.EdgeInsets {
	return s.padding.Add(layout.EdgeInsetsAll(s.borderThickness))
}

// PerformLayout sizes the box to the child's desired size inflated by
// padding and border thickness, or to the inflation alone without a child.
func (s *Squircle) PerformLayout() {
	constraints := s.Constraints()
	insets := s.childInsets()
	if s.child == nil {
		s.SetSize(constraints.Constrain(graphics.Size{
			Width:  insets.Horizontal(),
			Height: insets.Vertical(),
		}))
		return
	}
	s.child.Layout(constraints.Deflate(insets), true) // true: we read child.Size()
	childSize := s.child.Size()
	s.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + insets.Horizontal(),
		Height: childSize.Height + insets.Vertical(),
	}))
	s.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: insets.Left, Y: insets.Top},
	})
}

// Paint draws the fill, the border stroke, and the clipped child, reusing
// cached geometry and pen objects whenever the frame's parameters allow it.
func (s *Squircle) Paint(ctx *layout.PaintContext) {
	size := s.Size()
	if size.IsEmpty() {
		return
	}

	// Opposite-corner-overlap guard: each radius is clamped to half the
	// smaller dimension before it reaches the builder. Adjacent corners on
	// one edge are deliberately not clamped against each other; see the
	// permissive-adjacent-radii test.
	radii := clampRadii(s.radii, size)
	hasBorder := s.border.Visible() && s.borderThickness > 0

	geometry := s.cache.geometryFor(shapeParameters{
		size:       size,
		radii:      radii,
		smoothness: s.smoothness,
		thickness:  s.borderThickness,
	}, hasBorder)

	if s.background.Visible() {
		paint := graphics.DefaultPaint()
		paint.Brush = s.background
		ctx.Canvas.DrawPath(geometry.fill, paint)
	}

	if hasBorder {
		pen := s.cache.strokePaintFor(s.border, s.borderThickness)
		ctx.Canvas.DrawPath(geometry.stroke, pen)
	}

	if s.child != nil {
		ctx.WithClipPath(geometry.clip, func() {
			ctx.PaintChild(s.child, layout.ChildOffset(s.child))
		})
	}
}

// clampRadii limits each corner radius to half the smaller dimension, the
// precondition the geometry builder relies on.
func clampRadii(radii graphics.CornerRadii, size graphics.Size) graphics.CornerRadii {
	minHalf := size.Width
	if size.Height < minHalf {
		minHalf = size.Height
	}
	minHalf /= 2
	return graphics.CornerRadii{
		TopLeft:     minFloat(radii.TopLeft, minHalf),
		TopRight:    minFloat(radii.TopRight, minHalf),
		BottomRight: minFloat(radii.BottomRight, minHalf),
		BottomLeft:  minFloat(radii.BottomLeft, minHalf),
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
