// Package raster provides a software graphics.Canvas backed by
// golang.org/x/image/vector alpha-mask rasterization.
//
// It is the reference backend for rendering squircle controls without a GPU
// or platform surface: paths are rasterized into coverage masks, clips are
// mask intersections, and brushes resolve to pixel sources composited with
// image/draw.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/go-drift/squircle/pkg/graphics"
)

// state holds the transform and clip at one Save level.
type state struct {
	tx, ty float64
	sx, sy float64
	clip   *image.Alpha // nil means unclipped
}

// Canvas rasterizes drawing commands into an RGBA image.
//
// Only translate and scale transforms are supported; that covers the layout
// pipeline, which positions children by offset.
type Canvas struct {
	img   *image.RGBA
	state state
	stack []state
}

// New creates a canvas of the given pixel dimensions, fully transparent.
func New(width, height int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		state: state{sx: 1, sy: 1},
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Save pushes the current transform and clip state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent transform and clip state.
// Restoring past the bottom of the stack is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.tx += dx * c.state.sx
	c.state.ty += dy * c.state.sy
}

// Scale scales the coordinate system by the given factors.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.sx *= sx
	c.state.sy *= sy
}

// ClipRect restricts future drawing to the given rectangle.
func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.ClipPath(rectPath(rect))
}

// ClipPath restricts future drawing to the interior of the given path.
func (c *Canvas) ClipPath(path *graphics.Path) {
	mask := c.rasterizeFill(path)
	c.state.clip = intersectMasks(c.state.clip, mask)
}

// Clear fills the entire canvas with the given color, ignoring clip and
// transform.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.DrawPath(rectPath(rect), paint)
}

// DrawPath draws a path with the provided paint.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() || !paint.Brush.Visible() {
		return
	}

	var mask *image.Alpha
	switch paint.Style {
	case graphics.PaintStyleStroke:
		mask = c.rasterizeStroke(path, paint.StrokeWidth)
	default:
		mask = c.rasterizeFill(path)
	}
	mask = intersectMasks(c.state.clip, mask)

	src := c.brushSource(paint.Brush, path)
	draw.DrawMask(c.img, c.img.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// transform maps a local point into device space.
func (c *Canvas) transform(x, y float64) (float32, float32) {
	return float32(x*c.state.sx + c.state.tx), float32(y*c.state.sy + c.state.ty)
}

// rasterizeFill renders the path interior into a coverage mask.
func (c *Canvas) rasterizeFill(path *graphics.Path) *image.Alpha {
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Src
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			x, y := c.transform(cmd.Args[0], cmd.Args[1])
			r.MoveTo(x, y)
		case graphics.PathOpLineTo:
			x, y := c.transform(cmd.Args[0], cmd.Args[1])
			r.LineTo(x, y)
		case graphics.PathOpCubicTo:
			x1, y1 := c.transform(cmd.Args[0], cmd.Args[1])
			x2, y2 := c.transform(cmd.Args[2], cmd.Args[3])
			x3, y3 := c.transform(cmd.Args[4], cmd.Args[5])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case graphics.PathOpClose:
			r.ClosePath()
		}
	}
	mask := image.NewAlpha(b)
	r.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

// rectPath converts a rectangle into a closed path.
func rectPath(rect graphics.Rect) *graphics.Path {
	p := graphics.NewPath()
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
	return p
}

// intersectMasks multiplies two coverage masks. Either side may be nil,
// meaning full coverage.
func intersectMasks(a, b *image.Alpha) *image.Alpha {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := image.NewAlpha(a.Bounds())
	for i := range out.Pix {
		out.Pix[i] = uint8(uint16(a.Pix[i]) * uint16(b.Pix[i]) / 0xFF)
	}
	return out
}

// toNRGBA converts an ARGB color to the stdlib color type.
func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.RGBA8Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
