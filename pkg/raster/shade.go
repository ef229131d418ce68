package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-drift/squircle/pkg/graphics"
)

// brushSource resolves a brush into a pixel source for compositing.
// Gradients are shaded against the device-space bounding box of the path
// being drawn; solid colors become uniform sources.
func (c *Canvas) brushSource(brush graphics.Brush, path *graphics.Path) image.Image {
	if brush.Gradient == nil {
		return image.NewUniform(toNRGBA(brush.Color))
	}
	return c.shadeGradient(brush.Gradient, c.deviceBounds(path))
}

// deviceBounds computes the device-space bounding box of all path points,
// including curve control points. Control points can only tighten toward
// the hull interior, so the box never underestimates.
func (c *Canvas) deviceBounds(path *graphics.Path) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, cmd := range path.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := c.transform(cmd.Args[i], cmd.Args[i+1])
			minX = math.Min(minX, float64(x))
			minY = math.Min(minY, float64(y))
			maxX = math.Max(maxX, float64(x))
			maxY = math.Max(maxY, float64(y))
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// shadeGradient evaluates a gradient over the given device-space bounds,
// producing a full-canvas source image.
func (c *Canvas) shadeGradient(g *graphics.Gradient, bounds image.Rectangle) image.Image {
	out := image.NewRGBA(c.img.Bounds())
	if bounds.Empty() {
		return out
	}
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			// Fractional position within the shaded bounds
			fx := (float64(px) + 0.5 - float64(bounds.Min.X)) / w
			fy := (float64(py) + 0.5 - float64(bounds.Min.Y)) / h

			var t float64
			switch g.Type {
			case graphics.GradientTypeLinear:
				t = linearPosition(g.Linear, fx, fy)
			case graphics.GradientTypeRadial:
				t = radialPosition(g.Radial, fx, fy)
			}
			out.SetRGBA(px, py, toPremultiplied(colorAtStop(g.Stops(), t)))
		}
	}
	return out
}

// linearPosition projects a fractional point onto the gradient axis.
func linearPosition(g graphics.LinearGradient, fx, fy float64) float64 {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return 0
	}
	return ((fx-g.Start.X)*dx + (fy-g.Start.Y)*dy) / lengthSq
}

// radialPosition maps a fractional point to its normalized distance from
// the gradient center.
func radialPosition(g graphics.RadialGradient, fx, fy float64) float64 {
	if g.Radius <= 0 {
		return 1
	}
	return math.Hypot(fx-g.Center.X, fy-g.Center.Y) / g.Radius
}

// colorAtStop resolves the gradient color at position t in [0, 1].
func colorAtStop(stops []graphics.GradientStop, t float64) graphics.Color {
	if len(stops) == 0 {
		return graphics.ColorTransparent
	}
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Position {
			prev := stops[i-1]
			span := stops[i].Position - prev.Position
			if span <= 0 {
				return stops[i].Color
			}
			return lerpColor(prev.Color, stops[i].Color, (t-prev.Position)/span)
		}
	}
	return last.Color
}

// lerpColor interpolates two colors component-wise.
func lerpColor(a, b graphics.Color, t float64) graphics.Color {
	ar, ag, ab, aa := a.RGBA8Components()
	br, bg, bb, ba := b.RGBA8Components()
	return graphics.RGBA8(
		lerpByte(ar, br, t),
		lerpByte(ag, bg, t),
		lerpByte(ab, bb, t),
		lerpByte(aa, ba, t),
	)
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// toPremultiplied converts an ARGB color to premultiplied RGBA for direct
// storage in an *image.RGBA source.
func toPremultiplied(c graphics.Color) color.RGBA {
	r, g, b, a := c.RGBA8Components()
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 0xFF),
		G: uint8(uint16(g) * uint16(a) / 0xFF),
		B: uint8(uint16(b) * uint16(a) / 0xFF),
		A: a,
	}
}
