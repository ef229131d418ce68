package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/squircle/pkg/graphics"
)

// cubicSegments is how many line segments approximate one cubic bezier when
// flattening for stroking. Fills feed curves to the rasterizer directly;
// only strokes flatten.
const cubicSegments = 24

// discSegments is the polygon resolution for round joins and caps.
const discSegments = 16

type point struct {
	x, y float64
}

// rasterizeStroke renders the path outline at the given width into a
// coverage mask.
//
// The stroker flattens the path into device-space polylines and emits one
// quad per segment plus a disc at every vertex, producing round joins and
// caps. Overlapping coverage clamps, so double-covered join areas stay
// solid.
func (c *Canvas) rasterizeStroke(path *graphics.Path, width float64) *image.Alpha {
	b := c.img.Bounds()
	mask := image.NewAlpha(b)
	if width <= 0 {
		return mask
	}
	halfWidth := width * (c.state.sx + c.state.sy) / 4
	if halfWidth <= 0 {
		return mask
	}

	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Src
	for _, line := range c.flatten(path) {
		strokePolyline(r, line, halfWidth)
	}
	r.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

// flatten converts the path into device-space polylines, one per subpath.
// Closed subpaths repeat their first point at the end.
func (c *Canvas) flatten(path *graphics.Path) [][]point {
	var lines [][]point
	var current []point
	var start point

	flush := func() {
		if len(current) > 1 {
			lines = append(lines, current)
		}
		current = nil
	}

	for _, cmd := range path.Commands {
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			flush()
			x, y := c.transform(cmd.Args[0], cmd.Args[1])
			start = point{float64(x), float64(y)}
			current = []point{start}
		case graphics.PathOpLineTo:
			x, y := c.transform(cmd.Args[0], cmd.Args[1])
			current = append(current, point{float64(x), float64(y)})
		case graphics.PathOpCubicTo:
			if len(current) == 0 {
				continue
			}
			p0 := current[len(current)-1]
			x1, y1 := c.transform(cmd.Args[0], cmd.Args[1])
			x2, y2 := c.transform(cmd.Args[2], cmd.Args[3])
			x3, y3 := c.transform(cmd.Args[4], cmd.Args[5])
			p1 := point{float64(x1), float64(y1)}
			p2 := point{float64(x2), float64(y2)}
			p3 := point{float64(x3), float64(y3)}
			for i := 1; i <= cubicSegments; i++ {
				t := float64(i) / cubicSegments
				current = append(current, cubicAt(p0, p1, p2, p3, t))
			}
		case graphics.PathOpClose:
			if len(current) > 0 {
				current = append(current, start)
			}
		}
	}
	flush()
	return lines
}

// cubicAt evaluates a cubic bezier at parameter t.
func cubicAt(p0, p1, p2, p3 point, t float64) point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return point{
		x: a*p0.x + b*p1.x + c*p2.x + d*p3.x,
		y: a*p0.y + b*p1.y + c*p2.y + d*p3.y,
	}
}

// strokePolyline adds the thick outline of one polyline to the rasterizer.
func strokePolyline(r *vector.Rasterizer, line []point, halfWidth float64) {
	for i := 0; i+1 < len(line); i++ {
		p, q := line[i], line[i+1]
		dx, dy := q.x-p.x, q.y-p.y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal scaled to half the stroke width
		nx := -dy / length * halfWidth
		ny := dx / length * halfWidth

		r.MoveTo(float32(p.x+nx), float32(p.y+ny))
		r.LineTo(float32(q.x+nx), float32(q.y+ny))
		r.LineTo(float32(q.x-nx), float32(q.y-ny))
		r.LineTo(float32(p.x-nx), float32(p.y-ny))
		r.ClosePath()
	}
	for _, p := range line {
		addDisc(r, p, halfWidth)
	}
}

// addDisc adds a polygonal disc, used for round joins and caps.
func addDisc(r *vector.Rasterizer, center point, radius float64) {
	for i := 0; i <= discSegments; i++ {
		angle := 2 * math.Pi * float64(i) / discSegments
		x := float32(center.x + radius*math.Cos(angle))
		y := float32(center.y + radius*math.Sin(angle))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}
