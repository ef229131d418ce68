package testing

import (
	"github.com/go-drift/squircle/pkg/graphics"
	"github.com/go-drift/squircle/pkg/layout"
)

// FixedBox is a fixed-size solid-colored render box, useful as a child
// visual in tests and demos.
type FixedBox struct {
	layout.RenderBoxBase
	width  float64
	height float64
	color  graphics.Color

	// PaintHook, when set, runs at the start of Paint. Tests use it to
	// observe or interrupt child painting.
	PaintHook func()
}

// NewFixedBox creates a box of the given size and color.
func NewFixedBox(width, height float64, color graphics.Color) *FixedBox {
	b := &FixedBox{width: width, height: height, color: color}
	b.SetSelf(b)
	return b
}

func (b *FixedBox) PerformLayout() {
	constraints := b.Constraints()
	b.SetSize(constraints.Constrain(graphics.Size{Width: b.width, Height: b.height}))
}

func (b *FixedBox) Paint(ctx *layout.PaintContext) {
	if b.PaintHook != nil {
		b.PaintHook()
	}
	if b.color == graphics.ColorTransparent {
		return
	}
	size := b.Size()
	ctx.Canvas.DrawRect(
		graphics.RectFromLTWH(0, 0, size.Width, size.Height),
		graphics.Paint{Brush: graphics.SolidBrush(b.color)},
	)
}
