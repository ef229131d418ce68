package layout

import "github.com/go-drift/squircle/pkg/graphics"

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderObject, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}

// WithClipPath runs fn with the canvas clipped to the given path.
//
// The clip is scoped: the saved canvas state is restored on every exit path,
// including a panic inside fn, so a failing child paint can never leak the
// clip into subsequent drawing.
func (p *PaintContext) WithClipPath(path *graphics.Path, fn func()) {
	p.Canvas.Save()
	defer p.Canvas.Restore()
	p.Canvas.ClipPath(path)
	fn()
}
