package graphics

// Brush describes what a shape is painted with: a solid color, a gradient,
// or nothing at all.
//
// The zero value is the explicit "no paint" state: a draw call with an
// invisible brush is skipped rather than treated as an error. Brushes are
// comparable values; two brushes are the same identity when their colors
// match and they reference the same Gradient instance.
type Brush struct {
	Color    Color
	Gradient *Gradient
}

// SolidBrush creates a brush that paints a single color.
func SolidBrush(color Color) Brush {
	return Brush{Color: color}
}

// GradientBrush creates a brush that paints with the given gradient.
func GradientBrush(gradient *Gradient) Brush {
	return Brush{Color: ColorWhite, Gradient: gradient}
}

// Visible reports whether drawing with this brush produces any output.
func (b Brush) Visible() bool {
	if b.Gradient != nil {
		return true
	}
	return b.Color != ColorTransparent
}
