package squircle

import "github.com/go-drift/squircle/pkg/graphics"

// minEffectiveSmoothness is the floor for the effective smoothness factor.
// Control-point offsets divide by the effective smoothness, so it must never
// reach zero.
const minEffectiveSmoothness = 1.0

// EffectiveSmoothness maps a configured smoothness value to the factor used
// in control-point computation: max(raw*10, 1). A zero or negative raw value
// clamps to the minimum instead of blowing up the division.
func EffectiveSmoothness(raw float64) float64 {
	effective := raw * 10
	if effective < minEffectiveSmoothness {
		return minEffectiveSmoothness
	}
	return effective
}

// BuildPath constructs the closed squircle outline for the given size,
// per-corner radii, effective smoothness, and inward inset.
//
// The path is a single closed figure of four straight edges and four corner
// curves, ordered clockwise starting just past the top-left corner. Each
// corner is a cubic bezier whose control points sit radius/smoothness away
// from the corner: small smoothness pulls them toward the corner point
// (sharper, more rectangular), large smoothness pushes them out toward a
// circular-arc approximation.
//
// Radii are reduced by the inset (never below zero) so an inward-offset
// outline can't fold back on itself. Callers are responsible for clamping
// each radius to half the smaller dimension beforehand; BuildPath does not
// re-clamp against the opposite corner.
//
// The function is pure: identical inputs produce identical paths.
func BuildPath(size graphics.Size, radii graphics.CornerRadii, smoothness, inset float64) *graphics.Path {
	width := size.Width
	height := size.Height

	adjusted := graphics.CornerRadii{
		TopLeft:     insetRadius(radii.TopLeft, inset),
		TopRight:    insetRadius(radii.TopRight, inset),
		BottomRight: insetRadius(radii.BottomRight, inset),
		BottomLeft:  insetRadius(radii.BottomLeft, inset),
	}

	path := graphics.NewPath()

	// Top edge, left to right
	path.MoveTo(adjusted.TopLeft+inset, inset)
	path.LineTo(width-adjusted.TopRight-inset, inset)

	// Top-right corner
	path.CubicTo(
		width-adjusted.TopRight/smoothness-inset, inset,
		width-inset, adjusted.TopRight/smoothness+inset,
		width-inset, adjusted.TopRight+inset,
	)

	// Right edge, top to bottom
	path.LineTo(width-inset, height-adjusted.BottomRight-inset)

	// Bottom-right corner
	path.CubicTo(
		width-inset, height-adjusted.BottomRight/smoothness-inset,
		width-adjusted.BottomRight/smoothness-inset, height-inset,
		width-adjusted.BottomRight-inset, height-inset,
	)

	// Bottom edge, right to left
	path.LineTo(adjusted.BottomLeft+inset, height-inset)

	// Bottom-left corner
	path.CubicTo(
		adjusted.BottomLeft/smoothness+inset, height-inset,
		inset, height-adjusted.BottomLeft/smoothness-inset,
		inset, height-adjusted.BottomLeft-inset,
	)

	// Left edge, bottom to top
	path.LineTo(inset, adjusted.TopLeft+inset)

	// Top-left corner, closing back to the start point
	path.CubicTo(
		inset, adjusted.TopLeft/smoothness+inset,
		adjusted.TopLeft/smoothness+inset, inset,
		adjusted.TopLeft+inset, inset,
	)

	path.Close()
	return path
}

// insetRadius shrinks a corner radius by the inset distance, never below zero.
func insetRadius(radius, inset float64) float64 {
	adjusted := radius - inset
	if adjusted < 0 {
		return 0
	}
	return adjusted
}
