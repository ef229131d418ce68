// Package squircle implements a superellipse-like rounded rectangle control.
//
// The control wraps a single child visual in a filled and/or stroked shape
// with independently tunable per-corner radii and a continuous smoothness
// factor. Smoothness interpolates the corner curve between a sharp
// rectangle, a standard rounded rectangle, and a circular corner.
//
// # Structure
//
// Two pieces collaborate:
//
//   - BuildPath, the geometry builder: a pure function turning size,
//     per-corner radii, smoothness, and an inset distance into a closed
//     outline of four straight edges and four cubic bezier corners.
//   - Squircle, the render box: owns a per-instance render cache deciding
//     each frame whether the previously built geometry and stroke pen are
//     still valid, and performs the draw sequence (fill, stroke, clipped
//     child).
//
// # Caching
//
// Geometry is keyed on (size, radii, smoothness, thickness) with epsilon
// tolerance on the two animatable inputs. The stroke pen is cached
// separately, keyed on (brush identity, thickness), so recoloring the
// border never rebuilds geometry and resizing never rebuilds the pen.
//
// A render pass is synchronous and single-threaded; each control instance
// owns its cache exclusively and replaces entries wholesale, never mutating
// them in place.
package squircle
