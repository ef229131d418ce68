package squircle

import (
	"math"

	"github.com/go-drift/squircle/pkg/graphics"
)

// paramEpsilon is the tolerance used when comparing border thickness and
// smoothness between frames. Both values typically arrive from animatable
// numeric properties and carry sub-epsilon jitter that must not invalidate
// the cached geometry. Size and radii come straight from layout and corner
// clamping, so they are compared exactly.
const paramEpsilon = 0.01

// shapeParameters is the geometry cache key: everything the builder output
// depends on.
type shapeParameters struct {
	size       graphics.Size
	radii      graphics.CornerRadii
	smoothness float64
	thickness  float64
}

// matches reports whether a cached entry built for p is still valid for
// other: exact equality for size and radii, epsilon tolerance for
// smoothness and thickness.
func (p shapeParameters) matches(other shapeParameters) bool {
	return p.size == other.size &&
		p.radii == other.radii &&
		math.Abs(p.smoothness-other.smoothness) < paramEpsilon &&
		math.Abs(p.thickness-other.thickness) < paramEpsilon
}

// geometrySet holds the three outlines built together for one parameter set.
//
// fill is inset by the full border thickness so it never crosses under the
// stroke; stroke is inset by half the thickness (the stroke centerline);
// clip is the outer silhouette with zero inset. When no border is drawn all
// three share the single zero-inset path.
type geometrySet struct {
	fill   *graphics.Path
	stroke *graphics.Path
	clip   *graphics.Path
}

// Stats counts cache activity. Useful for instrumentation and for verifying
// that parameter-stable frames do not rebuild geometry or pens.
type Stats struct {
	GeometryBuilds int // builder invocations (each miss builds a full geometrySet)
	GeometryHits   int // renders served from cached geometry
	StrokeBuilds   int // stroke paint constructions
}

// renderCache owns the geometry and stroke-paint state for one control
// instance across frames.
//
// Geometry and stroke paint are cached independently: recoloring the border
// replaces only the pen, and resizing replaces only the geometry (the pen
// survives as long as brush and thickness are stable). Entries are replaced
// wholesale on invalidation, never mutated in place.
type renderCache struct {
	hasGeometry bool
	params      shapeParameters
	geometry    geometrySet

	hasStroke       bool
	strokeBrush     graphics.Brush
	strokeThickness float64
	strokePaint     graphics.Paint

	stats Stats
}

// geometryFor returns the geometry set for the given parameters, rebuilding
// only when the cached entry no longer matches.
//
// hasBorder decides the insets used on a rebuild: with a border the fill is
// inset by the full thickness and the stroke by half of it; without one the
// zero-inset silhouette serves as fill, stroke placeholder, and clip alike.
func (c *renderCache) geometryFor(params shapeParameters, hasBorder bool) geometrySet {
	if c.hasGeometry && c.params.matches(params) {
		c.stats.GeometryHits++
		return c.geometry
	}

	smoothness := EffectiveSmoothness(params.smoothness)

	var set geometrySet
	set.clip = BuildPath(params.size, params.radii, smoothness, 0)
	if hasBorder {
		set.fill = BuildPath(params.size, params.radii, smoothness, params.thickness)
		set.stroke = BuildPath(params.size, params.radii, smoothness, params.thickness/2)
	} else {
		set.fill = set.clip
		set.stroke = set.clip
	}

	c.params = params
	c.geometry = set
	c.hasGeometry = true
	c.stats.GeometryBuilds++
	return set
}

// strokePaintFor returns the pen for the given border brush and thickness,
// constructing a new one only when the brush identity changes or the
// thickness moves beyond the epsilon.
func (c *renderCache) strokePaintFor(brush graphics.Brush, thickness float64) graphics.Paint {
	if c.hasStroke && c.strokeBrush == brush &&
		math.Abs(c.strokeThickness-thickness) <= paramEpsilon {
		return c.strokePaint
	}

	c.strokeBrush = brush
	c.strokeThickness = thickness
	c.strokePaint = graphics.StrokePaint(brush, thickness)
	c.hasStroke = true
	c.stats.StrokeBuilds++
	return c.strokePaint
}

// invalidate drops all cached state, forcing a rebuild on the next render.
func (c *renderCache) invalidate() {
	c.hasGeometry = false
	c.geometry = geometrySet{}
	c.hasStroke = false
	c.strokePaint = graphics.Paint{}
}
