package squircle

import (
	"testing"

	"github.com/go-drift/squircle/pkg/graphics"
)

func baseParams() shapeParameters {
	return shapeParameters{
		size:       graphics.Size{Width: 100, Height: 100},
		radii:      graphics.CornerRadiiAll(20),
		smoothness: 1.0,
		thickness:  4,
	}
}

func TestShapeParameters_Matches(t *testing.T) {
	base := baseParams()

	cases := []struct {
		name   string
		mutate func(*shapeParameters)
		want   bool
	}{
		{"identical", func(p *shapeParameters) {}, true},
		{"size change is exact", func(p *shapeParameters) { p.size.Width += 0.001 }, false},
		{"radii change is exact", func(p *shapeParameters) { p.radii.TopLeft += 0.001 }, false},
		{"thickness jitter within epsilon", func(p *shapeParameters) { p.thickness += 0.005 }, true},
		{"thickness beyond epsilon", func(p *shapeParameters) { p.thickness += 0.02 }, false},
		{"smoothness jitter within epsilon", func(p *shapeParameters) { p.smoothness += 0.005 }, true},
		{"smoothness beyond epsilon", func(p *shapeParameters) { p.smoothness += 0.02 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := base
			tc.mutate(&other)
			if got := base.matches(other); got != tc.want {
				t.Errorf("matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRenderCache_GeometryReuse(t *testing.T) {
	var cache renderCache
	params := baseParams()

	first := cache.geometryFor(params, true)
	second := cache.geometryFor(params, true)

	if first.fill != second.fill || first.stroke != second.stroke || first.clip != second.clip {
		t.Error("expected identical path instances on cache hit")
	}
	if cache.stats.GeometryBuilds != 1 {
		t.Errorf("GeometryBuilds = %d, want 1", cache.stats.GeometryBuilds)
	}
	if cache.stats.GeometryHits != 1 {
		t.Errorf("GeometryHits = %d, want 1", cache.stats.GeometryHits)
	}
}

func TestRenderCache_GeometryRebuildOnChange(t *testing.T) {
	var cache renderCache
	params := baseParams()

	first := cache.geometryFor(params, true)

	params.size.Width = 200
	second := cache.geometryFor(params, true)

	if first.fill == second.fill {
		t.Error("expected new fill geometry after size change")
	}
	if cache.stats.GeometryBuilds != 2 {
		t.Errorf("GeometryBuilds = %d, want 2", cache.stats.GeometryBuilds)
	}
	// The old entry is replaced wholesale, not patched
	if cache.params != params {
		t.Error("cache should store the latest parameter snapshot")
	}
}

func TestRenderCache_BorderInsets(t *testing.T) {
	var cache renderCache
	params := baseParams()

	set := cache.geometryFor(params, true)
	if set.fill == set.clip || set.stroke == set.clip || set.fill == set.stroke {
		t.Error("with a border, fill, stroke, and clip must be distinct")
	}

	// Fill inset by full thickness: starts at (adjusted + inset, inset)
	// with adjusted = radius - thickness.
	wantFillStart := (params.radii.TopLeft - params.thickness) + params.thickness
	if got := set.fill.Commands[0].Args[0]; got != wantFillStart {
		t.Errorf("fill start x = %v, want %v", got, wantFillStart)
	}
	if got := set.fill.Commands[0].Args[1]; got != params.thickness {
		t.Errorf("fill start y = %v, want full thickness %v", got, params.thickness)
	}

	// Stroke on the centerline: inset thickness/2
	if got := set.stroke.Commands[0].Args[1]; got != params.thickness/2 {
		t.Errorf("stroke start y = %v, want half thickness %v", got, params.thickness/2)
	}

	// Clip is the outer silhouette
	if got := set.clip.Commands[0].Args[1]; got != 0 {
		t.Errorf("clip start y = %v, want 0", got)
	}
}

func TestRenderCache_NoBorderSharesSilhouette(t *testing.T) {
	var cache renderCache
	params := baseParams()
	params.thickness = 0

	set := cache.geometryFor(params, false)
	if set.fill != set.clip || set.stroke != set.clip {
		t.Error("without a border all three outlines share the zero-inset path")
	}
	if cache.stats.GeometryBuilds != 1 {
		t.Errorf("GeometryBuilds = %d, want 1 (single shared build)", cache.stats.GeometryBuilds)
	}
}

func TestRenderCache_StrokePaintReuse(t *testing.T) {
	var cache renderCache
	brush := graphics.SolidBrush(graphics.RGB(10, 20, 30))

	first := cache.strokePaintFor(brush, 4)
	second := cache.strokePaintFor(brush, 4)
	if first != second {
		t.Error("expected identical paint on unchanged brush and thickness")
	}
	if cache.stats.StrokeBuilds != 1 {
		t.Errorf("StrokeBuilds = %d, want 1", cache.stats.StrokeBuilds)
	}

	// Sub-epsilon thickness jitter keeps the pen
	cache.strokePaintFor(brush, 4.005)
	if cache.stats.StrokeBuilds != 1 {
		t.Errorf("StrokeBuilds = %d after jitter, want 1", cache.stats.StrokeBuilds)
	}

	// Thickness beyond epsilon rebuilds
	rebuilt := cache.strokePaintFor(brush, 6)
	if rebuilt.StrokeWidth != 6 {
		t.Errorf("rebuilt StrokeWidth = %v, want 6", rebuilt.StrokeWidth)
	}
	if cache.stats.StrokeBuilds != 2 {
		t.Errorf("StrokeBuilds = %d after thickness change, want 2", cache.stats.StrokeBuilds)
	}

	// Brush identity change rebuilds
	cache.strokePaintFor(graphics.SolidBrush(graphics.RGB(99, 99, 99)), 6)
	if cache.stats.StrokeBuilds != 3 {
		t.Errorf("StrokeBuilds = %d after recolor, want 3", cache.stats.StrokeBuilds)
	}
}

func TestRenderCache_GradientBrushIdentity(t *testing.T) {
	var cache renderCache
	stops := []graphics.GradientStop{
		{Position: 0, Color: graphics.ColorBlack},
		{Position: 1, Color: graphics.ColorWhite},
	}
	gradient := graphics.NewLinearGradient(graphics.Offset{}, graphics.Offset{X: 1}, stops)
	brush := graphics.GradientBrush(gradient)

	cache.strokePaintFor(brush, 4)
	cache.strokePaintFor(brush, 4)
	if cache.stats.StrokeBuilds != 1 {
		t.Errorf("StrokeBuilds = %d, want 1 for the same gradient instance", cache.stats.StrokeBuilds)
	}

	// An equivalent but distinct gradient instance is a different identity
	other := graphics.NewLinearGradient(graphics.Offset{}, graphics.Offset{X: 1}, stops)
	cache.strokePaintFor(graphics.GradientBrush(other), 4)
	if cache.stats.StrokeBuilds != 2 {
		t.Errorf("StrokeBuilds = %d, want 2 after gradient identity change", cache.stats.StrokeBuilds)
	}
}

func TestRenderCache_Invalidate(t *testing.T) {
	var cache renderCache
	params := baseParams()
	cache.geometryFor(params, true)
	cache.strokePaintFor(graphics.SolidBrush(graphics.ColorBlack), 4)

	cache.invalidate()

	cache.geometryFor(params, true)
	if cache.stats.GeometryBuilds != 2 {
		t.Errorf("GeometryBuilds = %d after invalidate, want 2", cache.stats.GeometryBuilds)
	}
	cache.strokePaintFor(graphics.SolidBrush(graphics.ColorBlack), 4)
	if cache.stats.StrokeBuilds != 2 {
		t.Errorf("StrokeBuilds = %d after invalidate, want 2", cache.stats.StrokeBuilds)
	}
}
