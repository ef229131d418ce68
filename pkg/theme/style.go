// Package theme provides style resources for squircle controls.
//
// Styles are plain data: resolved radii, smoothness, border width, and
// colors. They can be declared in code or loaded from YAML style sheets and
// applied to a control, which translates them into property setters.
package theme

import (
	"fmt"
	"strings"

	"github.com/go-drift/squircle/pkg/graphics"
	"github.com/go-drift/squircle/pkg/layout"
	"github.com/go-drift/squircle/pkg/squircle"
)

// CornerConfig holds optional per-corner radius overrides.
type CornerConfig struct {
	TopLeft     float64 `yaml:"topLeft"`
	TopRight    float64 `yaml:"topRight"`
	BottomRight float64 `yaml:"bottomRight"`
	BottomLeft  float64 `yaml:"bottomLeft"`
}

// Style describes how a squircle control looks.
//
// CornerRadius applies to all corners; Corners, when present, overrides it
// per corner. Colors are hex strings (#RGB, #RRGGBB, or #RRGGBBAA); an empty
// color string means no paint.
type Style struct {
	CornerRadius float64       `yaml:"cornerRadius"`
	Corners      *CornerConfig `yaml:"corners"`
	Smoothness   float64       `yaml:"smoothness"`
	BorderWidth  float64       `yaml:"borderWidth"`
	Background   string        `yaml:"background"`
	Border       string        `yaml:"border"`
	Padding      float64       `yaml:"padding"`
}

// Default returns the style matching an unconfigured control: sharp
// corners, no paint, smoothness 1.0.
func Default() Style {
	return Style{Smoothness: 1.0}
}

// Radii resolves the effective per-corner radii.
func (s Style) Radii() graphics.CornerRadii {
	if s.Corners != nil {
		return graphics.CornerRadii{
			TopLeft:     s.Corners.TopLeft,
			TopRight:    s.Corners.TopRight,
			BottomRight: s.Corners.BottomRight,
			BottomLeft:  s.Corners.BottomLeft,
		}
	}
	return graphics.CornerRadiiAll(s.CornerRadius)
}

// Apply configures the control with this style's resolved values.
func (s Style) Apply(control *squircle.Squircle) error {
	background, err := parseBrush(s.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	border, err := parseBrush(s.Border)
	if err != nil {
		return fmt.Errorf("border: %w", err)
	}
	control.SetCornerRadii(s.Radii())
	control.SetSmoothness(s.Smoothness)
	control.SetBorderThickness(s.BorderWidth)
	control.SetBackground(background)
	control.SetBorder(border)
	control.SetPadding(layout.EdgeInsetsAll(s.Padding))
	return nil
}

// validate rejects values the geometry builder's contract excludes.
func (s Style) validate() error {
	if s.CornerRadius < 0 {
		return fmt.Errorf("cornerRadius must be >= 0, got %v", s.CornerRadius)
	}
	if s.Corners != nil {
		for name, v := range map[string]float64{
			"topLeft":     s.Corners.TopLeft,
			"topRight":    s.Corners.TopRight,
			"bottomRight": s.Corners.BottomRight,
			"bottomLeft":  s.Corners.BottomLeft,
		} {
			if v < 0 {
				return fmt.Errorf("corners.%s must be >= 0, got %v", name, v)
			}
		}
	}
	if s.BorderWidth < 0 {
		return fmt.Errorf("borderWidth must be >= 0, got %v", s.BorderWidth)
	}
	if s.Padding < 0 {
		return fmt.Errorf("padding must be >= 0, got %v", s.Padding)
	}
	if s.Background != "" {
		if _, err := ParseColor(s.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if s.Border != "" {
		if _, err := ParseColor(s.Border); err != nil {
			return fmt.Errorf("border: %w", err)
		}
	}
	return nil
}

// parseBrush converts a hex color string into a brush; empty means no paint.
func parseBrush(value string) (graphics.Brush, error) {
	if value == "" {
		return graphics.Brush{}, nil
	}
	color, err := ParseColor(value)
	if err != nil {
		return graphics.Brush{}, err
	}
	return graphics.SolidBrush(color), nil
}

// ParseColor parses #RGB, #RRGGBB, or #RRGGBBAA hex notation.
func ParseColor(value string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid color %q", value)
		}
		return graphics.RGB(r*17, g*17, b*17), nil
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid color %q", value)
		}
		return graphics.RGB(r, g, b), nil
	case 8:
		var r, g, b, a uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return 0, fmt.Errorf("invalid color %q", value)
		}
		return graphics.RGBA8(r, g, b, a), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB, or #RRGGBBAA", value)
	}
}
