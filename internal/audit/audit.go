// Package audit checks resolved brand palettes for legibility against the
// background each display mode is shown on.
package audit

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tafaritech/brandkit/internal/brand"
)

// WCAG 2.x thresholds for large text. Wordmarks are set large and bold.
const (
	LargeAA  = 3.0
	LargeAAA = 4.5
)

// Role names the palette slot a check applies to.
type Role string

const (
	RoleGlyph  Role = "glyph"
	RoleText   Role = "text"
	RoleAccent Role = "accent"
)

// Level is the WCAG level a ratio reaches.
type Level string

const (
	LevelFail Level = "fail"
	LevelAA   Level = "AA"
	LevelAAA  Level = "AAA"
)

// Check is the contrast of one palette colour on its mode background.
type Check struct {
	Brand      brand.Brand       `json:"brand"`
	Mode       brand.DisplayMode `json:"mode"`
	Role       Role              `json:"role"`
	Color      string            `json:"color"`
	Background string            `json:"background"`
	Ratio      float64           `json:"ratio"`
	Level      Level             `json:"level"`
}

// Passed reports whether the check reaches at least AA.
func (c Check) Passed() bool {
	return c.Level != LevelFail
}

// Report is the outcome of auditing a catalog.
type Report struct {
	Checks []Check `json:"checks"`
}

// Failures returns the checks below AA.
func (r Report) Failures() []Check {
	var failed []Check
	for _, check := range r.Checks {
		if !check.Passed() {
			failed = append(failed, check)
		}
	}
	return failed
}

// Run audits every brand and mode of the catalog. Glyphs drawn with the
// native treatment are skipped since the asset carries its own colours.
// Accents are only checked where they differ from the text colour.
func Run(c *brand.Catalog) (Report, error) {
	var report Report
	for _, b := range c.Brands() {
		for _, mode := range brand.Modes() {
			res := c.Resolve(brand.Request{Brand: b, Mode: mode})
			background := mode.Background()

			roles := []struct {
				role  Role
				color string
				skip  bool
			}{
				{RoleText, res.Text, false},
				{RoleAccent, res.Accent, res.Accent == res.Text},
				{RoleGlyph, res.Palette.Glyph, res.Mark.Treatment == brand.TreatmentNative},
			}

			for _, r := range roles {
				if r.skip {
					continue
				}
				ratio, err := ContrastRatio(r.color, background)
				if err != nil {
					return Report{}, fmt.Errorf("%s/%s %s: %w", b, mode, r.role, err)
				}
				report.Checks = append(report.Checks, Check{
					Brand:      b,
					Mode:       mode,
					Role:       r.role,
					Color:      r.color,
					Background: background,
					Ratio:      ratio,
					Level:      LevelFor(ratio),
				})
			}
		}
	}
	return report, nil
}

// ContrastRatio returns the WCAG contrast ratio of two hex colours, rounded
// to two decimals.
func ContrastRatio(fg, bg string) (float64, error) {
	fc, err := colorful.Hex(fg)
	if err != nil {
		return 0, fmt.Errorf("parse colour %q: %w", fg, err)
	}
	bc, err := colorful.Hex(bg)
	if err != nil {
		return 0, fmt.Errorf("parse colour %q: %w", bg, err)
	}

	l1, l2 := relativeLuminance(fc), relativeLuminance(bc)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	ratio := (l1 + 0.05) / (l2 + 0.05)
	return math.Round(ratio*100) / 100, nil
}

// LevelFor classifies a large-text contrast ratio.
func LevelFor(ratio float64) Level {
	switch {
	case ratio >= LargeAAA:
		return LevelAAA
	case ratio >= LargeAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// relativeLuminance uses the linear RGB components go-colorful exposes.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
