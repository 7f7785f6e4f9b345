// Package render draws resolved logos and palettes in the terminal.
package render

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tafaritech/brandkit/internal/brand"
)

const (
	glyphCell     = "█"
	glyphUnit     = 24.0
	maxGlyphCells = 6
)

// Options configures a Renderer.
type Options struct {
	// Profile forces a colour profile; zero detects from the writer.
	Profile *termenv.Profile
	// KeepCasing renders segments exactly as resolved instead of applying
	// the brand's casing hint.
	KeepCasing bool
}

// Renderer turns resolver output into styled terminal text.
type Renderer struct {
	lg   *lipgloss.Renderer
	opts Options
}

// New creates a Renderer bound to w.
func New(w io.Writer, opts Options) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if opts.Profile != nil {
		lg.SetColorProfile(*opts.Profile)
	}
	return &Renderer{lg: lg, opts: opts}
}

// WithKeepCasing returns a copy of r with KeepCasing set.
func (r *Renderer) WithKeepCasing(keep bool) *Renderer {
	cp := *r
	cp.opts.KeepCasing = keep
	return &cp
}

// Plain returns a profile pointer for colourless output.
func Plain() *termenv.Profile {
	p := termenv.Ascii
	return &p
}

// TrueColor returns a profile pointer for 24-bit colour output.
func TrueColor() *termenv.Profile {
	p := termenv.TrueColor
	return &p
}

// Logo renders the lockup described by res on its mode background.
func (r *Renderer) Logo(res brand.Result) string {
	var body string
	switch res.Lockup {
	case brand.LockupMark:
		body = r.Glyph(res)
	case brand.LockupHorizontal:
		body = lipgloss.JoinHorizontal(lipgloss.Center, r.Glyph(res), r.spacer(res, "  "), r.Wordmark(res))
	case brand.LockupStacked:
		glyph := r.Glyph(res)
		text := r.Wordmark(res)
		width := max(lipgloss.Width(glyph), lipgloss.Width(text))
		body = lipgloss.JoinVertical(lipgloss.Center,
			r.lg.NewStyle().Width(width).Align(lipgloss.Center).Background(lipgloss.Color(res.Mode.Background())).Render(glyph),
			r.lg.NewStyle().Width(width).Background(lipgloss.Color(res.Mode.Background())).Render(""),
			r.lg.NewStyle().Width(width).Align(lipgloss.Center).Background(lipgloss.Color(res.Mode.Background())).Render(text),
		)
	default:
		body = r.Wordmark(res)
	}

	return r.lg.NewStyle().
		Background(lipgloss.Color(res.Mode.Background())).
		Padding(1, 3).
		Render(body)
}

// Wordmark renders the display text spans, separated by a space in the text colour.
func (r *Renderer) Wordmark(res brand.Result) string {
	spans := res.Spans()
	parts := make([]string, 0, len(spans)*2)
	for i, span := range spans {
		if i > 0 {
			parts = append(parts, r.spacer(res, " "))
		}
		text := span.Text
		if !r.opts.KeepCasing {
			text = res.Casing.Apply(text)
		}
		parts = append(parts, r.lg.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(span.Color)).
			Background(lipgloss.Color(res.Mode.Background())).
			Render(text))
	}
	return strings.Join(parts, "")
}

// Glyph renders the brand mark as a block of cells scaled from GlyphSize.
// Filtered glyphs are drawn faint.
func (r *Renderer) Glyph(res brand.Result) string {
	cells := GlyphCells(res.GlyphSize)
	row := strings.Repeat(glyphCell, cells*2)
	rows := make([]string, cells)
	for i := range rows {
		rows[i] = row
	}

	style := r.lg.NewStyle().
		Foreground(lipgloss.Color(res.Palette.Glyph)).
		Background(lipgloss.Color(res.Mode.Background()))
	if res.Mark.Treatment == brand.TreatmentFilter {
		style = style.Faint(true)
	}
	return style.Render(strings.Join(rows, "\n"))
}

// GlyphCells maps a glyph size in pixels to a cell count between 1 and 6.
func GlyphCells(size float64) int {
	cells := int(math.Round(size / glyphUnit))
	if cells < 1 {
		return 1
	}
	if cells > maxGlyphCells {
		return maxGlyphCells
	}
	return cells
}

// Swatch renders a colour chip followed by its label and hex value.
func (r *Renderer) Swatch(label, hex string) string {
	chip := r.lg.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	return chip + " " + Pad(label, 8) + hex
}

// Palette renders glyph, text and accent swatches, one per line.
func (r *Renderer) Palette(p brand.Palette) string {
	return strings.Join([]string{
		r.Swatch("glyph", p.Glyph),
		r.Swatch("text", p.Text),
		r.Swatch("accent", p.Accent),
	}, "\n")
}

func (r *Renderer) spacer(res brand.Result, s string) string {
	return r.lg.NewStyle().Background(lipgloss.Color(res.Mode.Background())).Render(s)
}
