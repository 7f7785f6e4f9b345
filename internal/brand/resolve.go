package brand

import "strings"

// Request carries the caller's choices for one logo render. Zero values mean
// "not supplied": an empty colour or title uses the brand default and a
// non-positive Size uses the lockup default.
type Request struct {
	Brand         Brand
	Mode          DisplayMode
	Lockup        Lockup
	Color         string
	AccentColor   string
	Size          float64
	TitleOverride string
}

// Glyph describes how the brand mark is drawn.
type Glyph struct {
	Asset     string    `json:"asset" yaml:"asset"`
	Treatment Treatment `json:"treatment" yaml:"treatment"`
	Filter    string    `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// Span is a run of display text and the colour it is drawn in.
type Span struct {
	Text  string
	Color string
}

// Result is the rendering data for one logo.
type Result struct {
	Brand   Brand       `json:"brand" yaml:"brand"`
	Mode    DisplayMode `json:"mode" yaml:"mode"`
	Lockup  Lockup      `json:"lockup" yaml:"lockup"`
	Palette `yaml:",inline"`
	// Segments is either the whole title or the split [first, second] pair.
	Segments  []string `json:"segments" yaml:"segments"`
	Title     string   `json:"title" yaml:"title"`
	Casing    Casing   `json:"casing" yaml:"casing"`
	Mark      Glyph    `json:"mark" yaml:"mark"`
	Size      float64  `json:"size" yaml:"size"`
	GlyphSize float64  `json:"glyphSize" yaml:"glyphSize"`
	FontSize  float64  `json:"fontSize" yaml:"fontSize"`
}

// Split reports whether the display text was split into two segments.
func (r Result) Split() bool {
	return len(r.Segments) == 2
}

// Spans pairs each segment with its colour: the first segment takes the text
// colour and the second, when present, the accent.
func (r Result) Spans() []Span {
	spans := make([]Span, 0, len(r.Segments))
	for i, segment := range r.Segments {
		color := r.Text
		if i == 1 {
			color = r.Accent
		}
		spans = append(spans, Span{Text: segment, Color: color})
	}
	return spans
}

// Resolve maps a request to concrete rendering data. It never fails: unknown
// brands resolve against the master brand, unknown modes against ModeLight
// and unknown lockups against LockupWordmark.
func (c *Catalog) Resolve(req Request) Result {
	def, ok := c.defs[req.Brand]
	if !ok {
		def = c.defs[c.master]
	}
	mode := req.Mode
	if !mode.Valid() {
		mode = ModeLight
	}
	lockup := req.Lockup
	if !lockup.Valid() {
		lockup = LockupWordmark
	}

	style := def.Modes[mode]
	palette := c.palettes[paletteKey{def.ID, mode}]
	glyph := Glyph{Asset: def.Asset, Treatment: style.Treatment, Filter: style.Filter}

	if req.Color != "" {
		palette.Glyph = req.Color
		palette.Text = req.Color
		glyph.Treatment = TreatmentMask
		glyph.Filter = ""
	}
	palette.Accent = resolveAccent(style, palette.Text, mode, req.AccentColor)

	if glyph.Treatment != TreatmentFilter {
		glyph.Filter = ""
	}

	title, segments := segmentTitle(def, req.TitleOverride)

	geo := def.Lockups[lockup]
	size := req.Size
	if size <= 0 {
		size = geo.Size
	}

	return Result{
		Brand:     def.ID,
		Mode:      mode,
		Lockup:    lockup,
		Palette:   palette,
		Segments:  segments,
		Title:     title,
		Casing:    def.Casing,
		Mark:      glyph,
		Size:      size,
		GlyphSize: size * geo.GlyphRatio,
		FontSize:  size * geo.FontRatio,
	}
}

// resolveAccent applies the accent precedence. Mono is single-colour, so the
// accent always collapses to the text colour there.
func resolveAccent(style ModeStyle, text string, mode DisplayMode, override string) string {
	switch {
	case mode == ModeMono:
		return text
	case override != "":
		return override
	case mode == ModeReversed:
		return ReversedAccent
	case style.Palette.Accent != "":
		return style.Palette.Accent
	default:
		return text
	}
}

func segmentTitle(def Definition, override string) (string, []string) {
	if override != "" {
		return override, []string{override}
	}
	title := def.Title
	if def.Splittable {
		if i := strings.Index(title, " "); i > 0 && i < len(title)-1 {
			return title, []string{title[:i], title[i+1:]}
		}
	}
	return title, []string{title}
}
