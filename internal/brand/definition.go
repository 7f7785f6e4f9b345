package brand

// ReversedAccent is the accent every brand uses in reversed mode unless the
// caller supplies one.
const ReversedAccent = "#F9FAFB"

// Palette is the resolved set of colours for one brand and mode.
type Palette struct {
	Glyph  string `json:"glyphColor" yaml:"glyphColor"`
	Text   string `json:"textColor" yaml:"textColor"`
	Accent string `json:"accentColor" yaml:"accentColor"`
}

// ModeStyle is one row of a brand's mode table. An empty Palette.Accent means
// the brand has no accent in that mode and the accent follows the text colour.
type ModeStyle struct {
	Palette   Palette
	Treatment Treatment
	// Filter is the image filter used with TreatmentFilter.
	Filter string
}

// Geometry holds the default size of a lockup and the ratios the glyph and
// the wordmark text are drawn at relative to that size.
type Geometry struct {
	Size       float64
	GlyphRatio float64
	FontRatio  float64
}

// Definition is the static description of a brand.
type Definition struct {
	ID         Brand
	Title      string
	Master     bool
	Splittable bool
	Casing     Casing
	Asset      string
	Modes      map[DisplayMode]ModeStyle
	Lockups    map[Lockup]Geometry
}

func (d Definition) clone() Definition {
	out := d
	out.Modes = make(map[DisplayMode]ModeStyle, len(d.Modes))
	for mode, style := range d.Modes {
		out.Modes[mode] = style
	}
	out.Lockups = make(map[Lockup]Geometry, len(d.Lockups))
	for lockup, geo := range d.Lockups {
		out.Lockups[lockup] = geo
	}
	return out
}

// basePalette is the table palette for mode with the accent filled in.
func (d Definition) basePalette(mode DisplayMode) Palette {
	p := d.Modes[mode].Palette
	if p.Accent == "" {
		p.Accent = p.Text
	}
	return p
}

var modeBackgrounds = map[DisplayMode]string{
	ModeLight:    "#FFFFFF",
	ModeDark:     "#0F172A",
	ModeMono:     "#FFFFFF",
	ModeReversed: "#0F172A",
}

// Background returns the surface colour the mode is designed to sit on.
func (m DisplayMode) Background() string {
	if bg, ok := modeBackgrounds[m]; ok {
		return bg
	}
	return modeBackgrounds[ModeLight]
}
