package config

import (
	"github.com/tafaritech/brandkit/internal/brand"
)

// CatalogVersion is the only catalog document version understood.
const CatalogVersion = "1"

// Catalog represents a brand catalog document.
type Catalog struct {
	Version string       `yaml:"version" validate:"required,oneof=1"`
	Brands  []BrandEntry `yaml:"brands" validate:"required,min=1,dive"`
}

// BrandEntry is the static definition of one brand.
type BrandEntry struct {
	ID         string                 `yaml:"id" validate:"required,brand_id"`
	Title      string                 `yaml:"title" validate:"required,max=64"`
	Master     bool                   `yaml:"master,omitempty"`
	Splittable bool                   `yaml:"splittable,omitempty"`
	Casing     string                 `yaml:"casing,omitempty" validate:"omitempty,casing"`
	Asset      string                 `yaml:"asset" validate:"required,startswith=/"`
	Modes      map[string]ModeEntry   `yaml:"modes" validate:"required,len=4,dive,keys,display_mode,endkeys"`
	Lockups    map[string]LockupEntry `yaml:"lockups" validate:"required,len=4,dive,keys,lockup,endkeys"`
}

// ModeEntry is one row of a brand's mode table.
type ModeEntry struct {
	Glyph     string `yaml:"glyph" validate:"required,brand_hex"`
	Text      string `yaml:"text" validate:"required,brand_hex"`
	Accent    string `yaml:"accent,omitempty" validate:"omitempty,brand_hex"`
	Treatment string `yaml:"treatment,omitempty" validate:"omitempty,treatment"`
	Filter    string `yaml:"filter,omitempty"`
}

// LockupEntry holds a lockup's default size and glyph/font ratios.
type LockupEntry struct {
	Size  float64 `yaml:"size" validate:"gt=0,lte=4096"`
	Glyph float64 `yaml:"glyph,omitempty" validate:"gte=0,lte=1"`
	Font  float64 `yaml:"font,omitempty" validate:"gte=0,lte=1"`
}

// Definition converts the entry into a brand definition, applying defaults
// for casing (title) and treatment (mask).
func (e BrandEntry) Definition() brand.Definition {
	def := brand.Definition{
		ID:         brand.Brand(e.ID),
		Title:      e.Title,
		Master:     e.Master,
		Splittable: e.Splittable,
		Casing:     brand.Casing(e.Casing),
		Asset:      e.Asset,
		Modes:      make(map[brand.DisplayMode]brand.ModeStyle, len(e.Modes)),
		Lockups:    make(map[brand.Lockup]brand.Geometry, len(e.Lockups)),
	}
	if def.Casing == "" {
		def.Casing = brand.CasingTitle
	}

	for name, mode := range e.Modes {
		treatment := brand.Treatment(mode.Treatment)
		if treatment == "" {
			treatment = brand.TreatmentMask
		}
		def.Modes[brand.DisplayMode(name)] = brand.ModeStyle{
			Palette:   brand.Palette{Glyph: mode.Glyph, Text: mode.Text, Accent: mode.Accent},
			Treatment: treatment,
			Filter:    mode.Filter,
		}
	}
	for name, geo := range e.Lockups {
		def.Lockups[brand.Lockup(name)] = brand.Geometry{Size: geo.Size, GlyphRatio: geo.Glyph, FontRatio: geo.Font}
	}

	return def
}

// Definitions converts every entry in document order.
func (c *Catalog) Definitions() []brand.Definition {
	defs := make([]brand.Definition, 0, len(c.Brands))
	for _, entry := range c.Brands {
		defs = append(defs, entry.Definition())
	}
	return defs
}

// FromCatalog converts a built catalog back into its document form.
func FromCatalog(c *brand.Catalog) *Catalog {
	doc := &Catalog{Version: CatalogVersion}
	for _, id := range c.Brands() {
		def, _ := c.Definition(id)
		entry := BrandEntry{
			ID:         string(def.ID),
			Title:      def.Title,
			Master:     def.Master,
			Splittable: def.Splittable,
			Casing:     string(def.Casing),
			Asset:      def.Asset,
			Modes:      make(map[string]ModeEntry, len(def.Modes)),
			Lockups:    make(map[string]LockupEntry, len(def.Lockups)),
		}
		for mode, style := range def.Modes {
			entry.Modes[string(mode)] = ModeEntry{
				Glyph:     style.Palette.Glyph,
				Text:      style.Palette.Text,
				Accent:    style.Palette.Accent,
				Treatment: string(style.Treatment),
				Filter:    style.Filter,
			}
		}
		for lockup, geo := range def.Lockups {
			entry.Lockups[string(lockup)] = LockupEntry{Size: geo.Size, Glyph: geo.GlyphRatio, Font: geo.FontRatio}
		}
		doc.Brands = append(doc.Brands, entry)
	}
	return doc
}
