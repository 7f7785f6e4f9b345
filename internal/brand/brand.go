// Package brand resolves brand logos into concrete colours, glyph treatments
// and wordmark segments for the Tafari brand family.
//
// Everything here is pure: a Catalog is immutable once built and Resolve has
// no side effects, so both are safe for concurrent use.
package brand

import "strings"

// Brand identifies one of the brands sharing the design system.
type Brand string

const (
	TafariTech Brand = "tafaritech"
	Aeterna    Brand = "aeterna"
	Sankofa    Brand = "sankofa"
	Umoja      Brand = "umoja"
	Khanyie    Brand = "khanyie"
)

var knownBrands = []Brand{TafariTech, Aeterna, Sankofa, Umoja, Khanyie}

// Brands returns the built-in brand identifiers, master brand first.
func Brands() []Brand {
	return append([]Brand(nil), knownBrands...)
}

// Valid reports whether b is one of the built-in brands.
func (b Brand) Valid() bool {
	for _, known := range knownBrands {
		if b == known {
			return true
		}
	}
	return false
}

func (b Brand) String() string { return string(b) }

// ParseBrand normalises user input into a Brand.
func ParseBrand(s string) (Brand, bool) {
	b := Brand(strings.ToLower(strings.TrimSpace(s)))
	return b, b.Valid()
}

// DisplayMode is the rendering context that governs colour selection.
type DisplayMode string

const (
	ModeLight    DisplayMode = "light"
	ModeDark     DisplayMode = "dark"
	ModeMono     DisplayMode = "mono"
	ModeReversed DisplayMode = "reversed"
)

var knownModes = []DisplayMode{ModeLight, ModeDark, ModeMono, ModeReversed}

// Modes returns every display mode in presentation order.
func Modes() []DisplayMode {
	return append([]DisplayMode(nil), knownModes...)
}

// Valid reports whether m is a known display mode.
func (m DisplayMode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeMono, ModeReversed:
		return true
	}
	return false
}

func (m DisplayMode) String() string { return string(m) }

// ParseMode converts untyped input into a DisplayMode. Anything unrecognised
// falls back to ModeLight; ok is false only when a non-empty value was
// replaced by the fallback.
func ParseMode(s string) (mode DisplayMode, ok bool) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return ModeLight, true
	}
	m := DisplayMode(trimmed)
	if !m.Valid() {
		return ModeLight, false
	}
	return m, true
}

// Lockup is the arrangement a logo is rendered in.
type Lockup string

const (
	LockupMark       Lockup = "mark"
	LockupHorizontal Lockup = "horizontal"
	LockupStacked    Lockup = "stacked"
	LockupWordmark   Lockup = "wordmark"
)

var knownLockups = []Lockup{LockupMark, LockupHorizontal, LockupStacked, LockupWordmark}

// Lockups returns every lockup.
func Lockups() []Lockup {
	return append([]Lockup(nil), knownLockups...)
}

// Valid reports whether l is a known lockup.
func (l Lockup) Valid() bool {
	switch l {
	case LockupMark, LockupHorizontal, LockupStacked, LockupWordmark:
		return true
	}
	return false
}

func (l Lockup) String() string { return string(l) }

// HasGlyph reports whether the lockup draws the brand mark.
func (l Lockup) HasGlyph() bool { return l != LockupWordmark }

// HasText reports whether the lockup draws the wordmark text.
func (l Lockup) HasText() bool { return l != LockupMark }

// ParseLockup converts untyped input into a Lockup, defaulting to LockupWordmark.
func ParseLockup(s string) (Lockup, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return LockupWordmark, true
	}
	l := Lockup(trimmed)
	if !l.Valid() {
		return LockupWordmark, false
	}
	return l, true
}

// Casing is the presentation casing of a brand's display text. It is a hint
// for renderers; the resolver never changes segment casing.
type Casing string

const (
	CasingTitle Casing = "title"
	CasingUpper Casing = "upper"
)

// Apply returns s in the receiver's casing.
func (c Casing) Apply(s string) string {
	if c == CasingUpper {
		return strings.ToUpper(s)
	}
	return s
}

// Treatment describes how the glyph asset is coloured.
type Treatment string

const (
	// TreatmentNative shows the asset with its own colours.
	TreatmentNative Treatment = "native"
	// TreatmentMask paints the glyph colour through the asset's alpha channel.
	TreatmentMask Treatment = "mask"
	// TreatmentFilter approximates the mode with an image filter.
	TreatmentFilter Treatment = "filter"
)

// Valid reports whether t is a known treatment.
func (t Treatment) Valid() bool {
	switch t {
	case TreatmentNative, TreatmentMask, TreatmentFilter:
		return true
	}
	return false
}
