package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tafaritech/brandkit/internal/brand"
	brandkiterrors "github.com/tafaritech/brandkit/pkg/errors"
)

func writeOverlay(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultCatalogResolvesDocumentedExamples(t *testing.T) {
	t.Parallel()

	c := Default()
	require.Same(t, c, Default())
	require.Equal(t, brand.Brands(), c.Brands())
	require.Equal(t, brand.TafariTech, c.Master())

	umoja := c.Resolve(brand.Request{Brand: brand.Umoja, Mode: brand.ModeReversed})
	assert.Equal(t, "#F9FAFB", umoja.Text)
	assert.Equal(t, "#F9FAFB", umoja.Accent)
	assert.Equal(t, "#F9FAFB", umoja.Palette.Glyph)
	assert.Equal(t, []string{"Umoja", "Business"}, umoja.Segments)

	aeterna := c.Resolve(brand.Request{Brand: brand.Aeterna})
	assert.Equal(t, []string{"Aeterna", "Suite"}, aeterna.Segments)
	assert.Equal(t, "#EAB308", aeterna.Accent)
	assert.Equal(t, brand.TreatmentNative, aeterna.Mark.Treatment)

	khanyie := c.Resolve(brand.Request{Brand: brand.Khanyie})
	assert.Equal(t, []string{"Khanyie"}, khanyie.Segments)

	override := c.Resolve(brand.Request{Brand: brand.Aeterna, TitleOverride: "Tafari Technologies"})
	assert.Equal(t, []string{"Tafari Technologies"}, override.Segments)
}

func TestDefaultCatalogInvariants(t *testing.T) {
	t.Parallel()

	c := Default()
	for _, b := range c.Brands() {
		for _, mode := range brand.Modes() {
			plain := c.Resolve(brand.Request{Brand: b, Mode: mode})
			assert.Equal(t, plain, c.Resolve(brand.Request{Brand: b, Mode: mode}), "%s/%s deterministic", b, mode)

			overridden := c.Resolve(brand.Request{Brand: b, Mode: mode, Color: "#336699"})
			assert.Equal(t, "#336699", overridden.Palette.Glyph, "%s/%s", b, mode)
			assert.Equal(t, "#336699", overridden.Text, "%s/%s", b, mode)

			if mode == brand.ModeReversed {
				assert.Equal(t, brand.ReversedAccent, plain.Accent, "%s reversed accent", b)
			}
		}
		mono := c.Resolve(brand.Request{Brand: b, Mode: brand.ModeMono})
		assert.Equal(t, mono.Text, mono.Accent, "%s mono", b)
	}
}

func TestDefaultCatalogPalettes(t *testing.T) {
	t.Parallel()

	const (
		ink   = "#0F172A"
		snow  = "#F9FAFB"
		white = "#FFFFFF"
		teal  = "#0D9488"
		gold  = "#EAB308"
	)

	type row struct {
		palette   brand.Palette
		treatment brand.Treatment
	}
	mask := func(glyph, text, accent string) row {
		return row{brand.Palette{Glyph: glyph, Text: text, Accent: accent}, brand.TreatmentMask}
	}
	with := func(r row, treatment brand.Treatment) row {
		r.treatment = treatment
		return r
	}

	// Tafari reversed text is snow rather than ink so the wordmark stays
	// visible on the reversed background.
	want := map[brand.Brand]map[brand.DisplayMode]row{
		brand.TafariTech: {
			brand.ModeLight:    mask(teal, ink, ink),
			brand.ModeDark:     mask(snow, snow, snow),
			brand.ModeMono:     mask(ink, ink, ink),
			brand.ModeReversed: mask(white, snow, snow),
		},
		brand.Aeterna: {
			brand.ModeLight:    with(mask(gold, ink, gold), brand.TreatmentNative),
			brand.ModeDark:     with(mask(gold, snow, gold), brand.TreatmentNative),
			brand.ModeMono:     mask(ink, ink, ink),
			brand.ModeReversed: mask(white, snow, snow),
		},
		brand.Sankofa: {
			brand.ModeLight:    mask(teal, ink, teal),
			brand.ModeDark:     mask(snow, snow, teal),
			brand.ModeMono:     mask(ink, ink, ink),
			brand.ModeReversed: mask(snow, snow, snow),
		},
		brand.Umoja: {
			brand.ModeLight:    mask(gold, ink, gold),
			brand.ModeDark:     mask(gold, snow, gold),
			brand.ModeMono:     mask(ink, ink, ink),
			brand.ModeReversed: mask(snow, snow, snow),
		},
		brand.Khanyie: {
			brand.ModeLight:    with(mask(teal, ink, ink), brand.TreatmentNative),
			brand.ModeDark:     with(mask(teal, snow, snow), brand.TreatmentNative),
			brand.ModeMono:     with(mask(ink, ink, ink), brand.TreatmentFilter),
			brand.ModeReversed: with(mask(snow, snow, snow), brand.TreatmentFilter),
		},
	}

	c := Default()
	require.Len(t, want, len(c.Brands()))
	for b, modes := range want {
		require.Len(t, modes, len(brand.Modes()), "%s", b)
		for mode, expected := range modes {
			res := c.Resolve(brand.Request{Brand: b, Mode: mode})
			assert.Equal(t, expected.palette, res.Palette, "%s/%s palette", b, mode)
			assert.Equal(t, expected.treatment, res.Mark.Treatment, "%s/%s treatment", b, mode)
		}
	}
}

func TestLoadOverlayRecoloursMasterWithoutFlag(t *testing.T) {
	t.Parallel()

	path := writeOverlay(t, `version: "1"
brands:
  - id: tafaritech
    title: Tafari Technologies
    casing: title
    asset: /brand/tafaritech.png
    modes:
      light:    { glyph: "#115E59", text: "#0F172A" }
      dark:     { glyph: "#F9FAFB", text: "#F9FAFB" }
      mono:     { glyph: "#0F172A", text: "#0F172A" }
      reversed: { glyph: "#FFFFFF", text: "#F9FAFB" }
    lockups:
      mark:       { size: 120, glyph: 0.85 }
      horizontal: { size: 64, glyph: 1, font: 0.9 }
      stacked:    { size: 96, glyph: 1, font: 0.45 }
      wordmark:   { size: 48, font: 1 }
`)

	loaded, err := Load(LoadOptions{OverlayPath: path})
	require.NoError(t, err)
	require.Equal(t, brand.TafariTech, loaded.Catalog.Master())
	assert.Equal(t, "#115E59", loaded.Catalog.Palette(brand.TafariTech, brand.ModeLight).Glyph)

	res := loaded.Catalog.Resolve(brand.Request{Brand: "unknown"})
	assert.Equal(t, brand.TafariTech, res.Brand)
}

func TestLoadRejectsAlphaColours(t *testing.T) {
	t.Parallel()

	path := writeOverlay(t, strings.Replace(overlayYAML, `accent: "#B45309"`, `accent: "#B4530980"`, 1))

	_, err := Load(LoadOptions{OverlayPath: path})
	var validationErr *brandkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "brand_hex")
}

func TestLoadWithoutOverlayReturnsDefault(t *testing.T) {
	t.Parallel()

	loaded, err := Load(LoadOptions{})
	require.NoError(t, err)
	require.Same(t, Default(), loaded.Catalog)
	require.Empty(t, loaded.Overlay)
}

func TestLoadAppliesExplicitOverlay(t *testing.T) {
	t.Parallel()

	path := writeOverlay(t, overlayYAML)

	loaded, err := Load(LoadOptions{OverlayPath: path})
	require.NoError(t, err)
	require.Equal(t, path, loaded.Overlay)
	require.Equal(t, brand.Brands(), loaded.Catalog.Brands())

	res := loaded.Catalog.Resolve(brand.Request{Brand: brand.Umoja})
	assert.Equal(t, []string{"Umoja", "Commerce"}, res.Segments)
	assert.Equal(t, "#B45309", res.Accent)
	assert.Equal(t, 40.0, res.Size)

	untouched := loaded.Catalog.Resolve(brand.Request{Brand: brand.Sankofa})
	assert.Equal(t, []string{"Sankofa", "Learn"}, untouched.Segments)
}

func TestLoadRejectsMissingOrInvalidOverlay(t *testing.T) {
	t.Parallel()

	_, err := Load(LoadOptions{OverlayPath: filepath.Join(t.TempDir(), "nope.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(LoadOptions{OverlayPath: writeOverlay(t, "version: \"1\"\nbrands: []\n")})
	var validationErr *brandkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

// Not parallel: swaps the package-level XDG lookup.
func TestLoadSearchesXDG(t *testing.T) {
	original := searchConfigFile
	t.Cleanup(func() { searchConfigFile = original })

	path := writeOverlay(t, overlayYAML)
	var asked string
	searchConfigFile = func(rel string) (string, error) {
		asked = rel
		return path, nil
	}

	loaded, err := Load(LoadOptions{SearchXDG: true})
	require.NoError(t, err)
	require.Equal(t, OverlayRelPath, asked)
	require.Equal(t, path, loaded.Overlay)

	searchConfigFile = func(string) (string, error) { return "", errors.New("not found") }
	loaded, err = Load(LoadOptions{SearchXDG: true})
	require.NoError(t, err)
	require.Empty(t, loaded.Overlay)

	loaded, err = Load(LoadOptions{SearchXDG: false})
	require.NoError(t, err)
	require.Empty(t, loaded.Overlay)
}
