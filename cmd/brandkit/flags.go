package main

import (
	"github.com/spf13/cobra"

	"github.com/tafaritech/brandkit/internal/brand"
	"github.com/tafaritech/brandkit/internal/config"
	brandkiterrors "github.com/tafaritech/brandkit/pkg/errors"
)

// requestFlags are the resolver inputs shared by resolve and wordmark.
type requestFlags struct {
	mode   string
	lockup string
	color  string
	accent string
	size   float64
	title  string
}

func (f *requestFlags) bind(cmd *cobra.Command, defaultLockup brand.Lockup) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Display mode: light, dark, mono or reversed")
	cmd.Flags().StringVarP(&f.lockup, "lockup", "l", string(defaultLockup), "Lockup: mark, horizontal, stacked or wordmark")
	cmd.Flags().StringVar(&f.color, "color", "", "Override glyph and text colour (hex)")
	cmd.Flags().StringVar(&f.accent, "accent", "", "Override accent colour (hex)")
	cmd.Flags().Float64Var(&f.size, "size", 0, "Override the lockup size")
	cmd.Flags().StringVar(&f.title, "title", "", "Display this text instead of the brand title")
}

// request turns the flags into a resolver request. Unknown modes are not
// errors: they resolve as light and the fallback is logged.
func (f *requestFlags) request(app *AppContext, name string) (brand.Request, error) {
	id, err := lookupBrand(app.Catalog, name)
	if err != nil {
		return brand.Request{}, err
	}

	mode, ok := brand.ParseMode(f.mode)
	if !ok {
		app.Logger.WithFields(map[string]any{
			"mode":     f.mode,
			"fallback": string(mode),
		}).Warn("unknown display mode")
	}

	lockup, ok := brand.ParseLockup(f.lockup)
	if !ok {
		known := make([]string, 0, len(brand.Lockups()))
		for _, l := range brand.Lockups() {
			known = append(known, string(l))
		}
		return brand.Request{}, newCommandError("resolve", "lockup "+f.lockup,
			brandkiterrors.NewLookupError("lockup", f.lockup, known),
			"Use one of mark, horizontal, stacked or wordmark.")
	}

	if err := config.ValidateColor("color", f.color); err != nil {
		return brand.Request{}, newCommandError("resolve", "colour override", err, "Pass a hex colour such as #0D9488.")
	}
	if err := config.ValidateColor("accent", f.accent); err != nil {
		return brand.Request{}, newCommandError("resolve", "accent override", err, "Pass a hex colour such as #EAB308.")
	}
	if f.size < 0 {
		return brand.Request{}, newCommandError("resolve", "size override",
			brandkiterrors.NewValidationError("size", "must not be negative", nil),
			"Omit --size to use the lockup default.")
	}

	return brand.Request{
		Brand:         id,
		Mode:          mode,
		Lockup:        lockup,
		Color:         f.color,
		AccentColor:   f.accent,
		Size:          f.size,
		TitleOverride: f.title,
	}, nil
}

func lookupBrand(c *brand.Catalog, name string) (brand.Brand, error) {
	id, ok := brand.ParseBrand(name)
	if ok {
		if _, found := c.Definition(id); found {
			return id, nil
		}
	}

	known := make([]string, 0, len(c.Brands()))
	for _, b := range c.Brands() {
		known = append(known, string(b))
	}
	return "", newCommandError("resolve", "brand "+name,
		brandkiterrors.NewLookupError("brand", name, known),
		"Run 'brandkit brands' to list the available brands.")
}
