package brand

import (
	"fmt"

	brandkiterrors "github.com/tafaritech/brandkit/pkg/errors"
)

type paletteKey struct {
	brand Brand
	mode  DisplayMode
}

// Catalog is an immutable set of brand definitions together with the
// (brand, mode) palette table derived from them.
type Catalog struct {
	defs     map[Brand]Definition
	order    []Brand
	master   Brand
	palettes map[paletteKey]Palette
}

// NewCatalog builds a catalog from definitions. Definitions keep their given
// order. Exactly one definition must be the master brand and every definition
// must cover all display modes and lockups.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, brandkiterrors.NewValidationError("brands", "catalog has no brands", nil)
	}

	c := &Catalog{
		defs:     make(map[Brand]Definition, len(defs)),
		order:    make([]Brand, 0, len(defs)),
		palettes: make(map[paletteKey]Palette, len(defs)*len(knownModes)),
	}

	for _, def := range defs {
		if _, dup := c.defs[def.ID]; dup {
			return nil, brandkiterrors.NewValidationError(string(def.ID), "duplicate brand id", nil)
		}
		for _, mode := range knownModes {
			if _, ok := def.Modes[mode]; !ok {
				return nil, brandkiterrors.NewValidationError(string(def.ID), fmt.Sprintf("missing mode %q", mode), nil)
			}
		}
		for _, lockup := range knownLockups {
			if _, ok := def.Lockups[lockup]; !ok {
				return nil, brandkiterrors.NewValidationError(string(def.ID), fmt.Sprintf("missing lockup %q", lockup), nil)
			}
		}
		if def.Master {
			if c.master != "" {
				return nil, brandkiterrors.NewValidationError(string(def.ID), fmt.Sprintf("second master brand (already %q)", c.master), nil)
			}
			c.master = def.ID
		}

		c.defs[def.ID] = def.clone()
		c.order = append(c.order, def.ID)
		for _, mode := range knownModes {
			c.palettes[paletteKey{def.ID, mode}] = def.basePalette(mode)
		}
	}

	if c.master == "" {
		return nil, brandkiterrors.NewValidationError("brands", "catalog has no master brand", nil)
	}

	return c, nil
}

// With returns a new catalog where defs replace same-id definitions and
// unknown ids are appended.
func (c *Catalog) With(defs ...Definition) (*Catalog, error) {
	merged := make([]Definition, 0, len(c.order)+len(defs))
	replacement := make(map[Brand]Definition, len(defs))
	for _, def := range defs {
		replacement[def.ID] = def
	}

	for _, id := range c.order {
		def := c.defs[id]
		if repl, ok := replacement[id]; ok {
			def = repl
			delete(replacement, id)
		}
		merged = append(merged, def)
	}
	for _, def := range defs {
		if _, pending := replacement[def.ID]; pending {
			merged = append(merged, def)
			delete(replacement, def.ID)
		}
	}

	// A replacement master demotes the previous one. Without one, the
	// current master keeps its role even when its definition is replaced.
	masters := 0
	for _, def := range defs {
		if def.Master {
			masters++
		}
	}
	for i := range merged {
		switch {
		case masters > 0 && merged[i].Master && !containsID(defs, merged[i].ID):
			merged[i].Master = false
		case masters == 0 && merged[i].ID == c.master:
			merged[i].Master = true
		}
	}

	return NewCatalog(merged...)
}

func containsID(defs []Definition, id Brand) bool {
	for _, def := range defs {
		if def.ID == id {
			return true
		}
	}
	return false
}

// Brands lists the catalog's brands in definition order.
func (c *Catalog) Brands() []Brand {
	return append([]Brand(nil), c.order...)
}

// Master returns the master brand id.
func (c *Catalog) Master() Brand {
	return c.master
}

// Definition returns the definition for b.
func (c *Catalog) Definition(b Brand) (Definition, bool) {
	def, ok := c.defs[b]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Palette returns the mode-derived palette for b before any overrides.
// Unknown brands fall back to the master brand and unknown modes to light.
func (c *Catalog) Palette(b Brand, mode DisplayMode) Palette {
	if _, ok := c.defs[b]; !ok {
		b = c.master
	}
	if !mode.Valid() {
		mode = ModeLight
	}
	return c.palettes[paletteKey{b, mode}]
}
