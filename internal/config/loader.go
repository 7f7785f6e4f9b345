package config

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/adrg/xdg"

	"github.com/tafaritech/brandkit/internal/brand"
)

// OverlayRelPath is where an overlay catalog is looked up under the XDG
// config directories.
const OverlayRelPath = "brandkit/brands.yaml"

//go:embed brands.yaml
var defaultCatalogYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *brand.Catalog
)

// For mocking in tests
var searchConfigFile = xdg.SearchConfigFile

// Default returns the embedded brand catalog. It panics if the embedded
// document is invalid, which tests guard against.
func Default() *brand.Catalog {
	defaultOnce.Do(func() {
		cat, err := Parse(defaultCatalogYAML, "brands.yaml")
		if err != nil {
			panic(fmt.Sprintf("embedded brand catalog: %v", err))
		}
		built, err := brand.NewCatalog(cat.Definitions()...)
		if err != nil {
			panic(fmt.Sprintf("embedded brand catalog: %v", err))
		}
		defaultCatalog = built
	})
	return defaultCatalog
}

// DefaultYAML returns a copy of the embedded catalog document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultCatalogYAML...)
}

// LoadOptions controls how the effective catalog is assembled.
type LoadOptions struct {
	// OverlayPath is an explicit overlay file. It must exist when set.
	OverlayPath string
	// SearchXDG looks for OverlayRelPath in the XDG config directories when
	// OverlayPath is empty.
	SearchXDG bool
}

// Loaded is the effective catalog and where its overlay, if any, came from.
type Loaded struct {
	Catalog *brand.Catalog
	Overlay string
}

// Load layers an optional overlay over the embedded catalog. Overlay brands
// replace embedded brands with the same id.
func Load(opts LoadOptions) (Loaded, error) {
	base := Default()

	path := opts.OverlayPath
	if path == "" && opts.SearchXDG {
		found, err := searchConfigFile(OverlayRelPath)
		if err == nil {
			path = found
		}
	}
	if path == "" {
		return Loaded{Catalog: base}, nil
	}

	if _, err := os.Stat(path); err != nil {
		return Loaded{}, fmt.Errorf("overlay catalog %s: %w", path, err)
	}

	overlay, err := LoadFile(path, true)
	if err != nil {
		return Loaded{}, err
	}

	merged, err := base.With(overlay.Definitions()...)
	if err != nil {
		return Loaded{}, fmt.Errorf("apply overlay catalog %s: %w", path, err)
	}

	return Loaded{Catalog: merged, Overlay: path}, nil
}
