package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tafaritech/brandkit/internal/brand"
	"github.com/tafaritech/brandkit/internal/config"
	"github.com/tafaritech/brandkit/internal/logger"
	"github.com/tafaritech/brandkit/internal/render"
)

// discoverOverlay enables the XDG overlay search when --catalog is not set.
var discoverOverlay = true

// AppContext bundles the services commands share, created before any
// subcommand runs.
type AppContext struct {
	Logger  *logger.Logger
	Catalog *brand.Catalog
	Overlay string
	NoColor bool
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	a.NoColor = flags.noColor || os.Getenv("NO_COLOR") != ""

	log, err := logger.New(logger.Options{
		Verbose:       flags.verbose,
		HumanReadable: true,
		NoColor:       a.NoColor,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("start", "creating logger", err, "This is a bug; please report it.")
	}
	a.Logger = log.With("command", cmd.Name())

	loaded, err := config.Load(config.LoadOptions{
		OverlayPath: flags.catalogPath,
		SearchXDG:   discoverOverlay && flags.catalogPath == "",
	})
	if err != nil {
		a.Logger.Error(err, "catalog load failed")
		return newCommandError("load", "brand catalog", err, "Fix the overlay catalog or run without --catalog to use the built-in brands.")
	}
	a.Catalog = loaded.Catalog
	a.Overlay = loaded.Overlay

	if loaded.Overlay != "" {
		a.Logger.With("overlay", loaded.Overlay).Debug("overlay catalog applied")
	}
	a.Logger.With("brands", len(a.Catalog.Brands())).Debug("catalog ready")
	return nil
}

// Renderer returns a terminal renderer for w honouring --no-color.
func (a *AppContext) Renderer(w io.Writer, keepCasing bool) *render.Renderer {
	opts := render.Options{KeepCasing: keepCasing}
	if a.NoColor || !supportsColor(w) {
		opts.Profile = render.Plain()
	}
	return render.New(w, opts)
}

func supportsColor(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
