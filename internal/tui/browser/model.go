// Package browser is an interactive terminal catalog of brand logos.
package browser

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tafaritech/brandkit/internal/brand"
	"github.com/tafaritech/brandkit/internal/render"
)

// Model is the browser state. The catalog is shared read-only.
type Model struct {
	catalog  *brand.Catalog
	brands   []brand.Brand
	renderer *render.Renderer

	keys KeyMap
	help help.Model

	cursor     int
	modeIndex  int
	lockupIdx  int
	keepCasing bool

	// Terminal size from the last WindowSizeMsg; zero until one arrives.
	width  int
	height int
}

// Options configures a new Model.
type Options struct {
	Mode   brand.DisplayMode
	Lockup brand.Lockup
	// Output is the writer the program renders to; it decides colour support.
	Output io.Writer
	// Renderer overrides the renderer built from Output.
	Renderer *render.Renderer
}

// NewModel creates a browser over the catalog.
func NewModel(c *brand.Catalog, opts Options) Model {
	renderer := opts.Renderer
	if renderer == nil {
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		renderer = render.New(out, render.Options{})
	}

	m := Model{
		catalog:  c,
		brands:   c.Brands(),
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}

	for i, mode := range brand.Modes() {
		if mode == opts.Mode {
			m.modeIndex = i
		}
	}
	lockup := opts.Lockup
	if !lockup.Valid() {
		lockup = brand.LockupHorizontal
	}
	for i, l := range brand.Lockups() {
		if l == lockup {
			m.lockupIdx = i
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted brand.
func (m Model) Selected() brand.Brand {
	return m.brands[m.cursor]
}

// Mode returns the active display mode.
func (m Model) Mode() brand.DisplayMode {
	return brand.Modes()[m.modeIndex]
}

// Lockup returns the active lockup.
func (m Model) Lockup() brand.Lockup {
	return brand.Lockups()[m.lockupIdx]
}

// Current resolves the highlighted brand with the active settings.
func (m Model) Current() brand.Result {
	return m.catalog.Resolve(brand.Request{
		Brand:  m.Selected(),
		Mode:   m.Mode(),
		Lockup: m.Lockup(),
	})
}

// Run starts the browser as a full-screen program.
func Run(c *brand.Catalog, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(NewModel(c, opts), programOpts...)
	_, err := p.Run()
	return err
}
