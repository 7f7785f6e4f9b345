package browser

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tafaritech/brandkit/internal/brand"
	"github.com/tafaritech/brandkit/internal/config"
	"github.com/tafaritech/brandkit/internal/render"
)

func newTestModel(opts Options) Model {
	opts.Renderer = render.New(&bytes.Buffer{}, render.Options{Profile: render.Plain()})
	return NewModel(config.Default(), opts)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{})
	assert.Equal(t, brand.TafariTech, m.Selected())
	assert.Equal(t, brand.ModeLight, m.Mode())
	assert.Equal(t, brand.LockupHorizontal, m.Lockup())
	assert.Nil(t, m.Init())

	m = newTestModel(Options{Mode: brand.ModeMono, Lockup: brand.LockupStacked})
	assert.Equal(t, brand.ModeMono, m.Mode())
	assert.Equal(t, brand.LockupStacked, m.Lockup())
}

func TestUpdateNavigatesBrands(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	assert.Equal(t, brand.Sankofa, m.Selected())

	m = press(t, m, runes("k"))
	assert.Equal(t, brand.Aeterna, m.Selected())

	m = press(t, m, runes("k"), runes("k"), tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, brand.TafariTech, m.Selected(), "cursor stops at the top")

	for i := 0; i < 10; i++ {
		m = press(t, m, runes("j"))
	}
	assert.Equal(t, brand.Khanyie, m.Selected(), "cursor stops at the bottom")
}

func TestUpdateCyclesModesAndLockups(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{})

	m = press(t, m, runes("m"))
	assert.Equal(t, brand.ModeDark, m.Mode())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("m"), runes("m"))
	assert.Equal(t, brand.ModeLight, m.Mode(), "modes wrap around")

	m = press(t, m, runes("M"))
	assert.Equal(t, brand.ModeReversed, m.Mode())

	m = press(t, m, runes("l"), runes("l"))
	assert.Equal(t, brand.LockupWordmark, m.Lockup())

	res := m.Current()
	assert.Equal(t, brand.ModeReversed, res.Mode)
	assert.Equal(t, brand.LockupWordmark, res.Lockup)
}

func TestUpdateTogglesHelpAndCasing(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{})
	m = press(t, m, runes("j"), runes("l"), runes("l"))

	assert.Contains(t, m.View(), "AETERNA SUITE")

	m = press(t, m, runes("c"))
	assert.NotContains(t, m.View(), "AETERNA SUITE")

	assert.False(t, m.help.ShowAll)
	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "toggle casing")
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(Options{}), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestViewFitsWindow(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{Lockup: brand.LockupStacked})
	unclipped := strings.Split(m.View(), "\n")

	m = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 16})
	lines := strings.Split(m.View(), "\n")

	assert.Greater(t, len(unclipped), 16)
	assert.LessOrEqual(t, len(lines), 16)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, line)
	}
	assert.Contains(t, lines[0], "brandkit")
}

func TestUpdateQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsSelectionAndPalette(t *testing.T) {
	t.Parallel()

	m := newTestModel(Options{Mode: brand.ModeReversed})
	m = press(t, m, runes("j"), runes("j"), runes("j"))

	view := m.View()
	assert.Contains(t, view, "Umoja Business")
	assert.Regexp(t, `mode:\s+reversed`, view)
	assert.Contains(t, view, "UMOJA BUSINESS")
	assert.Contains(t, view, "#F9FAFB")
	assert.Regexp(t, `asset:\s+/brand/umoja.png`, view)
	assert.Regexp(t, `glyph:\s+mask`, view)
}
