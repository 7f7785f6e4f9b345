package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tafaritech/brandkit/internal/render"
)

// View renders the brand list, the active lockup preview and help.
func (m Model) View() string {
	list := make([]string, 0, len(m.brands))
	for i, id := range m.brands {
		def, _ := m.catalog.Definition(id)
		line := def.Title
		if i == m.cursor {
			list = append(list, selectedItemStyle.Render(line))
			continue
		}
		list = append(list, itemStyle.Render(line))
	}

	res := m.Current()
	renderer := m.renderer.WithKeepCasing(m.keepCasing)

	def, _ := m.catalog.Definition(res.Brand)
	glyph := string(res.Mark.Treatment)
	if res.Mark.Filter != "" {
		glyph += " " + res.Mark.Filter
	}

	details := renderer.Card(render.Card{
		Title: def.Title,
		Body: strings.Join([]string{
			renderer.Logo(res),
			"",
			renderer.Palette(res.Palette),
		}, "\n"),
		Fields: []render.Field{
			{Label: "mode", Value: string(res.Mode)},
			{Label: "lockup", Value: fmt.Sprintf("%s (%.0f)", res.Lockup, res.Size)},
			{Label: "glyph", Value: glyph},
			{Label: "asset", Value: res.Mark.Asset},
		},
		Border: string(primaryColor),
	})

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, list...),
		"   ",
		details,
	)

	header := titleStyle.Render("brandkit")
	footer := footerStyle.Render(m.help.View(m.keys))

	// Until the first WindowSizeMsg the size is unknown and nothing is clipped.
	if m.width > 0 {
		body = lipgloss.NewStyle().MaxWidth(m.width).Render(body)
	}
	if m.height > 0 {
		room := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
		body = lipgloss.NewStyle().MaxHeight(room).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
