package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled line below a card body.
type Field struct {
	Label string
	Value string
}

// Card is a bordered panel with a title, a free-form body and labelled
// fields. Fields keep the order they were given in.
type Card struct {
	Title  string
	Body   string
	Fields []Field
	// Border colours the frame; empty uses the terminal default.
	Border string
}

// Card renders c with the renderer's colour profile.
func (r *Renderer) Card(c Card) string {
	frame := r.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if c.Border != "" {
		frame = frame.BorderForeground(lipgloss.Color(c.Border))
	}

	var content []string
	if c.Title != "" {
		content = append(content, r.lg.NewStyle().Bold(true).Render(c.Title))
	}
	if c.Body != "" {
		if len(content) > 0 {
			content = append(content, "")
		}
		content = append(content, c.Body)
	}
	if len(c.Fields) > 0 {
		width := 0
		for _, f := range c.Fields {
			width = max(width, lipgloss.Width(f.Label)+1)
		}
		content = append(content, "")
		label := r.lg.NewStyle().Faint(true)
		for _, f := range c.Fields {
			content = append(content, label.Render(Pad(f.Label+":", width))+" "+f.Value)
		}
	}

	return frame.Render(strings.Join(content, "\n"))
}
