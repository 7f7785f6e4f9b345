package browser

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tafaritech/brandkit/internal/brand"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.brands)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextMode):
		m.modeIndex = (m.modeIndex + 1) % len(brand.Modes())

	case key.Matches(msg, m.keys.PrevMode):
		n := len(brand.Modes())
		m.modeIndex = (m.modeIndex + n - 1) % n

	case key.Matches(msg, m.keys.NextLockup):
		m.lockupIdx = (m.lockupIdx + 1) % len(brand.Lockups())

	case key.Matches(msg, m.keys.Casing):
		m.keepCasing = !m.keepCasing

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
