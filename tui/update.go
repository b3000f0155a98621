package tui

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.ShowBody = false
	case "down", "j":
		if m.Cursor < len(m.Summaries)-1 {
			m.Cursor++
		}
		m.ShowBody = false
	case "g", "home":
		m.Cursor = 0
		m.ShowBody = false
	case "G", "end":
		if len(m.Summaries) > 0 {
			m.Cursor = len(m.Summaries) - 1
		}
		m.ShowBody = false
	case "enter", " ":
		m.ShowBody = !m.ShowBody
	}
	return m, nil
}
