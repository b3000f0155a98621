package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Articles on %s (%d)", m.Platform, len(m.Summaries))))
	b.WriteString("\n\n")

	if len(m.Summaries) == 0 {
		b.WriteString(InfoStyle.Render("no articles found"))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'q' to quit"))
		return b.String()
	}

	for i, s := range m.Summaries {
		line := s.Title
		if s.PublishedAt != nil {
			line = s.PublishedAt.Format("2006-01-02") + "  " + line
		}

		if i == m.Cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.ShowBody {
		b.WriteString(BoxStyle.Render(m.detailView()))
		b.WriteString("\n\n")
	}

	b.WriteString(InfoStyle.Render("↑/↓ navigate | enter details | q quit"))
	return b.String()
}

// detailView renders the selected summary's metadata and excerpt.
func (m Model) detailView() string {
	s := m.Summaries[m.Cursor]

	var b strings.Builder
	b.WriteString(TitleStyle.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(s.URL))
	b.WriteString("\n")
	if len(s.Tags) > 0 {
		b.WriteString(InfoStyle.Render("tags: " + strings.Join(s.Tags, ", ")))
		b.WriteString("\n")
	}
	if s.Excerpt != "" {
		b.WriteString("\n")
		b.WriteString(s.Excerpt)
	}
	return b.String()
}
