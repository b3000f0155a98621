// Package tui provides an interactive terminal browser for platform article
// listings.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/siy/cross-poster/types"
)

// Model holds the browser state: the fixed listing plus cursor and detail
// toggles. Listings are read-only; nothing here mutates remote state.
type Model struct {
	Platform  string
	Summaries []types.ArticleSummary
	Cursor    int
	ShowBody  bool
	Width     int
	Height    int
}

// NewModel creates a browser over an already-fetched listing.
func NewModel(platform string, summaries []types.ArticleSummary) Model {
	return Model{
		Platform:  platform,
		Summaries: summaries,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Browse runs the interactive listing browser until the user quits.
func Browse(platform string, summaries []types.ArticleSummary) error {
	program := tea.NewProgram(NewModel(platform, summaries))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run article browser: %w", err)
	}
	return nil
}
