package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"fetchrecipes/networking"
	"fetchrecipes/recipeslist"
)

// reloadKeys maps keys to the request type they reload
var reloadKeys = map[string]networking.RequestType{
	"r": networking.AllRecipes,
	"e": networking.EmptyRecipes,
	"m": networking.MalformedRecipes,
	"d": networking.DemoRecipes,
}

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.Height = msg.Height
		return m, nil
	case StateMsg:
		return m.handleState(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.Close()
		return m, tea.Quit
	case "enter", "esc":
		m.ShowAlert = false
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.State.Recipes)-1 {
			m.Cursor++
		}
		return m, nil
	}

	if rt, ok := reloadKeys[key]; ok {
		return m, dispatchReload(m.ctrl, rt)
	}
	return m, nil
}

// handleState applies a new snapshot and waits for the next one
func (m Model) handleState(msg StateMsg) (tea.Model, tea.Cmd) {
	prev := m.State
	m.State = msg.State

	if m.State.ScrollToTop != m.lastScroll {
		m.lastScroll = m.State.ScrollToTop
		m.Cursor = 0
	}
	if m.Cursor >= len(m.State.Recipes) {
		m.Cursor = max(0, len(m.State.Recipes)-1)
	}
	if failedAgain(prev, m.State) {
		m.ShowAlert = true
	}
	if m.State.LastError == nil {
		m.ShowAlert = false
	}

	return m, waitForState(m.updates)
}

// failedAgain reports whether next is a new failure. Snapshots may be skipped,
// so a different request id in the errored phase counts as a new failure too.
func failedAgain(prev, next recipeslist.ListState) bool {
	if next.Phase != recipeslist.PhaseErrored || next.LastError == nil {
		return false
	}
	return prev.Phase != recipeslist.PhaseErrored ||
		prev.RequestID != next.RequestID ||
		!next.LastError.Equal(prev.LastError)
}
