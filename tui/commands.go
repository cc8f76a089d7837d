package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"fetchrecipes/networking"
	"fetchrecipes/recipeslist"
)

// waitForState blocks until the next snapshot arrives
func waitForState(updates <-chan recipeslist.ListState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return StateMsg{State: s}
	}
}

// dispatchReload sends a reload action to the controller
func dispatchReload(ctrl Controller, rt networking.RequestType) tea.Cmd {
	return func() tea.Msg {
		id, err := ctrl.Dispatch(rt)
		return ReloadSentMsg{RequestID: id, Err: err}
	}
}
