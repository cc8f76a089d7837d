package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"fetchrecipes/networking"
	"fetchrecipes/recipeslist"
	"fetchrecipes/store"
)

// Controller is the recipe list surface the TUI needs
type Controller interface {
	Dispatch(rt networking.RequestType) (string, error)
	ObserveState(fn func(recipeslist.ListState)) *store.Subscription
}

// Model renders a recipe list and forwards reload keys to the controller
type Model struct {
	ctrl    Controller
	sub     *store.Subscription
	updates <-chan recipeslist.ListState

	State recipeslist.ListState

	// Cursor indexes State.Recipes
	Cursor int
	// ShowAlert is set when a new error arrives and cleared on dismiss
	ShowAlert bool
	Height    int

	lastScroll bool
}

// NewModel subscribes to the controller; the first snapshot arrives through Init
func NewModel(ctrl Controller) Model {
	feed := newLatestFeed()
	sub := ctrl.ObserveState(feed.push)
	return Model{
		ctrl:    ctrl,
		sub:     sub,
		updates: feed.ch,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForState(m.updates)
}

// Close stops receiving snapshots
func (m Model) Close() {
	m.sub.Cancel()
}
