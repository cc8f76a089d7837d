package tui

import "fetchrecipes/recipeslist"

// StateMsg carries a new recipe list snapshot
type StateMsg struct {
	State recipeslist.ListState
}

// ReloadSentMsg is sent after a reload action was dispatched
type ReloadSentMsg struct {
	RequestID string
	Err       error
}
