package tui

import "fetchrecipes/recipeslist"

// latestFeed hands snapshots to the UI without blocking the store.
// Only the newest undelivered snapshot is kept.
type latestFeed struct {
	ch chan recipeslist.ListState
}

func newLatestFeed() *latestFeed {
	return &latestFeed{ch: make(chan recipeslist.ListState, 1)}
}

func (f *latestFeed) push(s recipeslist.ListState) {
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}
