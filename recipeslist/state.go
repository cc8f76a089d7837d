package recipeslist

import (
	"time"

	"fetchrecipes/networking"
	"fetchrecipes/types"
)

// Phase represents the list's load state machine
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseErrored Phase = "errored"
)

// LogEntry represents a single activity line with timestamp
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// ListState is the observable state of a recipe list.
// Values are snapshots; slices are replaced, never mutated in place.
type ListState struct {
	Phase   Phase
	Recipes []types.RecipeView
	// LastError is the most recent failure, cleared by the next non-empty load
	LastError *networking.FetchError
	// ScrollToTop flips on every successful non-empty load
	ScrollToTop bool

	InFlight    int
	RequestID   string
	RequestType networking.RequestType
	UpdatedAt   time.Time
	Logs        []LogEntry
}

// Action asks the controller to reload from a source
type Action struct {
	ID   string
	Type networking.RequestType
}

// CuisineGroup is a run of recipes sharing one cuisine
type CuisineGroup struct {
	Cuisine string
	Recipes []types.RecipeView
}

// Count returns the number of recipes shown
func (s ListState) Count() int { return len(s.Recipes) }

// Errored reports whether the last load failed
func (s ListState) Errored() bool { return s.LastError != nil }

// Groups buckets recipes by cuisine, keeping first-appearance order
func (s ListState) Groups() []CuisineGroup {
	groups := make([]CuisineGroup, 0)
	index := make(map[string]int)
	for _, r := range s.Recipes {
		i, ok := index[r.Cuisine]
		if !ok {
			i = len(groups)
			index[r.Cuisine] = i
			groups = append(groups, CuisineGroup{Cuisine: r.Cuisine})
		}
		groups[i].Recipes = append(groups[i].Recipes, r)
	}
	return groups
}

// withLog appends an entry, keeping at most max entries
func (s ListState) withLog(at time.Time, message string, max int) ListState {
	logs := make([]LogEntry, 0, len(s.Logs)+1)
	logs = append(logs, s.Logs...)
	logs = append(logs, LogEntry{Timestamp: at, Message: message})
	if len(logs) > max {
		logs = logs[len(logs)-max:]
	}
	s.Logs = logs
	return s
}
