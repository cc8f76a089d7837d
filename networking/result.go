package networking

import "fetchrecipes/types"

// Result is the outcome of one fetch: either recipes or a FetchError, never both
type Result struct {
	recipes []types.RecipeView
	err     *FetchError
}

// Success wraps a sorted recipe list. An empty list is still a success.
func Success(recipes []types.RecipeView) Result {
	if recipes == nil {
		recipes = []types.RecipeView{}
	}
	return Result{recipes: recipes}
}

// Failure wraps a fetch error
func Failure(err *FetchError) Result {
	return Result{err: err}
}

// OK reports whether the fetch succeeded
func (r Result) OK() bool { return r.err == nil }

// Recipes returns the recipes of a successful result, nil otherwise
func (r Result) Recipes() []types.RecipeView { return r.recipes }

// Err returns the failure, nil on success
func (r Result) Err() *FetchError { return r.err }
