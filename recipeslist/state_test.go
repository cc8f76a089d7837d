package recipeslist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fetchrecipes/types"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestGroupsByCuisine(t *testing.T) {
	t.Parallel()

	s := ListState{Recipes: []types.RecipeView{
		{Name: "Banana Pancakes", Cuisine: "American"},
		{Name: "Bakewell Tart", Cuisine: "British"},
		{Name: "Battenberg Cake", Cuisine: "British"},
		{Name: "Kumpir", Cuisine: "Turkish"},
	}}

	groups := s.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "American", groups[0].Cuisine)
	assert.Equal(t, "British", groups[1].Cuisine)
	assert.Len(t, groups[1].Recipes, 2)
	assert.Equal(t, "Turkish", groups[2].Cuisine)
	assert.Equal(t, 4, s.Count())
}

func TestGroupsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ListState{}.Groups())
}

func TestWithLogDoesNotShareBacking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	base := ListState{}.withLog(now, "one", 5)
	a := base.withLog(now, "two", 5)
	b := base.withLog(now, "three", 5)

	assert.Len(t, base.Logs, 1)
	assert.Equal(t, "two", a.Logs[1].Message)
	assert.Equal(t, "three", b.Logs[1].Message)
}
