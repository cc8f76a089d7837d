package networking

import (
	"fmt"

	"fetchrecipes/fixtures"
	"fetchrecipes/types"
)

// BundledTransport reads the embedded fixtures
func BundledTransport() *FSTransport {
	return NewFSTransport(fixtures.FS)
}

// DemoSeed decodes the bundled demo payload into sorted views
func DemoSeed() ([]types.RecipeView, error) {
	data, err := fixtures.FS.ReadFile(FixtureName(DemoRecipes))
	if err != nil {
		return nil, fmt.Errorf("failed to read demo fixture: %w", err)
	}
	groups, err := types.DecodeGroups(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode demo fixture: %w", err)
	}
	views := types.ToViews(groups.First())
	SortByCuisine(views)
	return views, nil
}
