package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		record        RecipeRecord
		wantPhoto     string
		wantThumbnail string
		wantSource    string
		wantVideo     string
	}{
		{
			name: "all fields",
			record: RecipeRecord{
				UUID:          "0c6ca6e7-e32a-4053-b824-1dbf749910d8",
				Name:          "Apam Balik",
				Cuisine:       "Malaysian",
				PhotoURLLarge: "https://x/large.jpg",
				PhotoURLSmall: "https://x/small.jpg",
				SourceURL:     "https://www.nyonyacooking.com/recipes/apam-balik~SJ5WuvsDf9WQ",
				YoutubeURL:    "https://www.youtube.com/watch?v=6R8ffRRJcrg",
			},
			wantPhoto:     "https://x/large.jpg",
			wantThumbnail: "https://x/small.jpg",
			wantSource:    "https://www.nyonyacooking.com/recipes/apam-balik~SJ5WuvsDf9WQ",
			wantVideo:     "https://www.youtube.com/watch?v=6R8ffRRJcrg",
		},
		{
			name:   "optional fields absent",
			record: RecipeRecord{Name: "Bakewell Tart", Cuisine: "British"},
		},
		{
			name: "malformed urls become absent",
			record: RecipeRecord{
				Name:          "Kumpir",
				Cuisine:       "Turkish",
				PhotoURLLarge: "not a url",
				PhotoURLSmall: "://missing-scheme",
				SourceURL:     "/relative/path",
				YoutubeURL:    "   ",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := c.record.ToView()
			assert.Equal(t, c.record.Name, v.Name)
			assert.Equal(t, c.record.Cuisine, v.Cuisine)
			assert.Equal(t, c.wantPhoto, URLString(v.PhotoURL))
			assert.Equal(t, c.wantThumbnail, URLString(v.ThumbnailURL))
			assert.Equal(t, c.wantSource, URLString(v.SourceURL))
			assert.Equal(t, c.wantVideo, URLString(v.VideoURL))
			assert.NotEmpty(t, v.ID)
		})
	}
}

func TestToViewIDFallsBackToHash(t *testing.T) {
	t.Parallel()

	a := RecipeRecord{Name: "Bakewell Tart", Cuisine: "British"}.ToView()
	b := RecipeRecord{Name: "Bakewell Tart", Cuisine: "British"}.ToView()
	c := RecipeRecord{UUID: "abc", Name: "Bakewell Tart", Cuisine: "British"}.ToView()

	assert.Equal(t, a.ID, b.ID)
	assert.Len(t, a.ID, 16)
	assert.Equal(t, "abc", c.ID)
}

func TestDecodeGroups(t *testing.T) {
	t.Parallel()

	payload := `{"recipes":[{"name":"Apam Balik","cuisine":"Malaysian","photo_url_large":"https://x/large.jpg","photo_url_small":"https://x/small.jpg"}]}`

	groups, err := DecodeGroups([]byte(payload))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "recipes", groups[0].Key)

	first := groups.First()
	require.Len(t, first, 1)
	assert.Equal(t, "Apam Balik", first[0].Name)
	assert.Equal(t, "https://x/large.jpg", first[0].PhotoURLLarge)
}

func TestDecodeGroupsKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	payload := `{
		"zeta": [{"name":"B","cuisine":"British"}],
		"alpha": [{"name":"A","cuisine":"American"}, {"name":"C","cuisine":"Canadian"}]
	}`

	groups, err := DecodeGroups([]byte(payload))
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "zeta", groups[0].Key)
	assert.Equal(t, "alpha", groups[1].Key)

	first := groups.First()
	require.Len(t, first, 1)
	assert.Equal(t, "B", first[0].Name)
}

func TestDecodeGroupsEmpty(t *testing.T) {
	t.Parallel()

	groups, err := DecodeGroups([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Nil(t, groups.First())

	groups, err = DecodeGroups([]byte(`{"recipes": []}`))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.NotNil(t, groups.First())
	assert.Empty(t, groups.First())
}

func TestDecodeGroupsErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{"recipes": [`},
		{"top level array", `[{"name":"A","cuisine":"B"}]`},
		{"top level string", `"recipes"`},
		{"group is not an array", `{"recipes": {"name":"A","cuisine":"B"}}`},
		{"group is null", `{"recipes": null}`},
		{"missing name", `{"recipes": [{"cuisine":"British"}]}`},
		{"missing cuisine", `{"recipes": [{"name":"Bakewell Tart"}]}`},
		{"empty cuisine", `{"recipes": [{"name":"Bakewell Tart","cuisine":""}]}`},
		{"wrong field type", `{"recipes": [{"name":"Bakewell Tart","cuisine":42}]}`},
		{"null element", `{"recipes": [null]}`},
		{"trailing data", `{"recipes": []} {}`},
		{"error in later group", `{"recipes": [], "more": [{"name":"X"}]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeGroups([]byte(c.payload))
			assert.Error(t, err)
		})
	}
}

func TestParseURL(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseURL(""))
	assert.Nil(t, ParseURL("relative/path"))
	assert.Nil(t, ParseURL("http://"))
	u := ParseURL(" https://example.com/a.jpg ")
	require.NotNil(t, u)
	assert.Equal(t, "example.com", u.Host)
}
