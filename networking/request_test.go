package networking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    RequestType
		wantErr bool
	}{
		{"AllRecipes", AllRecipes, false},
		{"EmptyRecipes", EmptyRecipes, false},
		{"MalformedRecipes", MalformedRecipes, false},
		{"DemoRecipes", DemoRecipes, false},
		{" all ", AllRecipes, false},
		{"EMPTY", EmptyRecipes, false},
		{"allrecipes", "", true},
		{"", "", true},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := ParseRequestType(c.input)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPresetResolver(t *testing.T) {
	t.Parallel()

	u, err := BundledPresets().Resolve(EmptyRecipes)
	require.NoError(t, err)
	assert.Equal(t, "embed", u.Scheme)
	assert.Equal(t, "/EmptyRecipes.json", u.Path)

	u, err = RemotePresets("https://d3jbb8n5wk0qxi.cloudfront.net/").Resolve(MalformedRecipes)
	require.NoError(t, err)
	assert.Equal(t, "https://d3jbb8n5wk0qxi.cloudfront.net/recipes-malformed.json", u.String())

	u, err = S3Presets("bucket", "/fixtures/").Resolve(AllRecipes)
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/fixtures/AllRecipes.json", u.String())

	_, err = PresetResolver{}.Resolve(AllRecipes)
	assert.Error(t, err)

	_, err = PresetResolver{AllRecipes: "no-scheme"}.Resolve(AllRecipes)
	assert.Error(t, err)

	_, err = PresetResolver{AllRecipes: "http://[::1"}.Resolve(AllRecipes)
	assert.Error(t, err)
}
