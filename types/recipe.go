package types

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// RecipeRecord is a single recipe as it appears on the wire
type RecipeRecord struct {
	UUID          string `json:"uuid,omitempty"`
	Name          string `json:"name" validate:"required"`
	Cuisine       string `json:"cuisine" validate:"required"`
	PhotoURLLarge string `json:"photo_url_large,omitempty"`
	PhotoURLSmall string `json:"photo_url_small,omitempty"`
	SourceURL     string `json:"source_url,omitempty"`
	YoutubeURL    string `json:"youtube_url,omitempty"`
}

// RecipeView is the display projection of a RecipeRecord.
// A nil URL means the value was absent or unparsable.
type RecipeView struct {
	ID           string
	Name         string
	Cuisine      string
	PhotoURL     *url.URL
	ThumbnailURL *url.URL
	SourceURL    *url.URL
	VideoURL     *url.URL
}

// ToView projects the record into its display form. It never fails.
func (r RecipeRecord) ToView() RecipeView {
	id := r.UUID
	if id == "" {
		id = GenerateID(r.Name + "|" + r.Cuisine)
	}
	return RecipeView{
		ID:           id,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		PhotoURL:     ParseURL(r.PhotoURLLarge),
		ThumbnailURL: ParseURL(r.PhotoURLSmall),
		SourceURL:    ParseURL(r.SourceURL),
		VideoURL:     ParseURL(r.YoutubeURL),
	}
}

// ToViews projects every record in order
func ToViews(records []RecipeRecord) []RecipeView {
	views := make([]RecipeView, 0, len(records))
	for _, r := range records {
		views = append(views, r.ToView())
	}
	return views
}

// ParseURL returns nil for empty, unparsable or relative input
func ParseURL(raw string) *url.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil
	}
	return u
}

// URLString renders an optional URL, empty when absent
func URLString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// GenerateID creates a short stable ID from the input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}

// MockRecipe is a fixed record used for previews and tests
var MockRecipe = RecipeRecord{
	UUID:          "9e230f7e-1b4c-4d8e-a2b1-3f6c4a0a8d77",
	Name:          "Pumpkin Pie",
	Cuisine:       "American",
	PhotoURLLarge: "https://d3jbb8n5wk0qxi.cloudfront.net/photos/b51ffeeb-7a42-4e3b-9f3d-b2a8b8a0bf4d/large.jpg",
	PhotoURLSmall: "https://d3jbb8n5wk0qxi.cloudfront.net/photos/b51ffeeb-7a42-4e3b-9f3d-b2a8b8a0bf4d/small.jpg",
	SourceURL:     "https://www.bbcgoodfood.com/recipes/2237/pumpkin-pie",
	YoutubeURL:    "https://www.youtube.com/watch?v=hpapqEeb36k",
}
