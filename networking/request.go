package networking

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// RequestType selects which recipe source to load
type RequestType string

const (
	AllRecipes       RequestType = "AllRecipes"
	EmptyRecipes     RequestType = "EmptyRecipes"
	MalformedRecipes RequestType = "MalformedRecipes"
	DemoRecipes      RequestType = "DemoRecipes"
)

// RequestTypes lists every known request type
func RequestTypes() []RequestType {
	return []RequestType{AllRecipes, EmptyRecipes, MalformedRecipes, DemoRecipes}
}

// requestAliases maps short names to request types
var requestAliases = map[string]RequestType{
	"all":       AllRecipes,
	"empty":     EmptyRecipes,
	"malformed": MalformedRecipes,
	"demo":      DemoRecipes,
}

// Valid reports whether r is one of the known request types
func (r RequestType) Valid() bool {
	for _, known := range RequestTypes() {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRequestType accepts a request type name or one of its short aliases
func ParseRequestType(input string) (RequestType, error) {
	input = strings.TrimSpace(input)
	if rt := RequestType(input); rt.Valid() {
		return rt, nil
	}
	if rt, ok := requestAliases[strings.ToLower(input)]; ok {
		return rt, nil
	}
	return "", fmt.Errorf("unknown request type %q", input)
}

// Resolver maps a request type to the location to fetch
type Resolver interface {
	Resolve(rt RequestType) (*url.URL, error)
}

// PresetResolver resolves request types from a fixed table of locations
type PresetResolver map[RequestType]string

// Remote object names for each request type
const (
	RemoteAllRecipes       = "recipes.json"
	RemoteEmptyRecipes     = "recipes-empty.json"
	RemoteMalformedRecipes = "recipes-malformed.json"
)

// BundledPresets resolves every request type to the embedded fixture of the same name
func BundledPresets() PresetResolver {
	presets := PresetResolver{}
	for _, rt := range RequestTypes() {
		presets[rt] = "embed:///" + FixtureName(rt)
	}
	return presets
}

// RemotePresets resolves request types against an HTTP base URL.
// DemoRecipes stays bundled.
func RemotePresets(baseURL string) PresetResolver {
	base := strings.TrimRight(baseURL, "/")
	return PresetResolver{
		AllRecipes:       base + "/" + RemoteAllRecipes,
		EmptyRecipes:     base + "/" + RemoteEmptyRecipes,
		MalformedRecipes: base + "/" + RemoteMalformedRecipes,
		DemoRecipes:      "embed:///" + FixtureName(DemoRecipes),
	}
}

// S3Presets resolves request types to objects in a bucket. DemoRecipes stays bundled.
func S3Presets(bucket, prefix string) PresetResolver {
	presets := PresetResolver{DemoRecipes: "embed:///" + FixtureName(DemoRecipes)}
	for _, rt := range []RequestType{AllRecipes, EmptyRecipes, MalformedRecipes} {
		presets[rt] = "s3://" + bucket + "/" + S3Key(prefix, rt)
	}
	return presets
}

// S3Key is the object key for a request type under prefix
func S3Key(prefix string, rt RequestType) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return FixtureName(rt)
	}
	return prefix + "/" + FixtureName(rt)
}

// FixtureName is the bundled file name for a request type
func FixtureName(rt RequestType) string {
	return string(rt) + ".json"
}

// Resolve implements Resolver
func (p PresetResolver) Resolve(rt RequestType) (*url.URL, error) {
	raw, ok := p[rt]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("no source configured for %q", rt)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source for %q: %w", rt, err)
	}
	if u.Scheme == "" {
		return nil, errors.New("source has no scheme: " + raw)
	}
	return u, nil
}
