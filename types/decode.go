package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RecipeGroup is one keyed array from the payload
type RecipeGroup struct {
	Key     string
	Recipes []RecipeRecord
}

// RecipeGroups keeps the payload's groups in document order
type RecipeGroups []RecipeGroup

// First returns the records of the first group, or nil when there are none.
// Later groups are ignored.
func (g RecipeGroups) First() []RecipeRecord {
	if len(g) == 0 {
		return nil
	}
	return g[0].Recipes
}

// DecodeGroups parses a payload of the form {"<key>": [recipe, ...], ...}.
// Keys keep their order of appearance.
func DecodeGroups(data []byte) (RecipeGroups, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	groups := RecipeGroups{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read group key: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to read group %q: %w", key, err)
		}
		records, err := decodeRecords(raw)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", key, err)
		}
		groups = append(groups, RecipeGroup{Key: key, Recipes: records})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read end of object: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	return groups, nil
}

func decodeRecords(raw json.RawMessage) ([]RecipeRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected an array of recipes")
	}

	var records []RecipeRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
	}
	if records == nil {
		records = []RecipeRecord{}
	}
	return records, nil
}
