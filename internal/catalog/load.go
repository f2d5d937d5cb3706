package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a card list in the scraper's JSON format. When sets is not
// empty only cards from those sets (case-insensitive) are kept.
func Load(path string, sets []string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	cat, err := New(FilterSets(cards, sets))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// FilterSets returns the cards whose set is in sets. An empty sets list
// keeps everything.
func FilterSets(cards []Card, sets []string) []Card {
	if len(sets) == 0 {
		return append([]Card(nil), cards...)
	}
	want := make(map[string]struct{}, len(sets))
	for _, s := range sets {
		want[Fold(s)] = struct{}{}
	}
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if _, ok := want[Fold(c.Set)]; ok {
			out = append(out, c)
		}
	}
	return out
}
