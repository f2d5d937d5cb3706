package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a name has no entry in the catalog index.
	ErrNotFound = errors.New("card not found")

	// ErrDuplicateCard is returned when two cards fold to the same name.
	ErrDuplicateCard = errors.New("duplicate card name")

	// ErrInvalidCard is returned when a record is missing a required field.
	ErrInvalidCard = errors.New("invalid card record")
)

// Catalog is an immutable, indexed card collection. The index and the
// normalization table are computed once when the catalog is built.
type Catalog struct {
	cards []Card
	index map[string]int
	norm  map[string]int
}

// New validates cards, drops the excluded basic cards and indexes the rest.
// The input slice is not retained.
func New(cards []Card) (*Catalog, error) {
	kept := make([]Card, 0, len(cards))
	for i, c := range cards {
		if err := validateCard(c); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		if IsExcludedName(c.Name) {
			continue
		}
		kept = append(kept, cloneCard(c))
	}

	index := make(map[string]int, len(kept))
	for i, c := range kept {
		key := Fold(c.Name)
		if prev, ok := index[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateCard, kept[prev].Name, c.Name)
		}
		index[key] = i
	}

	return &Catalog{
		cards: kept,
		index: index,
		norm:  normalization(kept),
	}, nil
}

func validateCard(c Card) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: missing Name", ErrInvalidCard)
	case strings.TrimSpace(c.Set) == "":
		return fmt.Errorf("%w: %q missing Set", ErrInvalidCard, c.Name)
	case strings.TrimSpace(c.Types) == "":
		return fmt.Errorf("%w: %q missing Types", ErrInvalidCard, c.Name)
	}
	return nil
}

func cloneCard(c Card) Card {
	c.Forward = append([]string(nil), c.Forward...)
	c.Reverse = append([]string(nil), c.Reverse...)
	c.Recommended = append([]string(nil), c.Recommended...)
	return c
}

// normalization counts how often each name is referenced as a link target
// across the whole catalog.
func normalization(cards []Card) map[string]int {
	total := make(map[string]int)
	for _, c := range cards {
		for _, link := range c.Links() {
			total[link]++
		}
	}
	return total
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Card returns the card at position i.
func (c *Catalog) Card(i int) Card {
	return c.cards[i]
}

// Cards returns a copy of the catalog cards in load order.
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Index returns the position of the named card.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.index[Fold(name)]
	return i, ok
}

// Lookup returns the named card, or ErrNotFound.
func (c *Catalog) Lookup(name string) (Card, error) {
	i, ok := c.Index(name)
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.cards[i], nil
}

// Normalization returns how many link lists in the catalog reference name.
func (c *Catalog) Normalization(name string) int {
	return c.norm[name]
}

// Sets returns the sorted set labels present in the catalog.
func (c *Catalog) Sets() []string {
	seen := make(map[string]struct{})
	for _, card := range c.cards {
		seen[card.Set] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SupplyCount returns how many cards in the catalog can fill a supply slot.
func (c *Catalog) SupplyCount() int {
	n := 0
	for _, card := range c.cards {
		if IsSupply(card) {
			n++
		}
	}
	return n
}
