package catalog

// Card is a single card record as exported by the card wiki scraper.
type Card struct {
	Name        string   `json:"Name"`
	Set         string   `json:"Set"`
	Types       string   `json:"Types"`
	Cost        string   `json:"Cost,omitempty"`
	Text        string   `json:"Text,omitempty"`
	Forward     []string `json:"Forward,omitempty"`
	Reverse     []string `json:"Reverse,omitempty"`
	Recommended []string `json:"Recommended,omitempty"`
}

// HorseName never occupies a supply slot even though it is a regular card.
const HorseName = "Horse"

var nonSupplyTypes = map[string]struct{}{
	"Artifact": {},
	"Boon":     {},
	"Event":    {},
	"Hex":      {},
	"Landmark": {},
	"Project":  {},
	"State":    {},
	"Way":      {},
}

// Basic treasure, victory and curse cards are removed before sampling.
var excludedNames = map[string]struct{}{
	"Curse":    {},
	"Estate":   {},
	"Duchy":    {},
	"Province": {},
	"Colony":   {},
	"Copper":   {},
	"Silver":   {},
	"Gold":     {},
	"Platinum": {},
}

// IsNonSupplyType reports whether a type label keeps a card out of the supply.
func IsNonSupplyType(types string) bool {
	_, ok := nonSupplyTypes[types]
	return ok
}

// IsExcludedName reports whether the card is always dropped from a catalog.
func IsExcludedName(name string) bool {
	_, ok := excludedNames[name]
	return ok
}

// IsSupply reports whether the card occupies one of the kingdom supply slots.
func IsSupply(c Card) bool {
	if c.Name == HorseName {
		return false
	}
	return !IsNonSupplyType(c.Types)
}

// Links returns every link target of the card: forward, reverse, then recommended.
func (c Card) Links() []string {
	out := make([]string, 0, len(c.Forward)+len(c.Reverse)+len(c.Recommended))
	out = append(out, c.Forward...)
	out = append(out, c.Reverse...)
	out = append(out, c.Recommended...)
	return out
}
