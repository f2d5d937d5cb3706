package kingdom

import "github.com/appengine-ltd/kingdom/internal/catalog"

// SupplyCount returns how many cards of the kingdom occupy supply slots.
// Names missing from the catalog are not counted.
func SupplyCount(cat *catalog.Catalog, kingdom []string) int {
	n := 0
	for _, name := range kingdom {
		i, ok := cat.Index(name)
		if !ok {
			continue
		}
		if catalog.IsSupply(cat.Card(i)) {
			n++
		}
	}
	return n
}

// NeedsSupply reports whether the kingdom still has open supply slots.
func NeedsSupply(cat *catalog.Catalog, kingdom []string) bool {
	return SupplyCount(cat, kingdom) < SupplySize
}
