package kingdom

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

// Format renders a kingdom as a "Supply" block and, when present, an "Other"
// block. Horse is never listed. When there are more other cards than
// maxOther, r shuffles them and only maxOther are kept; a nil r uses the
// process-wide generator.
func Format(cat *catalog.Catalog, kingdom []string, maxOther int, r *rand.Rand) string {
	if r == nil {
		r = processRNG()
	}
	var supply, other []string
	for _, name := range kingdom {
		i, ok := cat.Index(name)
		if !ok {
			continue
		}
		card := cat.Card(i)
		if card.Name == catalog.HorseName {
			continue
		}
		line := fmt.Sprintf(" - %s: %s (%s)", card.Set, card.Name, card.Types)
		if catalog.IsNonSupplyType(card.Types) {
			other = append(other, line)
			continue
		}
		supply = append(supply, line)
	}

	if maxOther < 0 {
		maxOther = 0
	}
	if len(other) > maxOther {
		r.Shuffle(len(other), func(i, j int) { other[i], other[j] = other[j], other[i] })
		other = other[:maxOther]
	}

	sort.Strings(supply)
	sort.Strings(other)

	var b strings.Builder
	fmt.Fprintf(&b, "Supply (%d):\n", len(supply))
	b.WriteString(strings.Join(supply, "\n"))
	if len(other) > 0 {
		fmt.Fprintf(&b, "\n\nOther (%d):\n", len(other))
		b.WriteString(strings.Join(other, "\n"))
	}
	return b.String()
}
