package kingdom

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

// Candidate is one possible next card with its sampling weight.
type Candidate struct {
	Name   string
	Count  int
	Weight float64
}

// Weights aggregates the link lists of every kingdom member into a weighted
// candidate table. Candidates appear in first-reference order. Link targets
// missing from the catalog are dropped.
//
// Each raw count is scaled by ln(catalogSize/normalization). The factor is
// zero or negative for targets referenced at least as often as there are
// cards; such weights are kept as they are.
func Weights(cat *catalog.Catalog, kingdom []string) []Candidate {
	return weights(cat, kingdom, nil)
}

func weights(cat *catalog.Catalog, kingdom []string, log *slog.Logger) []Candidate {
	counts := make(map[string]int)
	var order []string
	for _, member := range kingdom {
		i, ok := cat.Index(member)
		if !ok {
			continue
		}
		for _, link := range cat.Card(i).Links() {
			if _, seen := counts[link]; !seen {
				order = append(order, link)
			}
			counts[link]++
		}
	}

	size := float64(cat.Len())
	out := make([]Candidate, 0, len(order))
	for _, name := range order {
		if _, ok := cat.Index(name); !ok {
			if log != nil {
				log.Debug("dropping dangling link", slog.String("target", name))
			}
			continue
		}
		norm := cat.Normalization(name)
		if norm < 1 {
			norm = 1
		}
		c := counts[name]
		out = append(out, Candidate{
			Name:   name,
			Count:  c,
			Weight: float64(c) * math.Log(size/float64(norm)),
		})
	}
	return out
}

// SelectNext proposes one more card for the kingdom. When no linked
// candidate survives, any catalog card is chosen uniformly. A nil r draws
// from the process-wide generator.
func SelectNext(cat *catalog.Catalog, kingdom []string, r *rand.Rand) string {
	if r == nil {
		r = processRNG()
	}
	return selectNext(cat, kingdom, r, nil)
}

func selectNext(cat *catalog.Catalog, kingdom []string, r *rand.Rand, log *slog.Logger) string {
	cands := weights(cat, kingdom, log)
	if len(cands) == 0 {
		if cat.Len() == 0 {
			return ""
		}
		return cat.Card(r.IntN(cat.Len())).Name
	}
	ws := make([]float64, len(cands))
	for i, c := range cands {
		ws[i] = c.Weight
	}
	return cands[pickWeighted(r, ws)].Name
}

// pickWeighted draws an index with probability proportional to its weight
// using cumulative weights and a binary search. Negative weights shrink the
// cumulative total without being clamped; when the total is not positive the
// draw falls back to uniform.
func pickWeighted(r *rand.Rand, ws []float64) int {
	cum := make([]float64, len(ws))
	total := 0.0
	for i, w := range ws {
		total += w
		cum[i] = total
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return r.IntN(len(ws))
	}
	x := r.Float64() * total
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > x })
	if i >= len(cum) {
		i = len(cum) - 1
	}
	return i
}
