package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type suggestion struct {
	name  string
	score float64
}

// Suggest returns up to n catalog names that look like the given name.
func (c *Catalog) Suggest(name string, n int) []string {
	in := compactKey(name)
	if in == "" || n <= 0 {
		return nil
	}

	cands := make([]suggestion, 0, 8)
	for _, card := range c.cards {
		key := compactKey(card.Name)
		if key == "" {
			continue
		}
		if key == in {
			cands = append(cands, suggestion{name: card.Name, score: 1})
			continue
		}
		if len(in) >= 3 && strings.HasPrefix(key, in) {
			cands = append(cands, suggestion{name: card.Name, score: 0.9})
			continue
		}
		if len(in) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(in, key)
		if dist > levenshteinLimit(len(key)) {
			continue
		}
		cands = append(cands, suggestion{name: card.Name, score: 0.72 - 0.08*float64(dist)})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].name < cands[j].name
		}
		return cands[i].score > cands[j].score
	})
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, s := range cands {
		out[i] = s.name
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
