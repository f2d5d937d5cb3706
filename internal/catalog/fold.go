package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-insensitive key for a card name.
func Fold(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return cases.Fold().String(name)
}

// compactKey strips everything but letters and digits so that suggestions
// survive punctuation typos like "kings court" for "King's Court".
func compactKey(name string) string {
	folded := Fold(name)
	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 0x7f {
			b.WriteRune(r)
		}
	}
	return b.String()
}
