package kingdom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

// otherLines returns the card lines of the "Other" section of a report.
func otherLines(report string) []string {
	_, rest, ok := strings.Cut(report, "\n\nOther (")
	if !ok {
		return nil
	}
	_, body, _ := strings.Cut(rest, "\n")
	return strings.Split(body, "\n")
}

func formatCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Card{
		{Name: "Village", Set: "Base", Types: "Action"},
		{Name: "Cellar", Set: "Base", Types: "Action"},
		{Name: "Horse", Set: "Menagerie", Types: "Action"},
		{Name: "Alms", Set: "Adventures", Types: "Event"},
		{Name: "Way of the Otter", Set: "Menagerie", Types: "Way"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func TestFormatPartitionsAndSorts(t *testing.T) {
	cat := formatCatalog(t)
	got := Format(cat, []string{"village", "alms", "horse", "cellar", "way of the otter"}, 3, seededRNG(1))
	want := "Supply (2):\n" +
		" - Base: Cellar (Action)\n" +
		" - Base: Village (Action)\n" +
		"\n" +
		"Other (2):\n" +
		" - Adventures: Alms (Event)\n" +
		" - Menagerie: Way of the Otter (Way)"
	if got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatOmitsEmptyOther(t *testing.T) {
	cat := formatCatalog(t)
	got := Format(cat, []string{"village", "horse"}, 3, seededRNG(1))
	if got != "Supply (1):\n - Base: Village (Action)" {
		t.Fatalf("unexpected report: %q", got)
	}
}

func TestFormatIsStableForFixedGenerator(t *testing.T) {
	cat := chainCatalog(t, 12, 12)
	var kingdom []string
	for i := 0; i < 12; i++ {
		kingdom = append(kingdom, catalog.Fold(fmt.Sprintf("Event%02d", i)))
	}
	a := Format(cat, kingdom, 3, seededRNG(77))
	b := Format(cat, kingdom, 3, seededRNG(77))
	if a != b {
		t.Fatalf("format differs for identical generator state:\n%s\n---\n%s", a, b)
	}
}

func TestFormatCapsOtherFromWholePool(t *testing.T) {
	cat := chainCatalog(t, 12, 12)
	var kingdom []string
	pool := map[string]bool{}
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("Event%02d", i)
		kingdom = append(kingdom, catalog.Fold(name))
		pool[fmt.Sprintf(" - Empires: %s (Event)", name)] = true
	}
	shown := map[string]bool{}
	for seed := int64(0); seed < 40; seed++ {
		lines := otherLines(Format(cat, kingdom, 3, seededRNG(seed)))
		if len(lines) != 3 {
			t.Fatalf("seed %d: expected 3 other lines, got %d", seed, len(lines))
		}
		for _, l := range lines {
			if !pool[l] {
				t.Fatalf("seed %d: line %q not from the other pool", seed, l)
			}
			shown[l] = true
		}
	}
	if len(shown) <= 3 {
		t.Fatalf("expected the shuffle to reach beyond a fixed 3 cards, saw %d", len(shown))
	}
}

func TestFormatZeroCapDropsOther(t *testing.T) {
	cat := formatCatalog(t)
	got := Format(cat, []string{"village", "alms"}, 0, seededRNG(1))
	if strings.Contains(got, "Other") {
		t.Fatalf("expected no Other section, got %q", got)
	}
}

func TestFormatNilGenerator(t *testing.T) {
	cat := chainCatalog(t, 12, 12)
	var kingdom []string
	for i := 0; i < 12; i++ {
		kingdom = append(kingdom, catalog.Fold(fmt.Sprintf("Event%02d", i)))
	}
	if lines := otherLines(Format(cat, kingdom, 3, nil)); len(lines) != 3 {
		t.Fatalf("expected 3 other lines, got %d", len(lines))
	}
}
