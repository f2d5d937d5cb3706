package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fixtureCards() []Card {
	return []Card{
		{Name: "Village", Set: "Base", Types: "Action", Forward: []string{"Smithy", "Festival"}, Recommended: []string{"Smithy"}},
		{Name: "Smithy", Set: "Base", Types: "Action", Reverse: []string{"Village"}},
		{Name: "Festival", Set: "Base", Types: "Action", Forward: []string{"Nowhere"}},
		{Name: "Copper", Set: "Base", Types: "Treasure", Forward: []string{"Village"}},
		{Name: "Alms", Set: "Adventures", Types: "Event", Forward: []string{"Village"}},
		{Name: "King's Court", Set: "Prosperity", Types: "Action", Forward: []string{"Village"}},
		{Name: "Horse", Set: "Menagerie", Types: "Action - Supply", Reverse: []string{"Village"}},
	}
}

func TestNewDropsExcludedNames(t *testing.T) {
	cat, err := New(fixtureCards())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := cat.Index("copper"); ok {
		t.Fatalf("expected Copper to be excluded")
	}
	if cat.Len() != 6 {
		t.Fatalf("expected 6 cards, got %d", cat.Len())
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	cat, err := New(fixtureCards())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	card, err := cat.Lookup("  vILLAGE ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if card.Name != "Village" {
		t.Fatalf("expected Village, got %q", card.Name)
	}
	if _, err := cat.Lookup("Mountebank"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNormalizationCountsEveryLinkList(t *testing.T) {
	cat, err := New(fixtureCards())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Copper's forward link is gone with Copper itself.
	tests := map[string]int{
		"Smithy":   2,
		"Festival": 1,
		"Village":  4,
		"Nowhere":  1,
		"Alms":     0,
	}
	for name, want := range tests {
		if got := cat.Normalization(name); got != want {
			t.Fatalf("Normalization(%q)=%d want=%d", name, got, want)
		}
	}
}

func TestNewRejectsDuplicateFoldedNames(t *testing.T) {
	cards := []Card{
		{Name: "Village", Set: "Base", Types: "Action"},
		{Name: "VILLAGE", Set: "Base", Types: "Action"},
	}
	if _, err := New(cards); !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("expected ErrDuplicateCard, got %v", err)
	}
}

func TestNewRejectsMissingFields(t *testing.T) {
	cards := []Card{{Name: "Village", Types: "Action"}}
	if _, err := New(cards); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestCatalogDoesNotShareInputSlices(t *testing.T) {
	cards := fixtureCards()
	cat, err := New(cards)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cards[0].Forward[0] = "Mutated"
	if got := cat.Card(0).Forward[0]; got != "Smithy" {
		t.Fatalf("catalog changed with input slice: %q", got)
	}
}

func TestSetsAndSupplyCount(t *testing.T) {
	cat, err := New(fixtureCards())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{"Adventures", "Base", "Menagerie", "Prosperity"}
	if diff := cmp.Diff(want, cat.Sets()); diff != "" {
		t.Fatalf("Sets mismatch:\n%s", diff)
	}
	// Alms is an Event and Horse never counts.
	if got := cat.SupplyCount(); got != 4 {
		t.Fatalf("expected 4 supply cards, got %d", got)
	}
}

func TestIsSupply(t *testing.T) {
	tests := []struct {
		card Card
		want bool
	}{
		{card: Card{Name: "Village", Types: "Action"}, want: true},
		{card: Card{Name: "Alms", Types: "Event"}, want: false},
		{card: Card{Name: "Way of the Mouse", Types: "Way"}, want: false},
		{card: Card{Name: "Horse", Types: "Action"}, want: false},
		{card: Card{Name: "Werewolf", Types: "Action - Night - Doom"}, want: true},
	}
	for _, tc := range tests {
		if got := IsSupply(tc.card); got != tc.want {
			t.Fatalf("IsSupply(%q)=%v want=%v", tc.card.Name, got, tc.want)
		}
	}
}

func TestLoadRestrictsSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	data, err := json.Marshal(fixtureCards())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := Load(path, []string{"prosperity", "ADVENTURES"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var names []string
	for _, c := range cat.Cards() {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Alms", "King's Court"}, names); diff != "" {
		t.Fatalf("Load names mismatch:\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	cat, err := New(fixtureCards())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		in   string
		want string
	}{
		{in: "vilage", want: "Village"},
		{in: "kings court", want: "King's Court"},
		{in: "festiv", want: "Festival"},
	}
	for _, tc := range tests {
		got := cat.Suggest(tc.in, 3)
		if len(got) == 0 || got[0] != tc.want {
			t.Fatalf("Suggest(%q)=%v want first=%q", tc.in, got, tc.want)
		}
	}
	if got := cat.Suggest("zz", 3); len(got) != 0 {
		t.Fatalf("expected no suggestions for short input, got %v", got)
	}
}
