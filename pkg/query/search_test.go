package query

import (
	"testing"

	"github.com/amvalores/petserve/pkg/catalog"
)

func samplePets() []catalog.Pet {
	return []catalog.Pet{
		{ID: "shadow-dragon", Names: catalog.Names{En: "Shadow Dragon", Pt: "Dragão das Sombras"}, Value: 270, Rarity: "legendary"},
		{ID: "frost-dragon", Names: catalog.Names{En: "Frost Dragon", Pt: "Dragão de Gelo"}, Value: 135, Rarity: "legendary"},
		{ID: "owl", Names: catalog.Names{En: "Owl", Pt: "Coruja"}, Value: 90, Rarity: "legendary"},
		{ID: "flamingo", Names: catalog.Names{En: "Flamingo", Pt: "Flamingo"}, Value: 25, Rarity: "ultra-rare"},
		{ID: "cow", Names: catalog.Names{En: "Cow", Pt: "Vaca"}, Value: 18, Rarity: "rare"},
		{ID: "mystery", Names: catalog.Names{En: "Mystery"}, Value: 1, Rarity: "mythic"},
	}
}

func ids(pets []catalog.Pet) []string {
	out := make([]string, len(pets))
	for i, p := range pets {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []catalog.Pet, want []string) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range want {
		if a[i].ID != want[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	pets := samplePets()

	testCases := []struct {
		query       string
		wantIDs     []string
		description string
	}{
		{"", []string{"shadow-dragon", "frost-dragon", "owl", "flamingo", "cow", "mystery"}, "empty query returns everything in order"},
		{"dragao", []string{"shadow-dragon", "frost-dragon"}, "accent-free query hits accented pt names"},
		{"Dragão", []string{"shadow-dragon", "frost-dragon"}, "accented query matches"},
		{"DRAGON", []string{"shadow-dragon", "frost-dragon"}, "case-insensitive en name"},
		{"coruja", []string{"owl"}, "pt name"},
		{"owl", []string{"owl"}, "id match"},
		{"frost-", []string{"frost-dragon"}, "id substring"},
		{"sombras", []string{"shadow-dragon"}, "pt substring in the middle"},
		{"zebra", []string{}, "no match"},
		{"́̃", []string{"shadow-dragon", "frost-dragon", "owl", "flamingo", "cow", "mystery"}, "query of bare combining marks normalizes to empty"},
	}

	for _, tc := range testCases {
		got := Search(pets, tc.query)
		if !equalIDs(got, tc.wantIDs) {
			t.Errorf("%s: Search(%q) = %v, want %v", tc.description, tc.query, ids(got), tc.wantIDs)
		}
	}
}

func TestSearchEmptyInput(t *testing.T) {
	if got := Search(nil, "dragon"); len(got) != 0 {
		t.Errorf("nil input should return empty, got %v", ids(got))
	}
	if got := Search([]catalog.Pet{}, ""); len(got) != 0 {
		t.Errorf("empty input should return empty, got %v", ids(got))
	}
}

func TestSearchReturnsCopy(t *testing.T) {
	pets := samplePets()
	got := Search(pets, "")
	got[0].ID = "clobbered"
	if pets[0].ID != "shadow-dragon" {
		t.Errorf("Search must return a copy, input was mutated")
	}
}

func TestSearchIsSubsetPreservingOrder(t *testing.T) {
	pets := samplePets()
	for _, q := range []string{"", "a", "dr", "o", "zzz"} {
		got := Search(pets, q)
		pos := 0
		for _, p := range got {
			found := false
			for ; pos < len(pets); pos++ {
				if pets[pos].ID == p.ID {
					found = true
					pos++
					break
				}
			}
			if !found {
				t.Errorf("query %q: result %q out of order or not a subset", q, p.ID)
				break
			}
		}
	}
}

func TestFilterByRarity(t *testing.T) {
	pets := samplePets()

	testCases := []struct {
		active      []string
		wantIDs     []string
		description string
	}{
		{nil, []string{"shadow-dragon", "frost-dragon", "owl", "flamingo", "cow", "mystery"}, "no active labels shows all"},
		{[]string{"legendary"}, []string{"shadow-dragon", "frost-dragon", "owl"}, "single tier"},
		{[]string{"ultra-rare", "rare"}, []string{"flamingo", "cow"}, "two tiers"},
		{[]string{"common"}, []string{}, "unrecognized rarity matches no tier"},
		{[]string{"mythic"}, []string{"mystery"}, "unrecognized rarity stays itself"},
		{[]string{"uncommon"}, []string{}, "tier with no pets"},
	}

	for _, tc := range testCases {
		got := FilterByRarity(pets, tc.active)
		if !equalIDs(got, tc.wantIDs) {
			t.Errorf("%s: FilterByRarity(%v) = %v, want %v", tc.description, tc.active, ids(got), tc.wantIDs)
		}
	}
}

func TestFilterByRarityDefaultsOnlyEmpty(t *testing.T) {
	pets := []catalog.Pet{
		{ID: "plain", Value: 10},
		{ID: "oddball", Value: 20, Rarity: "mythic"},
	}

	got := FilterByRarity(pets, []string{"common"})
	if !equalIDs(got, []string{"plain"}) {
		t.Errorf("common filter = %v, want only the rarity-less record", ids(got))
	}
}

func TestView(t *testing.T) {
	pets := samplePets()

	res, err := View(pets, ViewRequest{Query: "dragao", Sort: SortValueAsc})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !equalIDs(res.Pets, []string{"frost-dragon", "shadow-dragon"}) {
		t.Errorf("view pets = %v", ids(res.Pets))
	}
	if res.Count != 2 {
		t.Errorf("count = %d, want 2", res.Count)
	}

	if _, err := View(pets, ViewRequest{Sort: "value-sideways"}); err == nil {
		t.Errorf("unknown sort policy must fail")
	}
}
