/*
Package query turns the in-memory catalog into presentable views: substring
search over localized names, rarity filtering, sort policies, a prefix index
for autocomplete, and the debounced input adapter that rate-limits all of it.

Every function here is a stable, non-mutating pass over a pet slice; results
keep the catalog's relative order unless a sort policy says otherwise.
*/
package query

import (
	"strings"

	"github.com/amvalores/petserve/pkg/catalog"
)

// Search returns every pet whose Portuguese name, English name, or id
// contains the query, matched case- and diacritic-insensitively. An empty
// (or all-diacritic) query returns a shallow copy of the whole input in its
// original order. An empty input returns an empty slice.
func Search(pets []catalog.Pet, query string) []catalog.Pet {
	if len(pets) == 0 {
		return []catalog.Pet{}
	}

	term := catalog.Normalize(query)
	if term == "" {
		out := make([]catalog.Pet, len(pets))
		copy(out, pets)
		return out
	}

	out := make([]catalog.Pet, 0, len(pets))
	for _, pet := range pets {
		if strings.Contains(catalog.Normalize(pet.Names.Pt), term) ||
			strings.Contains(catalog.Normalize(pet.Names.En), term) ||
			strings.Contains(catalog.Normalize(pet.ID), term) {
			out = append(out, pet)
		}
	}
	return out
}

// FilterByRarity keeps only pets whose rarity tier is in active. An empty
// active set means no filtering: the input comes back unchanged, which is
// the "show all" default. A record with no rarity counts as common, but an
// unrecognized tier stays itself and so matches no filter; the
// treat-as-common rule in RarityLabel is for display only.
func FilterByRarity(pets []catalog.Pet, active []string) []catalog.Pet {
	if len(active) == 0 {
		return pets
	}

	set := make(map[string]struct{}, len(active))
	for _, label := range active {
		set[label] = struct{}{}
	}

	out := make([]catalog.Pet, 0, len(pets))
	for _, pet := range pets {
		rarity := pet.Rarity
		if rarity == "" {
			rarity = catalog.RarityCommon
		}
		if _, ok := set[rarity]; ok {
			out = append(out, pet)
		}
	}
	return out
}
