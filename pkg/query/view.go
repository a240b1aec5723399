package query

import "github.com/amvalores/petserve/pkg/catalog"

// ViewRequest is one render cycle's worth of list state: the free-text
// query, the active rarity toggles, and the sort policy.
type ViewRequest struct {
	Query    string
	Rarities []string
	Sort     string
}

// ViewResult is what the presentation collaborator renders: the ordered
// records plus the result count shown next to the list.
type ViewResult struct {
	Pets  []catalog.Pet
	Count int
}

// View applies search, rarity filtering, and sorting in that order. Only an
// unknown sort policy can fail.
func View(pets []catalog.Pet, req ViewRequest) (ViewResult, error) {
	matched := Search(pets, req.Query)
	matched = FilterByRarity(matched, req.Rarities)
	sorted, err := Sort(matched, req.Sort)
	if err != nil {
		return ViewResult{}, err
	}
	return ViewResult{Pets: sorted, Count: len(sorted)}, nil
}
