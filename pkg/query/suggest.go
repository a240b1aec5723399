package query

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/amvalores/petserve/pkg/catalog"
)

// DefaultSuggestLimit caps the autocomplete dropdown.
const DefaultSuggestLimit = 5

// Index is a prefix index over normalized pet names and ids, built once per
// dataset. It answers the autocomplete path; full substring matching stays
// with Search.
type Index struct {
	trie *patricia.Trie
	pets []catalog.Pet
	byID map[string]int
}

// NewIndex indexes each pet under its normalized Portuguese name, English
// name, and id. The pets slice is copied; the index never mutates it.
func NewIndex(pets []catalog.Pet) *Index {
	ix := &Index{
		trie: patricia.NewTrie(),
		pets: make([]catalog.Pet, len(pets)),
		byID: make(map[string]int, len(pets)),
	}
	copy(ix.pets, pets)

	for i, pet := range ix.pets {
		ix.insert(catalog.Normalize(pet.Names.Pt), i)
		ix.insert(catalog.Normalize(pet.Names.En), i)
		ix.insert(catalog.Normalize(pet.ID), i)
		if _, dup := ix.byID[pet.ID]; !dup {
			ix.byID[pet.ID] = i
		}
	}
	return ix
}

func (ix *Index) insert(key string, pos int) {
	if key == "" {
		return
	}
	prefix := patricia.Prefix(key)
	if item := ix.trie.Get(prefix); item != nil {
		ix.trie.Set(prefix, append(item.([]int), pos))
		return
	}
	ix.trie.Insert(prefix, []int{pos})
}

// Suggest returns up to limit pets whose indexed keys start with term,
// ordered by value descending with catalog-order ties. A non-positive limit
// means DefaultSuggestLimit; an empty term suggests nothing.
func (ix *Index) Suggest(term string, limit int) []catalog.Pet {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	prefix := catalog.Normalize(term)
	if prefix == "" {
		return []catalog.Pet{}
	}

	seen := make(map[int]struct{})
	var positions []int
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		for _, pos := range item.([]int) {
			if _, dup := seen[pos]; dup {
				continue
			}
			seen[pos] = struct{}{}
			positions = append(positions, pos)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Visiting suggestion index: %v", err)
	}

	// Catalog order first so the value sort breaks ties deterministically.
	sort.Ints(positions)
	sort.SliceStable(positions, func(i, j int) bool {
		return ix.pets[positions[i]].Value > ix.pets[positions[j]].Value
	})

	if len(positions) > limit {
		positions = positions[:limit]
	}
	out := make([]catalog.Pet, 0, len(positions))
	for _, pos := range positions {
		out = append(out, ix.pets[pos])
	}
	return out
}

// Lookup returns the indexed pet with the given id.
func (ix *Index) Lookup(id string) (catalog.Pet, bool) {
	pos, ok := ix.byID[id]
	if !ok {
		return catalog.Pet{}, false
	}
	return ix.pets[pos], true
}
