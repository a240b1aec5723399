package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/amvalores/petserve/pkg/catalog"
)

// Sort policies. SortValueDesc is the default the value list opens with.
const (
	SortValueDesc = "value-desc"
	SortValueAsc  = "value-asc"
	SortNameAsc   = "name-asc"
)

// ErrUnknownSortPolicy reports a policy outside the fixed set.
var ErrUnknownSortPolicy = errors.New("unknown sort policy")

// Sort returns a new slice ordered by policy. The input is never mutated,
// and all policies sort stably, so ties keep their catalog order. An empty
// policy means SortValueDesc.
func Sort(pets []catalog.Pet, policy string) ([]catalog.Pet, error) {
	out := make([]catalog.Pet, len(pets))
	copy(out, pets)

	switch policy {
	case SortValueAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Value < out[j].Value
		})
	case SortNameAsc:
		// Collation buffers are stateful, so the collator is per call.
		c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(sortName(out[i]), sortName(out[j])) < 0
		})
	case SortValueDesc, "":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Value > out[j].Value
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortPolicy, policy)
	}
	return out, nil
}

func sortName(p catalog.Pet) string {
	return strings.ToLower(p.DisplayName())
}
