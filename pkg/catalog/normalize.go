package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining diacritical marks after canonical
// decomposition, so "Dragão" and "Dragao" normalize to the same bytes.
var stripMarks = runes.Remove(runes.In(unicode.Mn))

// Normalize lowercases text and strips its diacritics. It never fails;
// undecodable input falls back to plain lowercasing. Idempotent.
func Normalize(text string) string {
	// Chained transformers carry state, so build the chain per call.
	out, _, err := transform.String(transform.Chain(norm.NFD, stripMarks), text)
	if err != nil {
		out = text
	}
	return strings.ToLower(out)
}
