/*
Package catalog defines the pet catalog model and the coercion rules that turn
external payloads into safe in-memory records.

Every field default lives here: callers never have to guard against a missing
name, an unrecognized rarity tier, or a non-numeric value. Malformed payloads
degrade to empty-but-valid datasets instead of errors.
*/
package catalog

import (
	"encoding/json"
	"fmt"
)

// Rarity tiers recognized by the catalog. Anything else displays as common.
const (
	RarityLegendary = "legendary"
	RarityUltraRare = "ultra-rare"
	RarityRare      = "rare"
	RarityUncommon  = "uncommon"
	RarityCommon    = "common"
)

// Demand levels. Anything else displays as unknown.
const (
	DemandHigh    = "high"
	DemandMedium  = "medium"
	DemandLow     = "low"
	DemandUnknown = "unknown"
)

// Trend directions. Anything else displays as stable.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// DefaultEmoji decorates records that ship without one.
const DefaultEmoji = "🐾"

// Rarities lists the recognized tiers in display order.
var Rarities = []string{RarityLegendary, RarityUltraRare, RarityRare, RarityUncommon, RarityCommon}

// Names holds the localized display names of a pet. At least one of the two
// is expected, but neither is required.
type Names struct {
	En string `json:"en,omitempty" msgpack:"en,omitempty"`
	Pt string `json:"pt,omitempty" msgpack:"pt,omitempty"`
}

// Pet is one immutable catalog entry. Search and trade operations never
// mutate a Pet; they copy slices of them around instead.
type Pet struct {
	ID       string  `json:"id"`
	Names    Names   `json:"names"`
	Value    float64 `json:"value"`
	Rarity   string  `json:"rarity,omitempty"`
	Demand   string  `json:"demand,omitempty"`
	Trend    string  `json:"trend,omitempty"`
	Emoji    string  `json:"emoji,omitempty"`
	Category string  `json:"category,omitempty"`
}

// DisplayName picks the Portuguese name, then the English one, then the id.
func (p Pet) DisplayName() string {
	if p.Names.Pt != "" {
		return p.Names.Pt
	}
	if p.Names.En != "" {
		return p.Names.En
	}
	return p.ID
}

// RarityLabel returns the recognized rarity tier, defaulting to common.
// The record itself keeps whatever the payload said; the default applies
// to display and filtering only.
func (p Pet) RarityLabel() string {
	switch p.Rarity {
	case RarityLegendary, RarityUltraRare, RarityRare, RarityUncommon, RarityCommon:
		return p.Rarity
	}
	return RarityCommon
}

// DemandLabel returns the recognized demand level, defaulting to unknown.
func (p Pet) DemandLabel() string {
	switch p.Demand {
	case DemandHigh, DemandMedium, DemandLow:
		return p.Demand
	}
	return DemandUnknown
}

// TrendLabel returns the recognized trend direction, defaulting to stable.
func (p Pet) TrendLabel() string {
	switch p.Trend {
	case TrendRising, TrendFalling, TrendStable:
		return p.Trend
	}
	return TrendStable
}

// EmojiLabel returns the record's emoji or the generic paw glyph.
func (p Pet) EmojiLabel() string {
	if p.Emoji == "" {
		return DefaultEmoji
	}
	return p.Emoji
}

// Dataset is the normalized in-memory catalog. Version and LastUpdated are
// empty when the payload omitted them or carried a non-string value.
type Dataset struct {
	Version     string `json:"version,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	Pets        []Pet  `json:"pets"`
}

// payloadWire mirrors the raw JSON shape before coercion. Each field keeps
// its raw bytes so one bad field cannot poison the rest of the payload.
type payloadWire struct {
	Version     json.RawMessage `json:"version"`
	LastUpdated json.RawMessage `json:"lastUpdated"`
	Pets        json.RawMessage `json:"pets"`
}

// petWire decodes one record with a tolerant value field.
type petWire struct {
	ID       string          `json:"id"`
	Names    Names           `json:"names"`
	Value    json.RawMessage `json:"value"`
	Rarity   string          `json:"rarity"`
	Demand   string          `json:"demand"`
	Trend    string          `json:"trend"`
	Emoji    string          `json:"emoji"`
	Category string          `json:"category"`
}

// ParsePayload turns raw JSON into a Dataset. Only a body that is not JSON
// at all fails; within a parseable body every field coerces to a safe
// default, a malformed pets array yields no pets, and a record with a
// non-numeric or negative value gets value 0.
func ParsePayload(data []byte) (Dataset, error) {
	var wire payloadWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Dataset{Pets: []Pet{}}, fmt.Errorf("decoding payload: %w", err)
	}
	return Dataset{
		Version:     coerceString(wire.Version),
		LastUpdated: coerceString(wire.LastUpdated),
		Pets:        coercePets(wire.Pets),
	}, nil
}

// DecodePayload is ParsePayload without the failure path, for sources where
// an empty dataset is an acceptable worst case (the local cache snapshot).
func DecodePayload(data []byte) Dataset {
	ds, _ := ParsePayload(data)
	return ds
}

func coerceString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func coercePets(raw json.RawMessage) []Pet {
	var wires []petWire
	if err := json.Unmarshal(raw, &wires); err != nil {
		return []Pet{}
	}
	pets := make([]Pet, 0, len(wires))
	for _, w := range wires {
		pets = append(pets, Pet{
			ID:       w.ID,
			Names:    w.Names,
			Value:    coerceValue(w.Value),
			Rarity:   w.Rarity,
			Demand:   w.Demand,
			Trend:    w.Trend,
			Emoji:    w.Emoji,
			Category: w.Category,
		})
	}
	return pets
}

func coerceValue(raw json.RawMessage) float64 {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}
