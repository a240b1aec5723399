package catalog

import "testing"

func TestDecodePayload(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantVersion string
		wantUpdated string
		wantPets    int
	}{
		{
			name:        "well formed payload",
			input:       `{"version":"2.1.0","lastUpdated":"2025-10-08T12:00:00Z","pets":[{"id":"owl","names":{"en":"Owl","pt":"Coruja"},"value":90}]}`,
			wantVersion: "2.1.0",
			wantUpdated: "2025-10-08T12:00:00Z",
			wantPets:    1,
		},
		{
			name:     "pets not an array",
			input:    `{"version":"1.0.0","pets":{"id":"owl"}}`,
			wantPets: 0, wantVersion: "1.0.0",
		},
		{
			name:     "numeric version coerced to empty",
			input:    `{"version":3,"lastUpdated":false,"pets":[]}`,
			wantPets: 0,
		},
		{
			name:     "not json at all",
			input:    `<!doctype html>`,
			wantPets: 0,
		},
		{
			name:     "missing everything",
			input:    `{}`,
			wantPets: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds := DecodePayload([]byte(tc.input))
			if ds.Version != tc.wantVersion {
				t.Errorf("version = %q, want %q", ds.Version, tc.wantVersion)
			}
			if ds.LastUpdated != tc.wantUpdated {
				t.Errorf("lastUpdated = %q, want %q", ds.LastUpdated, tc.wantUpdated)
			}
			if ds.Pets == nil {
				t.Fatalf("pets must never be nil")
			}
			if len(ds.Pets) != tc.wantPets {
				t.Errorf("len(pets) = %d, want %d", len(ds.Pets), tc.wantPets)
			}
		})
	}
}

func TestParsePayloadRejectsNonJSON(t *testing.T) {
	if _, err := ParsePayload([]byte(`<!doctype html>`)); err == nil {
		t.Errorf("a body that is not JSON must fail")
	}
	if _, err := ParsePayload([]byte(`{"version":3,"pets":"nope"}`)); err != nil {
		t.Errorf("valid JSON with a broken shape must coerce, got %v", err)
	}
}

func TestDecodePayloadValueCoercion(t *testing.T) {
	input := `{"pets":[
		{"id":"a","value":12},
		{"id":"b","value":"lots"},
		{"id":"c"},
		{"id":"d","value":-5},
		{"id":"e","value":7.5}
	]}`
	ds := DecodePayload([]byte(input))
	if len(ds.Pets) != 5 {
		t.Fatalf("len(pets) = %d, want 5", len(ds.Pets))
	}
	want := []float64{12, 0, 0, 0, 7.5}
	for i, w := range want {
		if ds.Pets[i].Value != w {
			t.Errorf("pet %s value = %v, want %v", ds.Pets[i].ID, ds.Pets[i].Value, w)
		}
	}
}

func TestPetLabels(t *testing.T) {
	testCases := []struct {
		pet         Pet
		rarity      string
		demand      string
		trend       string
		emoji       string
		display     string
		description string
	}{
		{Pet{ID: "owl", Names: Names{En: "Owl", Pt: "Coruja"}, Rarity: "legendary", Demand: "high", Trend: "stable", Emoji: "🦉"},
			"legendary", "high", "stable", "🦉", "Coruja", "fully populated record"},
		{Pet{ID: "mystery", Rarity: "mythic", Demand: "extreme", Trend: "sideways"},
			"common", "unknown", "stable", "🐾", "mystery", "unrecognized labels default"},
		{Pet{ID: "ghost", Names: Names{En: "Ghost"}},
			"common", "unknown", "stable", "🐾", "Ghost", "english-only name"},
	}

	for _, tc := range testCases {
		if got := tc.pet.RarityLabel(); got != tc.rarity {
			t.Errorf("%s: rarity = %q, want %q", tc.description, got, tc.rarity)
		}
		if got := tc.pet.DemandLabel(); got != tc.demand {
			t.Errorf("%s: demand = %q, want %q", tc.description, got, tc.demand)
		}
		if got := tc.pet.TrendLabel(); got != tc.trend {
			t.Errorf("%s: trend = %q, want %q", tc.description, got, tc.trend)
		}
		if got := tc.pet.EmojiLabel(); got != tc.emoji {
			t.Errorf("%s: emoji = %q, want %q", tc.description, got, tc.emoji)
		}
		if got := tc.pet.DisplayName(); got != tc.display {
			t.Errorf("%s: display name = %q, want %q", tc.description, got, tc.display)
		}
	}
}

func TestFallback(t *testing.T) {
	ds := Fallback()
	if len(ds.Pets) != 25 {
		t.Fatalf("fallback catalog has %d pets, want 25", len(ds.Pets))
	}
	if ds.Version == "" || ds.LastUpdated == "" {
		t.Errorf("fallback metadata must be populated")
	}

	seen := make(map[string]bool, len(ds.Pets))
	for _, p := range ds.Pets {
		if p.ID == "" {
			t.Errorf("fallback pet with empty id")
		}
		if seen[p.ID] {
			t.Errorf("duplicate fallback id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Value < 0 {
			t.Errorf("pet %s has negative value", p.ID)
		}
	}

	// Callers must not be able to corrupt the embedded table.
	ds.Pets[0].Value = -1
	if again := Fallback(); again.Pets[0].Value == -1 {
		t.Errorf("Fallback returned an aliased slice")
	}
}
