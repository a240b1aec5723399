package server

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/amvalores/petserve/pkg/catalog"
	"github.com/amvalores/petserve/pkg/config"
	"github.com/amvalores/petserve/pkg/query"
)

// runServer feeds the encoded requests through a server and returns a
// decoder over everything it wrote.
func runServer(t *testing.T, requests []Request) *msgpack.Decoder {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	ds := catalog.Fallback()
	var out bytes.Buffer
	srv := NewServerIO(ds, query.NewIndex(ds.Pets), config.DefaultConfig(), &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return msgpack.NewDecoder(&out)
}

func expectReady(t *testing.T, dec *msgpack.Decoder) {
	t.Helper()
	var status StatusResponse
	if err := dec.Decode(&status); err != nil {
		t.Fatalf("decoding ready signal: %v", err)
	}
	if status.Status != "ready" {
		t.Fatalf("first message = %q, want ready", status.Status)
	}
}

func TestServerQuery(t *testing.T) {
	dec := runServer(t, []Request{
		{ID: "q1", Op: "query", Term: "dragao", Sort: "value-desc"},
	})
	expectReady(t, dec)

	var resp QueryResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "q1" {
		t.Errorf("id = %q", resp.ID)
	}
	// Fallback catalog has four dragons; top value is the shadow dragon.
	if resp.Count != 4 || len(resp.Pets) != 4 {
		t.Fatalf("count = %d, pets = %d, want 4", resp.Count, len(resp.Pets))
	}
	if resp.Pets[0].ID != "shadow-dragon" {
		t.Errorf("top result = %s, want shadow-dragon", resp.Pets[0].ID)
	}
}

func TestServerQueryLimitAndRarities(t *testing.T) {
	dec := runServer(t, []Request{
		{ID: "q2", Op: "query", Rarities: []string{"ultra-rare"}, Limit: 1},
	})
	expectReady(t, dec)

	var resp QueryResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// Count reports all matches even when the page is limited.
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2 ultra-rares", resp.Count)
	}
	if len(resp.Pets) != 1 {
		t.Errorf("limited page = %d pets, want 1", len(resp.Pets))
	}
}

func TestServerSuggest(t *testing.T) {
	dec := runServer(t, []Request{
		{ID: "s1", Op: "suggest", Term: "cor"},
	})
	expectReady(t, dec)

	var resp QueryResponse
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// "cor" prefixes Coruja and Corvo; Coruja is worth more.
	if resp.Count != 2 || resp.Pets[0].ID != "owl" || resp.Pets[1].ID != "crow" {
		t.Errorf("suggestions = %+v", resp.Pets)
	}
	if resp.Pets[0].Emoji == "" {
		t.Errorf("summaries must carry display defaults")
	}
}

func TestServerTradeFlow(t *testing.T) {
	dec := runServer(t, []Request{
		{ID: "t1", Op: "trade", Action: "add", Side: "offered", PetID: "owl"},
		{ID: "t2", Op: "trade", Action: "add", Side: "requested", PetID: "parrot"},
		{ID: "t3", Op: "trade", Action: "eval"},
		{ID: "t4", Op: "trade", Action: "remove", Side: "offered", Index: 0},
		{ID: "t5", Op: "trade", Action: "reset"},
	})
	expectReady(t, dec)

	var t1, t2, t3, t4, t5 TradeResponse
	for _, target := range []*TradeResponse{&t1, &t2, &t3, &t4, &t5} {
		if err := dec.Decode(target); err != nil {
			t.Fatalf("decoding trade response: %v", err)
		}
	}

	if t1.TotalOffered != 90 || t1.Band != "unfavorable" {
		t.Errorf("after first add: total=%v band=%s", t1.TotalOffered, t1.Band)
	}
	// 90 vs 85: 5/90 is ~5.6%, over the fair threshold.
	if t3.TotalRequested != 85 || t3.Band != "unfavorable" || t3.Percent != 6 {
		t.Errorf("eval state = %+v", t3)
	}
	if t4.TotalOffered != 0 || t4.Band != "favorable" {
		t.Errorf("after remove: %+v", t4)
	}
	if t5.Band != "neutral" || len(t5.Offered) != 0 || len(t5.Requested) != 0 {
		t.Errorf("after reset: %+v", t5)
	}
}

func TestServerErrors(t *testing.T) {
	dec := runServer(t, []Request{
		{ID: "e1", Op: "warp"},
		{ID: "e2", Op: "trade", Action: "add", Side: "offered", PetID: "ghost"},
		{ID: "e3", Op: "trade", Action: "remove", Side: "offered", Index: 7},
		{ID: "e4", Op: "query", Sort: "by-vibes"},
	})
	expectReady(t, dec)

	wantCodes := map[string]int{"e1": 400, "e2": 404, "e3": 400, "e4": 400}
	for i := 0; i < len(wantCodes); i++ {
		var resp ErrorResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("decoding error response %d: %v", i, err)
		}
		want, ok := wantCodes[resp.ID]
		if !ok {
			t.Fatalf("unexpected response id %q", resp.ID)
		}
		if resp.Code != want {
			t.Errorf("%s: code = %d, want %d", resp.ID, resp.Code, want)
		}
		if resp.Error == "" {
			t.Errorf("%s: empty error message", resp.ID)
		}
	}
}

func TestServerDatasetAndHealth(t *testing.T) {
	dec := runServer(t, []Request{
		{ID: "d1", Op: "dataset"},
		{ID: "h1", Op: "health"},
	})
	expectReady(t, dec)

	var ds DatasetResponse
	if err := dec.Decode(&ds); err != nil {
		t.Fatalf("decoding dataset response: %v", err)
	}
	if ds.Count != 25 || ds.Version == "" {
		t.Errorf("dataset info = %+v", ds)
	}

	var health StatusResponse
	if err := dec.Decode(&health); err != nil {
		t.Fatalf("decoding health response: %v", err)
	}
	if health.Status != "ok" || health.ID != "h1" {
		t.Errorf("health = %+v", health)
	}
}
