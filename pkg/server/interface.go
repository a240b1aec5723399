/*
Package server implements msgpack IPC for the pet value list and trade
calculator.

The server reads binary msgpack requests from stdin and writes msgpack
responses to stdout, one message per request, processed synchronously. A
presentation layer (web view, editor plugin, another process) owns all event
wiring and calls in through this protocol; the server itself renders
nothing.

# Operations

Every request carries an id, an op, and the fields that op needs:

	{"id": "q1", "op": "query", "q": "dragao", "rarities": ["legendary"], "sort": "value-desc"}
	{"id": "s1", "op": "suggest", "q": "cor", "l": 5}
	{"id": "t1", "op": "trade", "action": "add", "side": "offered", "pet": "owl"}
	{"id": "t2", "op": "trade", "action": "remove", "side": "offered", "i": 0}
	{"id": "t3", "op": "trade", "action": "eval"}
	{"id": "d1", "op": "dataset"}
	{"id": "h1", "op": "health"}

Query responses carry the matching records and the count the UI shows next
to the list; every trade action answers with the full calculator state so
the client can re-render both columns and the banner from one message.
*/
package server

// Request is the envelope for all IPC operations.
type Request struct {
	ID       string   `msgpack:"id"`
	Op       string   `msgpack:"op"`
	Term     string   `msgpack:"q,omitempty"`
	Rarities []string `msgpack:"rarities,omitempty"`
	Sort     string   `msgpack:"sort,omitempty"`
	Limit    int      `msgpack:"l,omitempty"`
	Action   string   `msgpack:"action,omitempty"`
	Side     string   `msgpack:"side,omitempty"`
	PetID    string   `msgpack:"pet,omitempty"`
	Index    int      `msgpack:"i,omitempty"`
}

// PetSummary is the wire shape of one catalog record, with display defaults
// already applied.
type PetSummary struct {
	ID     string  `msgpack:"id"`
	NamePt string  `msgpack:"pt,omitempty"`
	NameEn string  `msgpack:"en,omitempty"`
	Value  float64 `msgpack:"v"`
	Rarity string  `msgpack:"r"`
	Demand string  `msgpack:"d"`
	Trend  string  `msgpack:"t"`
	Emoji  string  `msgpack:"e"`
}

// QueryResponse answers query and suggest ops.
type QueryResponse struct {
	ID        string       `msgpack:"id"`
	Pets      []PetSummary `msgpack:"pets"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// TradeResponse is the full calculator state after any trade action.
type TradeResponse struct {
	ID             string       `msgpack:"id"`
	Offered        []PetSummary `msgpack:"offered"`
	Requested      []PetSummary `msgpack:"requested"`
	TotalOffered   float64      `msgpack:"to"`
	TotalRequested float64      `msgpack:"tr"`
	Band           string       `msgpack:"band"`
	Difference     float64      `msgpack:"diff"`
	Percent        int          `msgpack:"pct"`
}

// DatasetResponse answers the dataset op.
type DatasetResponse struct {
	ID          string `msgpack:"id"`
	Version     string `msgpack:"version,omitempty"`
	LastUpdated string `msgpack:"last_updated,omitempty"`
	Count       int    `msgpack:"count"`
}

// StatusResponse signals readiness and health.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
