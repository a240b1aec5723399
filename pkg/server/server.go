package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/amvalores/petserve/pkg/catalog"
	"github.com/amvalores/petserve/pkg/config"
	"github.com/amvalores/petserve/pkg/query"
	"github.com/amvalores/petserve/pkg/trade"
)

// Server handles the IPC for list queries and the trade calculator.
type Server struct {
	dataset catalog.Dataset
	index   *query.Index
	calc    *trade.Calculator
	cfg     *config.Config

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a server speaking msgpack over stdin/stdout.
func NewServer(dataset catalog.Dataset, index *query.Index, cfg *config.Config) *Server {
	return NewServerIO(dataset, index, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over explicit streams, mainly for tests.
func NewServerIO(dataset catalog.Dataset, index *query.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		dataset: dataset,
		index:   index,
		calc:    trade.NewCalculator(),
		cfg:     cfg,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
	}
}

// Start signals readiness, then processes requests until the input stream
// closes. Individual request failures answer with an ErrorResponse and keep
// the loop alive.
func (s *Server) Start() error {
	log.Debug("Starting IPC server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "query":
		s.handleQuery(req)
	case "suggest":
		s.handleSuggest(req)
	case "trade":
		s.handleTrade(req)
	case "dataset":
		s.send(DatasetResponse{
			ID:          req.ID,
			Version:     s.dataset.Version,
			LastUpdated: s.dataset.LastUpdated,
			Count:       len(s.dataset.Pets),
		})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleQuery(req Request) {
	if len(req.Term) > s.cfg.Server.MaxQueryLen {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.cfg.Server.MaxQueryLen), 400)
		return
	}

	start := time.Now()
	res, err := query.View(s.dataset.Pets, query.ViewRequest{
		Query:    req.Term,
		Rarities: req.Rarities,
		Sort:     req.Sort,
	})
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	elapsed := time.Since(start)

	pets := res.Pets
	if limit := s.clampLimit(req.Limit); limit > 0 && len(pets) > limit {
		pets = pets[:limit]
	}

	s.send(QueryResponse{
		ID:        req.ID,
		Pets:      summarize(pets),
		Count:     res.Count,
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) handleSuggest(req Request) {
	if len(req.Term) > s.cfg.Server.MaxQueryLen {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.cfg.Server.MaxQueryLen), 400)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.Server.SuggestLimit
	}

	start := time.Now()
	pets := s.index.Suggest(req.Term, limit)
	elapsed := time.Since(start)

	s.send(QueryResponse{
		ID:        req.ID,
		Pets:      summarize(pets),
		Count:     len(pets),
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) handleTrade(req Request) {
	switch req.Action {
	case "add":
		pet, ok := s.index.Lookup(req.PetID)
		if !ok {
			s.sendError(req.ID, fmt.Sprintf("Unknown pet id: %s", req.PetID), 404)
			return
		}
		if err := s.calc.Add(trade.Side(req.Side), pet); err != nil {
			s.sendError(req.ID, err.Error(), 400)
			return
		}
	case "remove":
		if err := s.calc.RemoveAt(trade.Side(req.Side), req.Index); err != nil {
			s.sendError(req.ID, err.Error(), 400)
			return
		}
	case "reset":
		s.calc.Reset()
	case "eval":
		// State query only, nothing to mutate.
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown trade action: %s", req.Action), 400)
		return
	}
	s.sendTradeState(req.ID)
}

// sendTradeState answers every trade action with the whole calculator
// state, so the client re-renders columns and banner from one message.
func (s *Server) sendTradeState(id string) {
	offered, _ := s.calc.Offer(trade.SideOffered)
	requested, _ := s.calc.Offer(trade.SideRequested)
	ev := s.calc.Evaluate()

	s.send(TradeResponse{
		ID:             id,
		Offered:        summarize(offered),
		Requested:      summarize(requested),
		TotalOffered:   ev.TotalOffered,
		TotalRequested: ev.TotalRequested,
		Band:           ev.Fairness.Band.String(),
		Difference:     ev.Fairness.Difference,
		Percent:        ev.Fairness.Percent,
	})
}

func (s *Server) clampLimit(limit int) int {
	if max := s.cfg.Server.MaxLimit; max > 0 && limit > max {
		return max
	}
	return limit
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func summarize(pets []catalog.Pet) []PetSummary {
	out := make([]PetSummary, len(pets))
	for i, p := range pets {
		out[i] = PetSummary{
			ID:     p.ID,
			NamePt: p.Names.Pt,
			NameEn: p.Names.En,
			Value:  p.Value,
			Rarity: p.RarityLabel(),
			Demand: p.DemandLabel(),
			Trend:  p.TrendLabel(),
			Emoji:  p.EmojiLabel(),
		}
	}
	return out
}
