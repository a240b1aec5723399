// Package cli handles the interactive prompt used for testing searches and
// trades without a client attached.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amvalores/petserve/pkg/catalog"
	"github.com/amvalores/petserve/pkg/query"
	"github.com/amvalores/petserve/pkg/trade"
)

// InputHandler reads commands from stdin and prints results with the
// package logger. Plain text searches the catalog; prefixed commands drive
// the trade calculator.
type InputHandler struct {
	dataset      catalog.Dataset
	index        *query.Index
	calc         *trade.Calculator
	resultLimit  int
	requestCount int
}

// NewInputHandler wires the handler to a loaded dataset.
func NewInputHandler(dataset catalog.Dataset, index *query.Index, resultLimit int) *InputHandler {
	return &InputHandler{
		dataset:     dataset,
		index:       index,
		calc:        trade.NewCalculator(),
		resultLimit: resultLimit,
	}
}

// Start begins the interface loop. It reads one line at a time and hands it
// to handleInput; the loop ends when stdin does.
func (h *InputHandler) Start() error {
	log.Print("PetServe CLI")
	log.Print("type a search term, or: add <side> <term> | rm <side> <index> | eval | reset | info | help")
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	fields := strings.Fields(line)

	switch fields[0] {
	case "add":
		h.handleAdd(fields[1:])
	case "rm":
		h.handleRemove(fields[1:])
	case "eval":
		h.printEvaluation()
	case "reset":
		h.calc.Reset()
		log.Print("Trade cleared.")
	case "info":
		h.printInfo()
	case "help":
		log.Print("search: any text | add <offered|requested> <term> | rm <offered|requested> <index> | eval | reset | info")
	default:
		h.handleSearch(line)
	}
}

func (h *InputHandler) handleSearch(term string) {
	start := time.Now()
	res, err := query.View(h.dataset.Pets, query.ViewRequest{Query: term, Sort: query.SortValueDesc})
	if err != nil {
		log.Errorf("Search failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for term '%s'", elapsed, term)

	if res.Count == 0 {
		log.Warnf("No pets match '%s'", term)
		return
	}

	shown := res.Pets
	if h.resultLimit > 0 && len(shown) > h.resultLimit {
		shown = shown[:h.resultLimit]
	}
	log.Printf("Found %d pets for '%s':", res.Count, term)
	for i, pet := range shown {
		h.printPet(i, pet)
	}
}

// handleAdd takes the top suggestion for the term, matching the
// enter-to-add behavior of the calculator UI.
func (h *InputHandler) handleAdd(args []string) {
	if len(args) < 2 {
		log.Errorf("Usage: add <offered|requested> <term>")
		return
	}
	side := trade.Side(args[0])
	term := strings.Join(args[1:], " ")

	matches := h.index.Suggest(term, 1)
	if len(matches) == 0 {
		// Prefix miss; fall back to substring search.
		matches = query.Search(h.dataset.Pets, term)
	}
	if len(matches) == 0 {
		log.Warnf("No pet matches '%s'", term)
		return
	}

	if err := h.calc.Add(side, matches[0]); err != nil {
		log.Errorf("Cannot add: %v", err)
		return
	}
	log.Printf("Added %s %s to %s", matches[0].EmojiLabel(), matches[0].DisplayName(), side)
	h.printEvaluation()
}

func (h *InputHandler) handleRemove(args []string) {
	if len(args) != 2 {
		log.Errorf("Usage: rm <offered|requested> <index>")
		return
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		log.Errorf("Bad index '%s': %v", args[1], err)
		return
	}
	if err := h.calc.RemoveAt(trade.Side(args[0]), index); err != nil {
		log.Errorf("Cannot remove: %v", err)
		return
	}
	h.printEvaluation()
}

func (h *InputHandler) printEvaluation() {
	ev := h.calc.Evaluate()
	log.Printf("offered: %.0f ⭐ | requested: %.0f ⭐", ev.TotalOffered, ev.TotalRequested)

	switch ev.Fairness.Band {
	case trade.Neutral:
		log.Print("Add pets to both sides to score the trade.")
	case trade.Fair:
		log.Print("✅ Fair trade")
	case trade.Favorable:
		log.Printf("💰 You come out ahead - difference: %.0f ⭐ (%d%%)", ev.Fairness.Difference, ev.Fairness.Percent)
	case trade.Unfavorable:
		log.Printf("⚠️ You are losing value - difference: %.0f ⭐ (%d%%)", ev.Fairness.Difference, ev.Fairness.Percent)
	}
}

func (h *InputHandler) printInfo() {
	version := h.dataset.Version
	if version == "" {
		version = "unknown"
	}
	updated := h.dataset.LastUpdated
	if updated == "" {
		updated = "unknown"
	}
	log.Printf("catalog: %d pets, version %s, updated %s", len(h.dataset.Pets), version, updated)
	log.Printf("session: %d commands", h.requestCount)
}

func (h *InputHandler) printPet(i int, pet catalog.Pet) {
	clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", pet.DisplayName())
	log.Printf("%2d. %s %-40s %6.0f ⭐  [%s/%s/%s]",
		i+1, pet.EmojiLabel(), clName, pet.Value, pet.RarityLabel(), pet.DemandLabel(), pet.TrendLabel())
}
