/*
Package trade keeps the two-sided offer state and scores its balance.

A Calculator owns two ordered pet sequences, one per side. Pets are
copied in by value and never mutated; the same pet id may appear any number
of times on either side. All mutations are explicit (Add, RemoveAt, Reset)
and nothing is persisted: offers live and die with the session.
*/
package trade

import (
	"errors"
	"fmt"

	"github.com/amvalores/petserve/pkg/catalog"
)

// Side names one column of the trade.
type Side string

const (
	// SideOffered is what the user puts on the table.
	SideOffered Side = "offered"
	// SideRequested is what the user asks for in return.
	SideRequested Side = "requested"
)

var (
	// ErrUnknownSide reports a side outside the two fixed labels.
	ErrUnknownSide = errors.New("unknown trade side")
	// ErrIndexOutOfRange reports a removal position past the sequence.
	ErrIndexOutOfRange = errors.New("offer index out of range")
)

// Evaluation is one render cycle's worth of calculator state: both totals
// plus the fairness classification.
type Evaluation struct {
	TotalOffered   float64
	TotalRequested float64
	Fairness       Fairness
}

// Calculator holds the two offer sequences. Not safe for concurrent use;
// mutations are expected to arrive serialized from a single input loop.
type Calculator struct {
	offered   []catalog.Pet
	requested []catalog.Pet
}

// NewCalculator starts with both sides empty.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Add appends pet to the named side. Duplicates are allowed by design.
func (c *Calculator) Add(side Side, pet catalog.Pet) error {
	seq, err := c.side(side)
	if err != nil {
		return err
	}
	*seq = append(*seq, pet)
	return nil
}

// RemoveAt deletes exactly one entry at the given position.
func (c *Calculator) RemoveAt(side Side, index int) error {
	seq, err := c.side(side)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*seq) {
		return fmt.Errorf("%w: %d of %d on %s", ErrIndexOutOfRange, index, len(*seq), side)
	}
	*seq = append((*seq)[:index], (*seq)[index+1:]...)
	return nil
}

// Offer returns a copy of the named side's sequence.
func (c *Calculator) Offer(side Side) ([]catalog.Pet, error) {
	seq, err := c.side(side)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Pet, len(*seq))
	copy(out, *seq)
	return out, nil
}

// Total sums the named side's values. Unknown sides total zero.
func (c *Calculator) Total(side Side) float64 {
	seq, err := c.side(side)
	if err != nil {
		return 0
	}
	var total float64
	for _, pet := range *seq {
		total += pet.Value
	}
	return total
}

// Reset empties both sides.
func (c *Calculator) Reset() {
	c.offered = nil
	c.requested = nil
}

// Evaluate computes both totals and their fairness band.
func (c *Calculator) Evaluate() Evaluation {
	offered := c.Total(SideOffered)
	requested := c.Total(SideRequested)
	return Evaluation{
		TotalOffered:   offered,
		TotalRequested: requested,
		Fairness:       Classify(offered, requested),
	}
}

func (c *Calculator) side(side Side) (*[]catalog.Pet, error) {
	switch side {
	case SideOffered:
		return &c.offered, nil
	case SideRequested:
		return &c.requested, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSide, side)
}
