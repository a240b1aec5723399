package trade

import "math"

// FairThreshold is the relative-difference percentage at or below which a
// trade counts as fair. Load-bearing business rule; do not tune casually.
const FairThreshold = 5

// Band classifies a trade's value imbalance.
type Band int

const (
	// Neutral means both sides are still empty of value.
	Neutral Band = iota
	// Fair means the difference is within FairThreshold percent.
	Fair
	// Favorable means the requested side is worth more than the offer.
	Favorable
	// Unfavorable means the offer is worth more than what comes back.
	Unfavorable
)

func (b Band) String() string {
	switch b {
	case Neutral:
		return "neutral"
	case Fair:
		return "fair"
	case Favorable:
		return "favorable"
	case Unfavorable:
		return "unfavorable"
	}
	return "unknown"
}

// Fairness carries the band plus the absolute value difference and the
// rounded percentage behind it. Difference and Percent are zero for Neutral.
type Fairness struct {
	Band       Band
	Difference float64
	Percent    int
}

// Classify bands the imbalance between the two totals. The percentage is
// the absolute difference over the larger total, rounded half up.
func Classify(totalOffered, totalRequested float64) Fairness {
	if totalOffered == 0 && totalRequested == 0 {
		return Fairness{Band: Neutral}
	}

	diff := totalRequested - totalOffered
	abs := math.Abs(diff)
	reference := math.Max(totalOffered, totalRequested)
	percent := int(math.Round(abs / reference * 100))

	switch {
	case percent <= FairThreshold:
		return Fairness{Band: Fair, Difference: abs, Percent: percent}
	case diff > 0:
		return Fairness{Band: Favorable, Difference: abs, Percent: percent}
	default:
		return Fairness{Band: Unfavorable, Difference: abs, Percent: percent}
	}
}
