// Package odds turns raw bookmaker quotes into margin-free probabilities and
// the derived match descriptors used by the estimators.
package odds

import (
	"github.com/yourusername/match-oracle/internal/models"
)

// FallbackProbability is assigned to every outcome when no usable quote exists.
const FallbackProbability = 33.33

// Outcomes lists the 1X2 outcomes in evaluation order. Favourite ties and
// floating-point sums follow this order so results never depend on map order.
var Outcomes = []models.OutcomeID{models.OutcomeHome, models.OutcomeAway, models.OutcomeDraw}

// Quotes holds the usable 1X2 multipliers of one match.
type Quotes map[models.OutcomeID]float64

// ParseQuotes keeps the usable match-result quotes. Unknown ids and malformed
// multipliers are skipped; a later duplicate replaces an earlier one.
func ParseQuotes(in []models.OddsInput) Quotes {
	quotes := make(Quotes, len(Outcomes))
	for _, o := range in {
		if !o.Type.IsMatchResult() {
			continue
		}
		m, err := o.Multiplier.Multiplier()
		if err != nil {
			continue
		}
		quotes[o.Type] = m
	}
	return quotes
}

// Empty reports whether no usable quote remains.
func (q Quotes) Empty() bool {
	return len(q) == 0
}

// Fallback returns the uniform distribution used when no quote is usable.
func Fallback() map[models.OutcomeID]float64 {
	return map[models.OutcomeID]float64{
		models.OutcomeHome: FallbackProbability,
		models.OutcomeDraw: FallbackProbability,
		models.OutcomeAway: FallbackProbability,
	}
}

// NormalizeOdds converts raw 1X2 quotes into probabilities in [0,100] with the
// bookmaker margin removed.
func NormalizeOdds(in []models.OddsInput) map[models.OutcomeID]float64 {
	return Normalize(ParseQuotes(in))
}

// Normalize converts parsed quotes into margin-free probabilities. Only the
// quoted outcomes appear in the result; their values sum to 100.
func Normalize(q Quotes) map[models.OutcomeID]float64 {
	if q.Empty() {
		return Fallback()
	}

	implied := make(map[models.OutcomeID]float64, len(q))
	total := 0.0
	for _, id := range Outcomes {
		m, ok := q[id]
		if !ok {
			continue
		}
		p := 100 / m
		implied[id] = p
		total += p
	}

	normalized := make(map[models.OutcomeID]float64, len(implied))
	for _, id := range Outcomes {
		if p, ok := implied[id]; ok {
			normalized[id] = p * 100 / total
		}
	}
	return normalized
}

// Overround returns the summed raw implied probabilities in percent.
func Overround(q Quotes) float64 {
	total := 0.0
	for _, id := range Outcomes {
		if m, ok := q[id]; ok {
			total += 100 / m
		}
	}
	return total
}

// ProbabilityOf looks up an outcome, defaulting to 33 when it was not quoted.
func ProbabilityOf(probs map[models.OutcomeID]float64, id models.OutcomeID) float64 {
	if p, ok := probs[id]; ok {
		return p
	}
	return 33
}
