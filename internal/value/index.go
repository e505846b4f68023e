package value

import (
	"sort"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// DefaultUltimateMinOdds is the shortest price considered for a long-odds pick.
const DefaultUltimateMinOdds = 2.0

// OutcomeValue compares a 1X2 price with its margin-free fair price.
type OutcomeValue struct {
	Outcome     models.OutcomeID `json:"outcome"`
	Team        string           `json:"team,omitempty"`
	Multiplier  float64          `json:"multiplier"`
	Probability float64          `json:"probability"`
	FairOdds    float64          `json:"fair_odds"`
	ValueIndex  float64          `json:"value_index"`
}

// UltimateSelection lists long-odds outcomes, best first.
type UltimateSelection struct {
	Options     []OutcomeValue `json:"options"`
	Recommended *OutcomeValue  `json:"recommended"`
}

// ValueIndex rates every quoted 1X2 outcome. Probability is a fraction, and
// all three figures are rounded to two places.
func ValueIndex(q odds.Quotes, team1, team2 string) []OutcomeValue {
	probs := odds.Normalize(q)
	out := make([]OutcomeValue, 0, len(q))
	for _, id := range []models.OutcomeID{models.OutcomeHome, models.OutcomeDraw, models.OutcomeAway} {
		m, ok := q[id]
		if !ok {
			continue
		}
		p := probs[id] / 100
		ov := OutcomeValue{
			Outcome:    id,
			Team:       teamFor(id, team1, team2),
			Multiplier: m,
		}
		if p > 0 && m > 0 {
			fair := 1 / p
			ov.Probability = round(p, 2)
			ov.FairOdds = round(fair, 2)
			ov.ValueIndex = round(fair/m-1, 2)
		}
		out = append(out, ov)
	}
	return out
}

// UltimateSelections keeps outcomes priced at minOdds or longer, ranked by
// value index plus half the probability.
func UltimateSelections(q odds.Quotes, team1, team2 string, minOdds float64) UltimateSelection {
	if minOdds <= 0 {
		minOdds = DefaultUltimateMinOdds
	}
	probs := odds.Normalize(q)

	type ranked struct {
		ov    OutcomeValue
		score float64
	}
	var kept []ranked
	for _, ov := range ValueIndex(q, team1, team2) {
		if ov.Multiplier < minOdds {
			continue
		}
		kept = append(kept, ranked{ov: ov, score: ov.ValueIndex + probs[ov.Outcome]/100*0.5})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	sel := UltimateSelection{Options: make([]OutcomeValue, len(kept))}
	for i, k := range kept {
		sel.Options[i] = k.ov
	}
	if len(sel.Options) > 0 {
		best := sel.Options[0]
		sel.Recommended = &best
	}
	return sel
}

func teamFor(id models.OutcomeID, team1, team2 string) string {
	switch id {
	case models.OutcomeHome:
		return team1
	case models.OutcomeAway:
		return team2
	default:
		return ""
	}
}
