package odds

import (
	"fmt"
	"math"

	"github.com/yourusername/match-oracle/internal/models"
)

// Balance classifies how evenly the bookmaker prices a match.
type Balance string

// Balance classes
const (
	BalanceVeryBalanced Balance = "very_balanced"
	BalanceBalanced     Balance = "balanced"
	BalanceModerate     Balance = "moderate"
	BalanceUnbalanced   Balance = "unbalanced"
)

// ClassifyBalance uses the spread between the longest and shortest 1X2
// multiplier. Matches without quotes are treated as moderate.
func ClassifyBalance(q Quotes) Balance {
	if q.Empty() {
		return BalanceModerate
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, id := range Outcomes {
		m, ok := q[id]
		if !ok {
			continue
		}
		lo = math.Min(lo, m)
		hi = math.Max(hi, m)
	}

	spread := hi - lo
	switch {
	case spread < 0.5:
		return BalanceVeryBalanced
	case spread < 1.0:
		return BalanceBalanced
	case spread < 2.0:
		return BalanceModerate
	default:
		return BalanceUnbalanced
	}
}

// Adjustment is the factor applied to implied probabilities for this balance.
func (b Balance) Adjustment() float64 {
	switch b {
	case BalanceVeryBalanced:
		return 0.95
	case BalanceBalanced:
		return 1.0
	case BalanceUnbalanced:
		return 1.1
	default:
		return 1.05
	}
}

// Favorite returns the outcome with the lowest multiplier. Ties go to the
// earlier outcome in Outcomes order.
func Favorite(q Quotes) (models.OutcomeID, float64, bool) {
	var (
		fav   models.OutcomeID
		price float64
		found bool
	)
	for _, id := range Outcomes {
		m, ok := q[id]
		if !ok {
			continue
		}
		if !found || m < price {
			fav, price, found = id, m, true
		}
	}
	return fav, price, found
}

// FavoriteConfidence is the heuristic confidence attached to the favourite
// when describing the match context.
func FavoriteConfidence(multiplier float64) float64 {
	return math.Min(95, math.Floor(100-(multiplier-1)*25))
}

// FavoriteSummary is a short reading of who the bookmaker favours.
type FavoriteSummary struct {
	Available  bool             `json:"available"`
	Outcome    models.OutcomeID `json:"outcome,omitempty"`
	Team       string           `json:"team,omitempty"`
	Multiplier float64          `json:"multiplier,omitempty"`
	Confidence float64          `json:"confidence"`
	Summary    string           `json:"summary"`
}

// AnalyzeFavorite summarises the favourite for display.
func AnalyzeFavorite(q Quotes, team1, team2 string) FavoriteSummary {
	id, m, ok := Favorite(q)
	if !ok {
		return FavoriteSummary{Summary: "insufficient data"}
	}

	conf := math.Min(90, math.Floor(100-(m-1)*30))
	s := FavoriteSummary{
		Available:  true,
		Outcome:    id,
		Multiplier: m,
		Confidence: conf,
	}
	switch id {
	case models.OutcomeHome:
		s.Team = team1
		s.Summary = fmt.Sprintf("%s favourite (confidence %.0f%%)", team1, conf)
	case models.OutcomeAway:
		s.Team = team2
		s.Summary = fmt.Sprintf("%s favourite (confidence %.0f%%)", team2, conf)
	default:
		s.Summary = "draw likely"
	}
	return s
}
