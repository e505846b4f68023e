package odds

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
)

// SyntheticSideMarkets derives a basic set of side markets from the 1X2
// quotes, for feeds (virtual matches in particular) that publish none.
func SyntheticSideMarkets(q Quotes, team1, team2 string) []models.SideMarket {
	probs := Normalize(q)
	p1 := fraction(probs, models.OutcomeHome)
	pX := fraction(probs, models.OutcomeDraw)
	p2 := fraction(probs, models.OutcomeAway)

	attack := (p1+p2)*0.5 + (1-pX)*0.3

	markets := make([]models.SideMarket, 0, 10)
	addTotals := func(line string, over float64) {
		markets = append(markets,
			models.SideMarket{Name: "Over " + line + " goals", Multiplier: round2(over)},
			models.SideMarket{Name: "Under " + line + " goals", Multiplier: round2(1 / (1 - 1/over))},
		)
	}
	addTotals("0.5", tiered(attack, 0.7, 0.5, 1.25, 1.45, 1.65))
	addTotals("1.5", tiered(attack, 0.6, 0.4, 1.55, 1.85, 2.2))
	addTotals("2.5", tiered(attack, 0.5, 0.3, 2.1, 2.5, 3.0))

	markets = append(markets,
		models.SideMarket{Name: "Even number of goals", Multiplier: 1.95},
		models.SideMarket{Name: "Odd number of goals", Multiplier: 1.9},
		models.SideMarket{Name: teamName(team1, "Team 1") + " to score", Multiplier: tiered(p1, 0.4, 0.3, 2.0, 2.3, 2.6)},
		models.SideMarket{Name: teamName(team2, "Team 2") + " to score", Multiplier: tiered(p2, 0.4, 0.3, 2.0, 2.3, 2.6)},
	)
	return markets
}

// SyntheticInputs renders synthetic markets in request form.
func SyntheticInputs(q Quotes, team1, team2 string) []models.SideMarketInput {
	markets := SyntheticSideMarkets(q, team1, team2)
	out := make([]models.SideMarketInput, len(markets))
	for i, m := range markets {
		out[i] = models.SideMarketInput{Name: m.Name, Multiplier: models.NewPrice(m.Multiplier)}
	}
	return out
}

func fraction(probs map[models.OutcomeID]float64, id models.OutcomeID) float64 {
	p := probs[id] / 100
	if p == 0 {
		return 0.33
	}
	return p
}

func tiered(v, high, mid, aboveHigh, aboveMid, rest float64) float64 {
	switch {
	case v > high:
		return aboveHigh
	case v > mid:
		return aboveMid
	default:
		return rest
	}
}

func teamName(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Label renders a market for display.
func Label(m models.SideMarket) string {
	if m.Value == "" {
		return m.Name
	}
	return fmt.Sprintf("%s %s", m.Name, m.Value)
}
