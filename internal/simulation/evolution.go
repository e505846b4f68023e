// Package simulation fabricates plausible odds histories for display. Its
// output never feeds a prediction.
package simulation

import (
	"math"
	"math/rand"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// MaxMarkets is how many side markets a simulation covers.
const MaxMarkets = 5

// maxSwing bounds the simulated relative price change in either direction.
const maxSwing = 0.15

// Trend is the direction a price moved.
type Trend string

// Trends
const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Evolution is one market's simulated move.
type Evolution struct {
	Market    string  `json:"market"`
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	Variation float64 `json:"variation_percent"`
	Trend     Trend   `json:"trend"`
}

// SimulateEvolution invents a previous price for the first MaxMarkets usable
// markets. All randomness comes from rng so a fixed seed reproduces the run.
func SimulateEvolution(markets []models.SideMarketInput, rng *rand.Rand) []Evolution {
	parsed := odds.ParseSideMarkets(markets)
	if len(parsed) > MaxMarkets {
		parsed = parsed[:MaxMarkets]
	}

	out := make([]Evolution, 0, len(parsed))
	for _, m := range parsed {
		swing := rng.Float64()*2*maxSwing - maxSwing
		previous := m.Multiplier * (1 - swing)

		trend := TrendStable
		switch {
		case m.Multiplier > previous:
			trend = TrendUp
		case m.Multiplier < previous:
			trend = TrendDown
		}

		out = append(out, Evolution{
			Market:    m.Name,
			Current:   m.Multiplier,
			Previous:  math.Round(previous*100) / 100,
			Variation: math.Round(swing*1000) / 10,
			Trend:     trend,
		})
	}
	return out
}

// NewRand returns a generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
