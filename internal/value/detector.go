// Package value flags side markets priced above their estimated true
// probability and sizes stakes for them.
package value

import (
	"math"
	"sort"
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// Default detector settings.
const (
	DefaultThreshold  = 0.05
	DefaultMaxResults = 5
)

// True-probability rule table, in percent.
const (
	cornerProbability       = 55.0
	oddEvenProbability      = 50.0
	overOneSidedProbability = 65.0
	overOpenProbability     = 70.0
	overLowProbability      = 45.0
)

// Detector keeps markets whose expected value exceeds Threshold.
type Detector struct {
	Threshold  float64
	MaxResults int
}

// NewDetector creates a detector with the default settings.
func NewDetector() *Detector {
	return &Detector{Threshold: DefaultThreshold, MaxResults: DefaultMaxResults}
}

// DetectValueBets returns the best value bets among the side markets, using
// the 1X2 quotes to judge goal totals.
func DetectValueBets(sideMarkets []models.SideMarketInput, quotes []models.OddsInput) []models.ValueBetEntry {
	return NewDetector().Detect(odds.ParseSideMarkets(sideMarkets), odds.NormalizeOdds(quotes))
}

// Detect scores every market and returns the kept entries sorted by value,
// highest first. Equal values keep input order.
func (d *Detector) Detect(markets []models.SideMarket, probs map[models.OutcomeID]float64) []models.ValueBetEntry {
	entries := make([]models.ValueBetEntry, 0, len(markets))
	for _, m := range markets {
		if m.Multiplier <= 1.0 {
			continue
		}
		trueProb := TrueProbability(m, probs)
		v := ExpectedValue(trueProb, m.Multiplier)
		if v <= d.Threshold {
			continue
		}
		entries = append(entries, models.ValueBetEntry{
			Market:               m,
			Multiplier:           m.Multiplier,
			BookmakerProbability: 100 / m.Multiplier,
			TrueProbability:      trueProb,
			Value:                v,
			ValuePercent:         v * 100,
			Tier:                 TierFor(v),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if d.MaxResults > 0 && len(entries) > d.MaxResults {
		entries = entries[:d.MaxResults]
	}
	return entries
}

// ExpectedValue is the return per unit staked at the given true probability
// (percent) and multiplier.
func ExpectedValue(trueProbability, multiplier float64) float64 {
	return trueProbability/100*multiplier - 1
}

// TierFor grades an expected value.
func TierFor(v float64) models.ValueTier {
	switch {
	case v > 0.15:
		return models.ValueExcellent
	case v > 0.10:
		return models.ValueGood
	default:
		return models.ValueFair
	}
}

// TrueProbability estimates a market's real probability in percent.
// Corner markets are checked before goal totals so "over 9.5 corners" is not
// read as a goals line.
func TrueProbability(m models.SideMarket, probs map[models.OutcomeID]float64) float64 {
	label := strings.ToLower(m.Name)
	switch {
	case strings.Contains(label, "corner"):
		return cornerProbability
	case odds.IsOver(label):
		return overProbability(probs)
	case odds.IsUnder(label):
		return 100 - overProbability(probs)
	case isOddEven(label):
		return oddEvenProbability
	}
	if m.Multiplier <= 0 {
		return 0
	}
	return 100 / m.Multiplier
}

func overProbability(probs map[models.OutcomeID]float64) float64 {
	p1 := odds.ProbabilityOf(probs, models.OutcomeHome)
	p2 := odds.ProbabilityOf(probs, models.OutcomeAway)
	switch {
	case p1 > 50 || p2 > 50:
		return overOneSidedProbability
	case p1 > 40 && p2 > 40:
		return overOpenProbability
	default:
		return overLowProbability
	}
}

func isOddEven(label string) bool {
	for _, k := range []string{"pair", "even", "odd"} {
		if strings.Contains(label, k) {
			return true
		}
	}
	return false
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
