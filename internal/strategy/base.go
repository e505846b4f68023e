package strategy

import (
	"math"

	"github.com/yourusername/match-oracle/internal/models"
)

// Bands bounds the multipliers considered informative when picking side
// market candidates.
type Bands struct {
	MatchMin float64 `json:"match_min"`
	MatchMax float64 `json:"match_max"`
	SideMin  float64 `json:"side_min"`
	SideMax  float64 `json:"side_max"`
}

// DefaultBands are the multiplier bands used unless configured otherwise.
var DefaultBands = Bands{
	MatchMin: 1.5,
	MatchMax: 3.0,
	SideMin:  1.4,
	SideMax:  4.0,
}

// inBand reports whether the multiplier falls inside [lo, hi].
func inBand(m, lo, hi float64) bool {
	return m >= lo && m <= hi
}

// strengthShare returns a team's share of the combined strength in percent,
// or 33 when neither team has any strength.
func strengthShare(ctx Context, side models.Side) float64 {
	home, away := ctx.HomeProfile.Sum(), ctx.AwayProfile.Sum()
	total := home + away
	if total == 0 {
		return 33
	}
	switch side {
	case models.SideHome:
		return home / total * 100
	case models.SideAway:
		return away / total * 100
	default:
		return 33
	}
}

// impliedProbability converts a multiplier to a percentage, 0 when unusable.
func impliedProbability(multiplier float64) float64 {
	if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return 0
	}
	return 100 / multiplier
}

// dampen derives an estimator confidence from its probability.
func dampen(probability, factor, ceiling float64) float64 {
	return math.Min(ceiling, probability*factor)
}

// recommend labels a probability against estimator-specific thresholds.
func recommend(probability, favorable, neutral float64) models.Recommendation {
	switch {
	case probability > favorable:
		return models.RecommendationFavorable
	case probability > neutral:
		return models.RecommendationNeutral
	default:
		return models.RecommendationUnfavorable
	}
}
