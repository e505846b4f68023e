package odds

import "github.com/yourusername/match-oracle/internal/models"

// StrengthProfile is a 5-bucket reference distribution describing when a
// team tends to produce its chances, from early to late.
type StrengthProfile [5]float64

// NeutralProfile is used when no 1X2 quote is available.
var NeutralProfile = StrengthProfile{20, 35, 30, 15, 0}

// ProfileFor picks the reference profile for a normalized win probability.
func ProfileFor(winProbability float64) StrengthProfile {
	switch {
	case winProbability >= 60:
		return StrengthProfile{5, 15, 30, 35, 15}
	case winProbability >= 45:
		return StrengthProfile{10, 25, 35, 25, 5}
	case winProbability >= 30:
		return StrengthProfile{20, 35, 30, 15, 0}
	default:
		return StrengthProfile{35, 40, 20, 5, 0}
	}
}

// Sum adds every bucket.
func (p StrengthProfile) Sum() float64 {
	total := 0.0
	for _, v := range p {
		total += v
	}
	return total
}

// Late adds the buckets from the third onwards.
func (p StrengthProfile) Late() float64 {
	return p[2] + p[3] + p[4]
}

// Early adds the first two buckets.
func (p StrengthProfile) Early() float64 {
	return p[0] + p[1]
}

// Profiles derives both teams' profiles from normalized probabilities.
// Unquoted outcomes use the fallback probability.
func Profiles(probs map[models.OutcomeID]float64) (home, away StrengthProfile) {
	return ProfileFor(winProbability(probs, models.OutcomeHome)),
		ProfileFor(winProbability(probs, models.OutcomeAway))
}

func winProbability(probs map[models.OutcomeID]float64, id models.OutcomeID) float64 {
	if p, ok := probs[id]; ok {
		return p
	}
	return FallbackProbability
}
