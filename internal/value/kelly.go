package value

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/match-oracle/internal/models"
)

// DefaultKellyCap is the largest bankroll fraction ever recommended.
const DefaultKellyCap = 0.05

// Calculator sizes stakes with a capped Kelly criterion.
type Calculator struct {
	Cap float64
}

// NewCalculator creates a calculator with the given cap. A non-positive cap
// falls back to DefaultKellyCap.
func NewCalculator(kellyCap float64) *Calculator {
	if kellyCap <= 0 {
		kellyCap = DefaultKellyCap
	}
	return &Calculator{Cap: kellyCap}
}

// KellyStake sizes a stake with the default cap.
func KellyStake(bankroll, trueProbability, multiplier float64) models.KellyRecommendation {
	return NewCalculator(DefaultKellyCap).Stake(bankroll, trueProbability, multiplier)
}

// Stake computes (b*p - q) / b capped at c.Cap, where b is the net multiplier
// and p the true probability in percent. Degenerate inputs produce a zero
// stake with the error tier. An empty bankroll is not degenerate: the fraction
// and tier are reported as usual and the stake is zero.
func (c *Calculator) Stake(bankroll, trueProbability, multiplier float64) models.KellyRecommendation {
	rec := models.KellyRecommendation{Bankroll: bankroll}

	if err := checkKellyInputs(bankroll, trueProbability, multiplier); err != nil {
		rec.Tier = models.StakeError
		rec.Reason = err.Error()
		return rec
	}

	p := trueProbability / 100
	q := 1 - p
	b := multiplier - 1
	kelly := math.Min((b*p-q)/b, c.Cap)
	if kelly <= 0 {
		rec.Tier = models.StakeDoNotBet
		rec.Reason = "no positive edge"
		return rec
	}

	stake := decimal.NewFromFloat(bankroll).
		Mul(decimal.NewFromFloat(kelly)).
		Round(2)

	rec.Fraction = kelly
	rec.Stake = stake.InexactFloat64()
	rec.BankrollPercent = round(kelly*100, 2)
	rec.Tier = stakeTier(kelly)
	return rec
}

func checkKellyInputs(bankroll, trueProbability, multiplier float64) error {
	for _, v := range []float64{bankroll, trueProbability, multiplier} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite input", models.ErrArithmeticDegenerate)
		}
	}
	if multiplier-1 <= 0 {
		return fmt.Errorf("%w: multiplier %.2f leaves no net return", models.ErrArithmeticDegenerate, multiplier)
	}
	if bankroll < 0 {
		return fmt.Errorf("%w: negative bankroll", models.ErrArithmeticDegenerate)
	}
	if trueProbability < 0 || trueProbability > 100 {
		return fmt.Errorf("%w: probability %.2f outside [0,100]", models.ErrArithmeticDegenerate, trueProbability)
	}
	return nil
}

func stakeTier(kelly float64) models.StakeTier {
	switch {
	case kelly > 0.03:
		return models.StakeExcellent
	case kelly > 0.01:
		return models.StakeGood
	default:
		return models.StakeCautious
	}
}
