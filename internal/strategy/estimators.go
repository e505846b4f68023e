package strategy

import (
	"math"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// MatchEstimators returns the estimator bank for unified predictions, in
// voting order.
func MatchEstimators() []Estimator {
	return []Estimator{
		StatisticalEstimator{},
		OddsBasedEstimator{},
		MarketConsensusEstimator{},
		FormEstimator{},
	}
}

// StatisticalEstimator compares team strength profiles for match-result
// options and trusts the price for side markets.
type StatisticalEstimator struct{}

// Name implements Estimator.
func (StatisticalEstimator) Name() string { return "statistical" }

// Estimate implements Estimator.
func (StatisticalEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	var p float64
	if option.Kind == models.KindMatchResult {
		switch option.TargetSide {
		case models.SideHome, models.SideAway:
			p = strengthShare(ctx, option.TargetSide)
		default:
			p = math.Max(15, 100-strengthShare(ctx, models.SideHome)-strengthShare(ctx, models.SideAway))
		}
	} else {
		p = math.Min(85, impliedProbability(option.Multiplier))
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.9, 90),
		Recommendation: recommend(p, 60, 40),
	}
}

// OddsBasedEstimator scales the implied probability by the match balance.
type OddsBasedEstimator struct{}

// Name implements Estimator.
func (OddsBasedEstimator) Name() string { return "odds_based" }

// Estimate implements Estimator.
func (OddsBasedEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	p := math.Min(95, impliedProbability(option.Multiplier)*ctx.Balance.Adjustment())

	rec := models.RecommendationUnfavorable
	switch {
	case option.Multiplier < 2.0:
		rec = models.RecommendationFavorable
	case option.Multiplier < 2.5:
		rec = models.RecommendationNeutral
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.85, 85),
		Recommendation: rec,
	}
}

// MarketConsensusEstimator reads the margin-free market probability of the
// option directly.
type MarketConsensusEstimator struct{}

// Name implements Estimator.
func (MarketConsensusEstimator) Name() string { return "market_consensus" }

// Estimate implements Estimator.
func (MarketConsensusEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	var p float64
	if option.Kind == models.KindMatchResult {
		switch option.TargetSide {
		case models.SideHome:
			p = odds.ProbabilityOf(ctx.Probabilities, models.OutcomeHome)
		case models.SideAway:
			p = odds.ProbabilityOf(ctx.Probabilities, models.OutcomeAway)
		default:
			p = odds.ProbabilityOf(ctx.Probabilities, models.OutcomeDraw)
		}
	} else {
		p = 50
		if option.Multiplier > 0 {
			p = impliedProbability(option.Multiplier)
		}
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.8, 80),
		Recommendation: recommend(p, 55, 35),
	}
}

// FormEstimator rates the targeted team's share of combined strength.
type FormEstimator struct{}

// Name implements Estimator.
func (FormEstimator) Name() string { return "form" }

// Estimate implements Estimator.
func (FormEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	p := 33.0
	if option.TargetSide != models.SideNone {
		p = strengthShare(ctx, option.TargetSide)
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.75, 75),
		Recommendation: recommend(p, 50, 30),
	}
}
