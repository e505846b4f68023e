package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

const (
	homeTeam = "Arsenal"
	awayTeam = "Chelsea"
	league   = "Premier League"
)

func referenceContext() Context {
	return NewContext(homeTeam, awayTeam, league, odds.Quotes{
		models.OutcomeHome: 1.80,
		models.OutcomeDraw: 3.50,
		models.OutcomeAway: 4.20,
	})
}

func homeWin() models.CandidateOption {
	return models.CandidateOption{
		Kind:       models.KindMatchResult,
		Label:      "Arsenal win",
		Multiplier: 1.80,
		TargetSide: models.SideHome,
		Outcome:    models.OutcomeHome,
	}
}

func sideOption(label string, multiplier float64, cat models.MarketCategory) models.CandidateOption {
	return models.CandidateOption{
		Kind:       models.KindSideMarket,
		Label:      label,
		Multiplier: multiplier,
		Category:   cat,
	}
}

func TestNewContext(t *testing.T) {
	ctx := referenceContext()

	assert.Equal(t, odds.BalanceUnbalanced, ctx.Balance)
	assert.Equal(t, odds.StrengthProfile{10, 25, 35, 25, 5}, ctx.HomeProfile)
	assert.Equal(t, odds.StrengthProfile{35, 40, 20, 5, 0}, ctx.AwayProfile)
	assert.InDelta(t, 51.48, ctx.Probabilities[models.OutcomeHome], 0.01)

	empty := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	assert.Equal(t, odds.NeutralProfile, empty.HomeProfile)
	assert.Equal(t, odds.NeutralProfile, empty.AwayProfile)
	assert.Equal(t, odds.BalanceModerate, empty.Balance)

	live := ctx.WithLiveScore(2, 1, 70)
	assert.Equal(t, 3, live.Goals())
	assert.Equal(t, 0, ctx.Goals())
}

func TestStatisticalEstimator(t *testing.T) {
	ctx := referenceContext()
	est := StatisticalEstimator{}
	assert.Equal(t, "statistical", est.Name())

	v := est.Estimate(homeWin(), ctx)
	assert.InDelta(t, 50, v.Probability, 1e-9)
	assert.InDelta(t, 45, v.Confidence, 1e-9)
	assert.Equal(t, models.RecommendationNeutral, v.Recommendation)

	draw := homeWin()
	draw.TargetSide = models.SideNone
	v = est.Estimate(draw, ctx)
	assert.InDelta(t, 15, v.Probability, 1e-9)
	assert.Equal(t, models.RecommendationUnfavorable, v.Recommendation)

	v = est.Estimate(sideOption("Over 2.5 goals", 1.1, models.CategoryTotals), ctx)
	assert.InDelta(t, 85, v.Probability, 1e-9)
	assert.InDelta(t, 76.5, v.Confidence, 1e-9)
	assert.Equal(t, models.RecommendationFavorable, v.Recommendation)
}

func TestOddsBasedEstimator(t *testing.T) {
	ctx := referenceContext()
	est := OddsBasedEstimator{}

	v := est.Estimate(homeWin(), ctx)
	assert.InDelta(t, 100/1.8*1.1, v.Probability, 1e-9)
	assert.InDelta(t, 100/1.8*1.1*0.85, v.Confidence, 1e-9)
	assert.Equal(t, models.RecommendationFavorable, v.Recommendation)

	v = est.Estimate(sideOption("Over 2.5", 2.2, models.CategoryTotals), ctx)
	assert.InDelta(t, 50, v.Probability, 1e-9)
	assert.Equal(t, models.RecommendationNeutral, v.Recommendation)

	v = est.Estimate(sideOption("Over 3.5", 3.0, models.CategoryTotals), ctx)
	assert.Equal(t, models.RecommendationUnfavorable, v.Recommendation)

	v = est.Estimate(sideOption("Over 0.5", 1.01, models.CategoryTotals), ctx)
	assert.Equal(t, 95.0, v.Probability)
	assert.InDelta(t, 80.75, v.Confidence, 1e-9)
}

func TestMarketConsensusEstimator(t *testing.T) {
	ctx := referenceContext()
	est := MarketConsensusEstimator{}

	v := est.Estimate(homeWin(), ctx)
	assert.InDelta(t, 51.48, v.Probability, 0.01)
	assert.InDelta(t, 51.48*0.8, v.Confidence, 0.01)
	assert.Equal(t, models.RecommendationNeutral, v.Recommendation)

	partial := NewContext(homeTeam, awayTeam, league, odds.Quotes{models.OutcomeHome: 1.5, models.OutcomeAway: 2.5})
	draw := homeWin()
	draw.TargetSide = models.SideNone
	v = est.Estimate(draw, partial)
	assert.Equal(t, 33.0, v.Probability)

	v = est.Estimate(sideOption("Odd", 0, models.CategoryOddEven), ctx)
	assert.Equal(t, 50.0, v.Probability)

	v = est.Estimate(sideOption("Odd", 2.0, models.CategoryOddEven), ctx)
	assert.Equal(t, 50.0, v.Probability)
	assert.InDelta(t, 40.0, v.Confidence, 1e-9)
}

func TestFormEstimator(t *testing.T) {
	ctx := referenceContext()
	est := FormEstimator{}

	v := est.Estimate(homeWin(), ctx)
	assert.Equal(t, 50.0, v.Probability)
	assert.Equal(t, 37.5, v.Confidence)
	assert.Equal(t, models.RecommendationNeutral, v.Recommendation)

	v = est.Estimate(sideOption("Over 2.5", 2.2, models.CategoryTotals), ctx)
	assert.Equal(t, 33.0, v.Probability)
	assert.Equal(t, 24.75, v.Confidence)
}

func TestMatchEstimatorsOrder(t *testing.T) {
	names := make([]string, 0, 4)
	for _, e := range MatchEstimators() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"statistical", "odds_based", "market_consensus", "form"}, names)
}

func TestTotalsThreshold(t *testing.T) {
	assert.Equal(t, 1.5, TotalsThreshold("over 1.5 goals"))
	assert.Equal(t, 3.0, TotalsThreshold("plus de 3 buts"))
	assert.Equal(t, 2.5, TotalsThreshold("over goals"))
}

func TestTotalsEstimator(t *testing.T) {
	base := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	est := TotalsEstimator{}

	tests := []struct {
		name     string
		label    string
		s1, s2   int
		minute   int
		expected float64
	}{
		{name: "over already landed", label: "Over 2.5 goals", s1: 2, s2: 1, minute: 60, expected: 95},
		{name: "over out of reach", label: "Over 2.5 goals", s1: 1, s2: 0, minute: 85, expected: 15},
		{name: "over still open", label: "Over 2.5 goals", s1: 1, s2: 1, minute: 85, expected: 60},
		{name: "under busted", label: "Moins de 2.5 buts", s1: 3, s2: 0, minute: 30, expected: 5},
		{name: "under nearly safe", label: "Under 2.5 goals", s1: 1, s2: 0, minute: 85, expected: 90},
		{name: "under open", label: "Under 2.5 goals", s1: 1, s2: 1, minute: 85, expected: 40},
		{name: "no direction", label: "Total goals 2.5", expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := base.WithLiveScore(tt.s1, tt.s2, tt.minute)
			v := est.Estimate(sideOption(tt.label, 2.0, models.CategoryTotals), ctx)
			assert.Equal(t, tt.expected, v.Probability)
			assert.InDelta(t, tt.expected*0.9, v.Confidence, 1e-9)
		})
	}
}

func TestHandicapEstimator(t *testing.T) {
	est := HandicapEstimator{}
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})

	v := est.Estimate(sideOption("Handicap Arsenal -1", 2.0, models.CategoryHandicaps), ctx)
	assert.Equal(t, 35.0, v.Probability)

	v = est.Estimate(sideOption("Handicap européen +1", 2.0, models.CategoryHandicaps), ctx)
	assert.Equal(t, 50.0, v.Probability)
	assert.InDelta(t, 40.0, v.Confidence, 1e-9)

	ctx.HomeProfile = odds.StrengthProfile{30, 30, 30, 30, 30}
	v = est.Estimate(sideOption("Handicap Arsenal -1", 2.0, models.CategoryHandicaps), ctx)
	assert.Equal(t, 75.0, v.Probability)
	assert.InDelta(t, 60.0, v.Confidence, 1e-9)

	v = est.Estimate(sideOption("Handicap o2 +1", 2.0, models.CategoryHandicaps), ctx)
	assert.Equal(t, 35.0, v.Probability)

	ctx.HomeProfile = odds.StrengthProfile{20, 35, 30, 15, 5}
	v = est.Estimate(sideOption("Handicap Arsenal -1", 2.0, models.CategoryHandicaps), ctx)
	assert.Equal(t, 65.0, v.Probability)
}

func TestCornersEstimator(t *testing.T) {
	est := CornersEstimator{}

	neutral := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	assert.Equal(t, 8.0, ExpectedCorners(neutral))
	v := est.Estimate(sideOption("Over 9.5 corners", 1.9, models.CategoryCorners), neutral)
	assert.Equal(t, 50.0, v.Probability)
	assert.Equal(t, 70.0, v.Confidence)

	attacking := NewContext(homeTeam, awayTeam, league, odds.Quotes{models.OutcomeHome: 1.5, models.OutcomeAway: 2.0})
	assert.Equal(t, 10.0, ExpectedCorners(attacking))
	v = est.Estimate(sideOption("Over 9.5 corners", 1.9, models.CategoryCorners), attacking)
	assert.Equal(t, 70.0, v.Probability)
}

func TestGenericFormEstimator(t *testing.T) {
	est := GenericFormEstimator{}
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})

	v := est.Estimate(sideOption("Odd", 1.9, models.CategoryOddEven), ctx)
	assert.Equal(t, 55.0, v.Probability)
	assert.InDelta(t, 38.5, v.Confidence, 1e-9)

	v = est.Estimate(sideOption("Arsenal to score", 1.9, models.CategoryTeamSpecific), ctx)
	assert.Equal(t, 40.0, v.Probability)

	ctx.HomeProfile = odds.StrengthProfile{30, 30, 30, 30, 30}
	v = est.Estimate(sideOption("Arsenal to score", 1.9, models.CategoryTeamSpecific), ctx)
	assert.Equal(t, 60.0, v.Probability)
}

func TestEstimatorsArePure(t *testing.T) {
	ctx := referenceContext()
	opt := homeWin()
	for _, est := range append(MatchEstimators(), SideMarketEstimators()...) {
		assert.Equal(t, est.Estimate(opt, ctx), est.Estimate(opt, ctx), est.Name())
	}
}
