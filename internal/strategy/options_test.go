package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

func TestMatchOptionsPlaceholder(t *testing.T) {
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	options := MatchOptions(ctx, nil, DefaultBands)

	require.Len(t, options, 1)
	opt := options[0]
	assert.Equal(t, models.KindMatchResult, opt.Kind)
	assert.Equal(t, "Arsenal win", opt.Label)
	assert.Equal(t, 2.0, opt.Multiplier)
	assert.Equal(t, 50.0, opt.BaseConfidence)
	assert.Equal(t, models.SideHome, opt.TargetSide)
}

func TestMatchOptionsFavorite(t *testing.T) {
	tests := []struct {
		name       string
		quotes     odds.Quotes
		label      string
		side       models.Side
		confidence float64
	}{
		{
			name:       "home favourite",
			quotes:     odds.Quotes{"1": 1.8, "X": 3.5, "2": 4.2},
			label:      "Arsenal win",
			side:       models.SideHome,
			confidence: 55,
		},
		{
			name:       "away favourite",
			quotes:     odds.Quotes{"1": 4.0, "X": 3.6, "2": 1.9},
			label:      "Chelsea win",
			side:       models.SideAway,
			confidence: 52,
		},
		{
			name:       "draw favourite",
			quotes:     odds.Quotes{"1": 3.0, "X": 2.5, "2": 3.2},
			label:      "Draw",
			side:       models.SideNone,
			confidence: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(homeTeam, awayTeam, league, tt.quotes)
			options := MatchOptions(ctx, nil, DefaultBands)
			require.Len(t, options, 1)
			assert.Equal(t, tt.label, options[0].Label)
			assert.Equal(t, tt.side, options[0].TargetSide)
			assert.Equal(t, tt.confidence, options[0].BaseConfidence)
		})
	}
}

func TestMatchOptionsSideMarketBand(t *testing.T) {
	ctx := referenceContext()
	markets := []models.SideMarket{
		{Name: "Over 3.5 goals", Multiplier: 3.2},
		{Name: "Over 2.5 goals", Multiplier: 2.4},
		{Name: "Arsenal to score", Multiplier: 1.6},
		{Name: "Chelsea to score", Multiplier: 1.6},
		{Name: "Over 0.5 goals", Multiplier: 1.4},
	}

	options := MatchOptions(ctx, markets, DefaultBands)
	require.Len(t, options, 2)

	side := options[1]
	assert.Equal(t, models.KindSideMarket, side.Kind)
	assert.Equal(t, "Arsenal to score", side.Label)
	assert.Equal(t, models.SideHome, side.TargetSide)
	assert.Equal(t, homeTeam, side.TargetTeam)
	assert.Equal(t, models.CategoryTeamSpecific, side.Category)
	assert.Equal(t, 62.0, side.BaseConfidence)
	require.NotNil(t, side.Market)
	assert.Equal(t, 1.6, side.Market.Multiplier)
}

func TestMatchOptionsNoSideMarketInBand(t *testing.T) {
	ctx := referenceContext()
	markets := []models.SideMarket{
		{Name: "Over 0.5 goals", Multiplier: 1.2},
		{Name: "Over 4.5 goals", Multiplier: 6.0},
	}
	assert.Len(t, MatchOptions(ctx, markets, DefaultBands), 1)
}

func TestEvaluate(t *testing.T) {
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})

	score, conf := Evaluate(ctx, models.SideMarket{Name: "Over 2.5 goals", Multiplier: 2.0}, models.CategoryTotals)
	assert.InDelta(t, 63.5, score, 1e-9)
	assert.InDelta(t, 46.75, conf, 1e-9)

	score, _ = Evaluate(ctx, models.SideMarket{Name: "Under 2.5 goals", Multiplier: 1.8}, models.CategoryTotals)
	assert.InDelta(t, 100/1.8+8.25, score, 1e-9)

	score, _ = Evaluate(ctx, models.SideMarket{Name: "Odd number of goals", Multiplier: 1.9}, models.CategoryOddEven)
	assert.InDelta(t, 100/1.9+8, score, 1e-9)

	score, _ = Evaluate(ctx, models.SideMarket{Name: "Even number of goals", Multiplier: 1.9}, models.CategoryOddEven)
	assert.InDelta(t, 100/1.9+5, score, 1e-9)

	score, _ = Evaluate(ctx, models.SideMarket{Name: "Chelsea to score", Multiplier: 2.0}, models.CategoryTeamSpecific)
	assert.InDelta(t, 40, score, 1e-9)

	score, _ = Evaluate(ctx, models.SideMarket{Name: "Over 9.5 corners", Multiplier: 2.0}, models.CategoryCorners)
	assert.InDelta(t, 68, score, 1e-9)

	score, _ = Evaluate(ctx, models.SideMarket{Name: "Arsenal to score", Multiplier: 1.01}, models.CategoryTeamSpecific)
	assert.InDelta(t, 89.0099, score, 1e-3)
}

func TestSideMarketOptions(t *testing.T) {
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	markets := []models.SideMarket{
		{Name: "Odd number of goals", Multiplier: 1.9},
		{Name: "Handicap o1 -1", Multiplier: 3.5},
		{Name: "Over 2.5 goals", Multiplier: 2.0},
		{Name: "Under 2.5 goals", Multiplier: 1.8},
		{Name: "Over 9.5 corners", Multiplier: 5.0},
	}

	options := SideMarketOptions(ctx, markets, DefaultBands)
	require.Len(t, options, 2)
	assert.Equal(t, "Under 2.5 goals", options[0].Label)
	assert.Equal(t, "Over 2.5 goals", options[1].Label)
	assert.Equal(t, models.CategoryTotals, options[0].Category)
	assert.Greater(t, options[0].Evaluation, options[1].Evaluation)
}

func TestSideMarketOptionsTieKeepsInputOrder(t *testing.T) {
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	markets := []models.SideMarket{
		{Name: "Over 1.5 goals", Multiplier: 2.0},
		{Name: "Over 2.5 goals", Multiplier: 2.0},
		{Name: "Over 3.5 goals", Multiplier: 2.0},
	}

	options := SideMarketOptions(ctx, markets, DefaultBands)
	require.Len(t, options, 2)
	assert.Equal(t, "Over 1.5 goals", options[0].Label)
	assert.Equal(t, "Over 2.5 goals", options[1].Label)
}

func TestSideMarketOptionsEmptyBand(t *testing.T) {
	ctx := NewContext(homeTeam, awayTeam, league, odds.Quotes{})
	markets := []models.SideMarket{
		{Name: "Over 0.5 goals", Multiplier: 1.1},
		{Name: "Over 5.5 goals", Multiplier: 12},
	}
	assert.Empty(t, SideMarketOptions(ctx, markets, DefaultBands))
}
