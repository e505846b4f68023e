package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/match-oracle/internal/models"
)

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		name     string
		quotes   Quotes
		expected Balance
	}{
		{name: "no quotes", quotes: Quotes{}, expected: BalanceModerate},
		{name: "tight", quotes: Quotes{"1": 2.8, "X": 3.1, "2": 2.9}, expected: BalanceVeryBalanced},
		{name: "balanced", quotes: Quotes{"1": 2.4, "X": 3.2, "2": 3.0}, expected: BalanceBalanced},
		{name: "moderate", quotes: Quotes{"1": 1.8, "X": 3.5, "2": 3.6}, expected: BalanceModerate},
		{name: "unbalanced", quotes: Quotes{"1": 1.3, "X": 5.0, "2": 9.0}, expected: BalanceUnbalanced},
		{name: "single quote", quotes: Quotes{"1": 1.3}, expected: BalanceVeryBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyBalance(tt.quotes))
		})
	}
}

func TestBalanceAdjustment(t *testing.T) {
	assert.Equal(t, 0.95, BalanceVeryBalanced.Adjustment())
	assert.Equal(t, 1.0, BalanceBalanced.Adjustment())
	assert.Equal(t, 1.05, BalanceModerate.Adjustment())
	assert.Equal(t, 1.1, BalanceUnbalanced.Adjustment())
}

func TestFavoriteTieBreak(t *testing.T) {
	id, m, ok := Favorite(Quotes{"1": 2.5, "X": 2.5, "2": 2.5})
	assert.True(t, ok)
	assert.Equal(t, models.OutcomeHome, id)
	assert.Equal(t, 2.5, m)

	id, _, _ = Favorite(Quotes{"X": 2.2, "2": 2.2})
	assert.Equal(t, models.OutcomeAway, id)

	_, _, ok = Favorite(Quotes{})
	assert.False(t, ok)
}

func TestAnalyzeFavorite(t *testing.T) {
	s := AnalyzeFavorite(Quotes{"1": 1.5, "X": 4.0, "2": 6.0}, "Lyon", "Nantes")
	assert.True(t, s.Available)
	assert.Equal(t, "Lyon", s.Team)
	assert.Equal(t, 85.0, s.Confidence)
	assert.Contains(t, s.Summary, "Lyon favourite")

	s = AnalyzeFavorite(Quotes{"1": 3.0, "X": 2.1, "2": 3.4}, "Lyon", "Nantes")
	assert.Equal(t, models.OutcomeDraw, s.Outcome)
	assert.Equal(t, "draw likely", s.Summary)

	s = AnalyzeFavorite(Quotes{}, "Lyon", "Nantes")
	assert.False(t, s.Available)
	assert.Equal(t, "insufficient data", s.Summary)
}

func TestFavoriteConfidence(t *testing.T) {
	assert.Equal(t, 95.0, FavoriteConfidence(1.1))
	assert.Equal(t, 80.0, FavoriteConfidence(1.8))
	assert.Equal(t, 37.0, FavoriteConfidence(3.52))
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		prob     float64
		expected StrengthProfile
	}{
		{75, StrengthProfile{5, 15, 30, 35, 15}},
		{60, StrengthProfile{5, 15, 30, 35, 15}},
		{50, StrengthProfile{10, 25, 35, 25, 5}},
		{30, StrengthProfile{20, 35, 30, 15, 0}},
		{12, StrengthProfile{35, 40, 20, 5, 0}},
	}

	for _, tt := range tests {
		p := ProfileFor(tt.prob)
		assert.Equal(t, tt.expected, p)
		assert.Equal(t, 100.0, p.Sum())
	}
}

func TestProfileBuckets(t *testing.T) {
	p := StrengthProfile{5, 15, 30, 35, 15}
	assert.Equal(t, 80.0, p.Late())
	assert.Equal(t, 20.0, p.Early())
}

func TestProfiles(t *testing.T) {
	home, away := Profiles(map[models.OutcomeID]float64{"1": 65, "X": 20, "2": 15})
	assert.Equal(t, ProfileFor(65), home)
	assert.Equal(t, ProfileFor(15), away)

	home, away = Profiles(Fallback())
	assert.Equal(t, NeutralProfile, home)
	assert.Equal(t, NeutralProfile, away)
}
