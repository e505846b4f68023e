package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/match-oracle/internal/odds"
)

func TestMultiFactorScore(t *testing.T) {
	ctx := NewContext("Real Madrid", "Getafe", "La Liga", odds.Quotes{"1": 1.5, "X": 4.0, "2": 6.0})
	r := MultiFactorScore(ctx)

	assert.InDelta(t, 61.54, r.OddsScore, 0.01)
	assert.Equal(t, 50.0, r.LiveScore)
	assert.Equal(t, 75.0, r.TeamScore)
	assert.Equal(t, 65.0, r.ConditionsScore)
	assert.Equal(t, 61.1, r.Score)
	assert.Equal(t, LevelHigh, r.Level)
	assert.Equal(t, MultiFactorRecommendedBet, r.Recommendation)
}

func TestLiveContextScore(t *testing.T) {
	tests := []struct {
		s1, s2, minute int
		expected       float64
	}{
		{0, 0, 0, 50},
		{1, 1, 20, 75},
		{1, 0, 20, 60},
		{0, 0, 20, 45},
		{2, 1, 45, 80},
		{1, 1, 45, 65},
		{0, 0, 45, 40},
		{2, 1, 75, 70},
		{3, 0, 75, 35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LiveContextScore(tt.s1, tt.s2, tt.minute))
	}
}

func TestTeamReputationScore(t *testing.T) {
	assert.Equal(t, 50.0, TeamReputationScore("Lens", "Brest", "Ligue 2"))
	assert.Equal(t, 90.0, TeamReputationScore("Bayern Munich", "Liverpool", "UEFA Champions League"))
}

func TestConditionsScore(t *testing.T) {
	assert.Equal(t, 80.0, ConditionsScore("UEFA Champions League", 80))
	assert.Equal(t, 65.0, ConditionsScore("Ligue 2", 95))
	assert.Equal(t, 65.0, ConditionsScore("Premier League", 90))
	assert.Equal(t, 85.0, ConditionsScore("Champions League", 93))
}
