package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
	"github.com/yourusername/match-oracle/internal/strategy"
)

type mockEstimator struct {
	mock.Mock
}

func (m *mockEstimator) Name() string {
	return m.Called().String(0)
}

func (m *mockEstimator) Estimate(option models.CandidateOption, ctx strategy.Context) models.EstimatorVote {
	return m.Called(option, ctx).Get(0).(models.EstimatorVote)
}

// newMockEstimator votes with a fixed score per option label.
func newMockEstimator(name string, scores map[string]float64) *mockEstimator {
	m := &mockEstimator{}
	m.On("Name").Return(name)
	for label, s := range scores {
		label := label
		m.On("Estimate", mock.MatchedBy(func(o models.CandidateOption) bool { return o.Label == label }), mock.Anything).
			Return(models.EstimatorVote{Probability: s, Confidence: 100})
	}
	return m
}

func candidates(labels ...string) []models.CandidateOption {
	out := make([]models.CandidateOption, len(labels))
	for i, l := range labels {
		out[i] = models.CandidateOption{Kind: models.KindSideMarket, Label: l, Multiplier: 2.0}
	}
	return out
}

func emptyContext() strategy.Context {
	return strategy.NewContext("Home", "Away", "", odds.Quotes{})
}

func TestDecideTiers(t *testing.T) {
	tests := []struct {
		name       string
		votesForA  int
		tier       models.ConsensusTier
		confidence float64
		action     models.ActionTier
	}{
		{name: "strong with four votes", votesForA: 4, tier: models.TierStrongConsensus, confidence: 95, action: models.ActionStrongBet},
		{name: "strong with three votes", votesForA: 3, tier: models.TierStrongConsensus, confidence: 95, action: models.ActionStrongBet},
		{name: "majority", votesForA: 2, tier: models.TierMajority, confidence: 80, action: models.ActionStrongBet},
		{name: "split", votesForA: 1, tier: models.TierSplit, confidence: 55, action: models.ActionCautiousBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ests := make([]strategy.Estimator, 0, 4)
			for i := 0; i < tt.votesForA; i++ {
				ests = append(ests, newMockEstimator("for-a", map[string]float64{"A": 60, "B": 40}))
			}
			for i := tt.votesForA; i < 4; i++ {
				// Zero everywhere: abstains.
				ests = append(ests, newMockEstimator("abstain", map[string]float64{"A": 0, "B": 0}))
			}

			r := NewEngine(ests...).Decide(candidates("A", "B"), emptyContext())
			require.NotNil(t, r.Option)
			assert.Equal(t, "A", r.Option.Label)
			assert.Equal(t, tt.votesForA, r.VoteCount)
			assert.Equal(t, tt.tier, r.Tier)
			assert.Equal(t, tt.confidence, r.Confidence)
			assert.Equal(t, tt.action, r.Action)
			assert.InDelta(t, float64(tt.votesForA)*60, r.AggregateScore, 1e-9)
		})
	}
}

func TestDecideNoVotesFallsBackToFirstOption(t *testing.T) {
	e := NewEngine(
		newMockEstimator("a", map[string]float64{"A": 0, "B": 0}),
		newMockEstimator("b", map[string]float64{"A": 0, "B": 0}),
	)

	r := e.Decide(candidates("A", "B"), emptyContext())
	require.NotNil(t, r.Option)
	assert.Equal(t, "A", r.Option.Label)
	assert.Equal(t, models.TierDefault, r.Tier)
	assert.Equal(t, DefaultConfidence, r.Confidence)
	assert.Equal(t, models.ActionAvoid, r.Action)
	assert.Zero(t, r.VoteCount)
	for _, v := range r.Votes {
		assert.False(t, v.Voted)
		assert.Equal(t, -1, v.Preferred)
	}
}

func TestDecideNoOptions(t *testing.T) {
	e := NewEngine(newMockEstimator("a", nil))
	r := e.Decide(nil, emptyContext())
	assert.Nil(t, r.Option)
	assert.Equal(t, models.TierDefault, r.Tier)
}

func TestDecideScoreTieKeepsEarlierOption(t *testing.T) {
	e := NewEngine(newMockEstimator("a", map[string]float64{"A": 50, "B": 50}))
	r := e.Decide(candidates("A", "B"), emptyContext())
	assert.Equal(t, 0, r.Votes[0].Preferred)
	assert.Equal(t, "A", r.Option.Label)
}

func TestDecideVoteTieGoesToFirstVoted(t *testing.T) {
	e := NewEngine(
		newMockEstimator("first", map[string]float64{"A": 10, "B": 40}),
		newMockEstimator("second", map[string]float64{"A": 40, "B": 10}),
	)

	r := e.Decide(candidates("A", "B"), emptyContext())
	require.NotNil(t, r.Option)
	assert.Equal(t, "B", r.Option.Label)
	assert.Equal(t, models.TierSplit, r.Tier)
	assert.True(t, r.Votes[0].Agrees)
	assert.False(t, r.Votes[1].Agrees)
}

func TestDecideRecordsEveryEstimate(t *testing.T) {
	a := newMockEstimator("a", map[string]float64{"A": 20, "B": 30, "C": 10})
	r := NewEngine(a).Decide(candidates("A", "B", "C"), emptyContext())

	require.Len(t, r.Votes, 1)
	rec := r.Votes[0]
	assert.Equal(t, "a", rec.Estimator)
	assert.Len(t, rec.Estimates, 3)
	assert.Equal(t, 1, rec.Preferred)
	assert.Equal(t, 30.0, rec.Score)
	a.AssertNumberOfCalls(t, "Estimate", 3)
}

func TestConfidenceFor(t *testing.T) {
	assert.Equal(t, 95.0, ConfidenceFor(models.TierStrongConsensus, 3))
	assert.Equal(t, 80.0, ConfidenceFor(models.TierMajority, 2))
	assert.Equal(t, 55.0, ConfidenceFor(models.TierSplit, 1))
	assert.Equal(t, models.TierSplit, TierFor(0))
	assert.Equal(t, models.TierMajority, TierFor(2))
	assert.Equal(t, models.TierStrongConsensus, TierFor(7))
}
