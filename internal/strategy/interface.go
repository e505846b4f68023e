// Package strategy holds the heuristic estimators that score candidate
// options, and the generators that build those candidates.
package strategy

import (
	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// Estimator scores a candidate option. Implementations are pure: the same
// option and context always yield the same vote.
type Estimator interface {
	Name() string
	Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote
}

// Context is the request-scoped view of a match shared by all estimators.
type Context struct {
	Teams         odds.Teams
	Team1         string
	Team2         string
	League        string
	Quotes        odds.Quotes
	Probabilities map[models.OutcomeID]float64
	HomeProfile   odds.StrengthProfile
	AwayProfile   odds.StrengthProfile
	Balance       odds.Balance
	Score1        int
	Score2        int
	Minute        int
}

// NewContext builds the estimator context from parsed quotes. Without quotes
// both teams get the neutral strength profile.
func NewContext(team1, team2, league string, quotes odds.Quotes) Context {
	probs := odds.Normalize(quotes)
	home, away := odds.NeutralProfile, odds.NeutralProfile
	if !quotes.Empty() {
		home, away = odds.Profiles(probs)
	}
	return Context{
		Teams:         odds.NewTeams(team1, team2),
		Team1:         team1,
		Team2:         team2,
		League:        league,
		Quotes:        quotes,
		Probabilities: probs,
		HomeProfile:   home,
		AwayProfile:   away,
		Balance:       odds.ClassifyBalance(quotes),
	}
}

// WithLiveScore returns a copy of the context carrying the live score.
func (c Context) WithLiveScore(score1, score2, minute int) Context {
	c.Score1 = score1
	c.Score2 = score2
	c.Minute = minute
	return c
}

// Goals is the number of goals scored so far.
func (c Context) Goals() int {
	return c.Score1 + c.Score2
}

// TeamName returns the name of the competitor on a side.
func (c Context) TeamName(side models.Side) string {
	switch side {
	case models.SideHome:
		return c.Team1
	case models.SideAway:
		return c.Team2
	default:
		return ""
	}
}
