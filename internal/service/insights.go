package service

import (
	"context"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
	"github.com/yourusername/match-oracle/internal/strategy"
	"github.com/yourusername/match-oracle/internal/value"
)

// MatchInsights is the descriptive reading of a match that accompanies a
// prediction.
type MatchInsights struct {
	ID            string                       `json:"id"`
	Probabilities map[models.OutcomeID]float64 `json:"probabilities"`
	Overround     float64                      `json:"overround"`
	Balance       odds.Balance                 `json:"balance"`
	Favorite      odds.FavoriteSummary         `json:"favorite"`
	Period        models.BetPeriod             `json:"period"`
	MultiFactor   strategy.MultiFactorResult   `json:"multi_factor"`
	ValueIndex    []value.OutcomeValue         `json:"value_index"`
	Ultimate      value.UltimateSelection      `json:"ultimate"`
}

// Insights summarises the market view of a match without voting.
func (s *PredictionService) Insights(ctx context.Context, req models.MatchRequest) (*MatchInsights, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	quotes := odds.ParseQuotes(req.Odds)
	mctx := s.predictor.Context(req)
	return &MatchInsights{
		ID:            RequestID("insights", req).String(),
		Probabilities: mctx.Probabilities,
		Overround:     odds.Overround(quotes),
		Balance:       mctx.Balance,
		Favorite:      odds.AnalyzeFavorite(quotes, req.Team1, req.Team2),
		Period:        odds.DetectPeriod(req.Tournament, req.SubTournament, req.PeriodStatus),
		MultiFactor:   strategy.MultiFactorScore(mctx),
		ValueIndex:    value.ValueIndex(quotes, req.Team1, req.Team2),
		Ultimate:      value.UltimateSelections(quotes, req.Team1, req.Team2, s.opts.UltimateMinOdds),
	}, nil
}
