package consensus

import (
	"fmt"
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
	"github.com/yourusername/match-oracle/internal/strategy"
)

// combinedMarketPreview is how many raw markets a combined prediction echoes.
const combinedMarketPreview = 3

// Predictor wires option generation to the two estimator banks.
type Predictor struct {
	bands strategy.Bands
	match *Engine
	side  *Engine
}

// NewPredictor creates a predictor using the given multiplier bands.
func NewPredictor(bands strategy.Bands) *Predictor {
	return &Predictor{
		bands: bands,
		match: NewEngine(strategy.MatchEstimators()...),
		side:  NewEngine(strategy.SideMarketEstimators()...),
	}
}

var defaultPredictor = NewPredictor(strategy.DefaultBands)

// GeneratePrediction produces the unified prediction for a match from its
// 1X2 quotes and optional side markets.
func GeneratePrediction(team1, team2, league string, quotes []models.OddsInput, sideMarkets []models.SideMarketInput) models.ConsensusResult {
	return defaultPredictor.Predict(models.MatchRequest{
		Team1:       team1,
		Team2:       team2,
		League:      league,
		Odds:        quotes,
		SideMarkets: sideMarkets,
	})
}

// GenerateSideMarketPrediction produces the side-market prediction for a
// match in play. Without 1X2 quotes both teams get the neutral profile.
func GenerateSideMarketPrediction(team1, team2, league string, sideMarkets []models.SideMarketInput, score1, score2, minute int) models.ConsensusResult {
	return defaultPredictor.PredictSideMarkets(models.MatchRequest{
		Team1:       team1,
		Team2:       team2,
		League:      league,
		SideMarkets: sideMarkets,
		Score1:      score1,
		Score2:      score2,
		Minute:      minute,
	})
}

// Context builds the estimator context for a request.
func (p *Predictor) Context(req models.MatchRequest) strategy.Context {
	quotes := odds.ParseQuotes(req.Odds)
	return strategy.NewContext(req.Team1, req.Team2, req.League, quotes).
		WithLiveScore(req.Score1, req.Score2, req.Minute)
}

// Predict runs the unified prediction. There is always at least one
// candidate, so the result never reports insufficient data.
func (p *Predictor) Predict(req models.MatchRequest) models.ConsensusResult {
	ctx := p.Context(req)
	markets := odds.ParseSideMarkets(req.SideMarkets)
	options := strategy.MatchOptions(ctx, markets, p.bands)

	result := p.match.Decide(options, ctx)
	result.Variant = models.VariantUnified
	result.Verdict = Verdict(result)
	return result
}

// PredictSideMarkets runs the side-market prediction. Confidence follows the
// same tier formula as Predict (one vote 55, four votes 95) rather than the
// older flat min(90, 80+5*votes) scale.
func (p *Predictor) PredictSideMarkets(req models.MatchRequest) models.ConsensusResult {
	ctx := p.Context(req)
	markets := odds.ParseSideMarkets(req.SideMarkets)
	options := strategy.SideMarketOptions(ctx, markets, p.bands)
	if len(options) == 0 {
		return InsufficientData(models.VariantSideMarket,
			fmt.Sprintf("no side market priced between %.2f and %.2f", p.bands.SideMin, p.bands.SideMax))
	}

	result := p.side.Decide(options, ctx)
	result.Variant = models.VariantSideMarket
	result.Verdict = Verdict(result)
	return result
}

// Combined runs both predictions and echoes the first few raw markets and
// the live score.
func (p *Predictor) Combined(req models.MatchRequest) models.CombinedPrediction {
	out := models.CombinedPrediction{
		Markets: []models.SideMarketInput{},
		Score1:  req.Score1,
		Score2:  req.Score2,
		Minute:  req.Minute,
	}
	if len(req.SideMarkets) == 0 {
		out.Verdict = "NO SIDE MARKETS AVAILABLE"
		return out
	}

	unified := p.Predict(req)
	side := p.PredictSideMarkets(req)
	out.Available = true
	out.Unified = &unified
	out.SideMarket = &side

	n := len(req.SideMarkets)
	if n > combinedMarketPreview {
		n = combinedMarketPreview
	}
	out.Markets = append(out.Markets, req.SideMarkets[:n]...)

	previews := make([]string, n)
	for i, m := range out.Markets {
		previews[i] = fmt.Sprintf("%s (odds %s)", m.Name, m.Multiplier)
	}
	out.Verdict = fmt.Sprintf("UNIFIED: %s || SIDE MARKETS: %s || MARKETS: %s || LIVE %d-%d %d'",
		unified.Verdict, side.Verdict, strings.Join(previews, " | "), req.Score1, req.Score2, req.Minute)
	return out
}

// InsufficientData is the result reported when no candidate can be built.
func InsufficientData(variant models.Variant, reason string) models.ConsensusResult {
	return models.ConsensusResult{
		Variant: variant,
		Options: []models.CandidateOption{},
		Votes:   []models.VoteRecord{},
		Tier:    models.TierInsufficientData,
		Action:  models.ActionAvoid,
		Verdict: "INSUFFICIENT DATA: " + reason,
	}
}

// GenerateCombined runs both predictions for a match in play.
func GenerateCombined(req models.MatchRequest) models.CombinedPrediction {
	return defaultPredictor.Combined(req)
}
