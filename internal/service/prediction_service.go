// Package service orchestrates predictions, caching, metrics and logging.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/match-oracle/internal/cache"
	"github.com/yourusername/match-oracle/internal/config"
	"github.com/yourusername/match-oracle/internal/consensus"
	"github.com/yourusername/match-oracle/internal/filter"
	"github.com/yourusername/match-oracle/internal/logger"
	"github.com/yourusername/match-oracle/internal/metrics"
	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
	"github.com/yourusername/match-oracle/internal/simulation"
	"github.com/yourusername/match-oracle/internal/strategy"
	"github.com/yourusername/match-oracle/internal/value"
)

// Options tunes a PredictionService.
type Options struct {
	Bands                strategy.Bands
	KellyCap             float64
	ValueThreshold       float64
	MaxValueBets         int
	SyntheticSideMarkets bool
	UltimateMinOdds      float64
	DefaultBankroll      float64
	Filter               filter.Config
	Cache                *cache.PredictionCache
}

// DefaultOptions returns the settings used when no configuration is loaded.
func DefaultOptions() Options {
	return Options{
		Bands:                strategy.DefaultBands,
		KellyCap:             value.DefaultKellyCap,
		ValueThreshold:       value.DefaultThreshold,
		MaxValueBets:         value.DefaultMaxResults,
		SyntheticSideMarkets: true,
		UltimateMinOdds:      value.DefaultUltimateMinOdds,
		DefaultBankroll:      1000,
		Filter:               filter.DefaultConfig(),
	}
}

// OptionsFromConfig maps loaded configuration onto service options. The cache
// is only built when enabled.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Bands: strategy.Bands{
			MatchMin: cfg.Prediction.MatchBandMin,
			MatchMax: cfg.Prediction.MatchBandMax,
			SideMin:  cfg.Prediction.SideBandMin,
			SideMax:  cfg.Prediction.SideBandMax,
		},
		KellyCap:             cfg.Staking.KellyCap,
		ValueThreshold:       cfg.Staking.ValueThreshold,
		MaxValueBets:         cfg.Staking.MaxValueBets,
		SyntheticSideMarkets: cfg.Prediction.SyntheticSideMarkets,
		UltimateMinOdds:      cfg.Prediction.UltimateMinOdds,
		DefaultBankroll:      cfg.Staking.DefaultBankroll,
		Filter:               filter.DefaultConfig(),
	}
	if cfg.Cache.Enabled {
		opts.Cache = cache.NewPredictionCache(cfg.CacheTTL(), cfg.Cache.MaxSize)
	}
	return opts
}

// PredictionService is safe for concurrent use.
type PredictionService struct {
	predictor        *consensus.Predictor
	detector         *value.Detector
	kelly            *value.Calculator
	opts             Options
	cache            *cache.PredictionCache
	validate         *validator.Validate
	logger           *logrus.Logger
	predictionLogger *logger.PredictionLogger
}

// NewPredictionService creates a new prediction service
func NewPredictionService(opts Options, log *logrus.Logger) *PredictionService {
	detector := value.NewDetector()
	detector.Threshold = opts.ValueThreshold
	if opts.MaxValueBets > 0 {
		detector.MaxResults = opts.MaxValueBets
	}
	if opts.UltimateMinOdds <= 0 {
		opts.UltimateMinOdds = value.DefaultUltimateMinOdds
	}

	return &PredictionService{
		predictor:        consensus.NewPredictor(opts.Bands),
		detector:         detector,
		kelly:            value.NewCalculator(opts.KellyCap),
		opts:             opts,
		cache:            opts.Cache,
		validate:         validator.New(),
		logger:           log,
		predictionLogger: logger.NewPredictionLogger(log),
	}
}

// RequestID derives a stable identifier from the variant and the canonical
// JSON encoding of the request.
func RequestID(variant models.Variant, req any) uuid.UUID {
	body, err := json.Marshal(req)
	if err != nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(variant)))
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, append([]byte(string(variant)+":"), body...))
}

func (s *PredictionService) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidRequest, err)
	}
	return nil
}

// IsInvalidRequest reports whether err was caused by request validation.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, models.ErrInvalidRequest)
}

// Predict runs the unified prediction for a match.
func (s *PredictionService) Predict(ctx context.Context, req models.MatchRequest) (*models.ConsensusResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	id := RequestID(models.VariantUnified, req)
	key := cache.CacheKey{Variant: models.VariantUnified, RequestID: id}
	if cached := s.cachedResult(ctx, key); cached != nil {
		return cached, nil
	}

	start := time.Now()
	result := s.predictor.Predict(req)
	result.ID = id.String()
	elapsed := time.Since(start)

	s.record(result, elapsed)
	s.predictionLogger.LogConsensus(result.ID, req.Team1, req.Team2, result, durationMs(elapsed))
	s.predictionLogger.LogEstimatorVotes(result.ID, result.Votes)

	s.store(ctx, key, &result)
	return &result, nil
}

// PredictSideMarkets runs the side-market prediction. A request without side
// markets is completed with synthetic ones derived from its 1X2 quotes when
// enabled.
func (s *PredictionService) PredictSideMarkets(ctx context.Context, req models.MatchRequest) (*models.ConsensusResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	id := RequestID(models.VariantSideMarket, req)
	key := cache.CacheKey{Variant: models.VariantSideMarket, RequestID: id}
	if cached := s.cachedResult(ctx, key); cached != nil {
		return cached, nil
	}

	synthetic := false
	if len(req.SideMarkets) == 0 && s.opts.SyntheticSideMarkets {
		if q := odds.ParseQuotes(req.Odds); !q.Empty() {
			req.SideMarkets = odds.SyntheticInputs(q, req.Team1, req.Team2)
			synthetic = true
		}
	}

	start := time.Now()
	result := s.predictor.PredictSideMarkets(req)
	result.ID = id.String()
	elapsed := time.Since(start)

	s.record(result, elapsed)
	if result.Tier == models.TierInsufficientData {
		s.predictionLogger.LogInsufficientData(result.ID, result.Variant, len(req.SideMarkets))
	} else {
		s.predictionLogger.LogSideConsensus(result.ID, result, req.Score1, req.Score2, req.Minute, synthetic)
		s.predictionLogger.LogEstimatorVotes(result.ID, result.Votes)
	}

	s.store(ctx, key, &result)
	return &result, nil
}

// Combined runs both predictions for a match in play.
func (s *PredictionService) Combined(ctx context.Context, req models.MatchRequest) (*models.CombinedPrediction, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	start := time.Now()
	combined := s.predictor.Combined(req)
	combined.ID = RequestID("combined", req).String()
	elapsed := time.Since(start)

	if !combined.Available {
		s.predictionLogger.LogInsufficientData(combined.ID, models.VariantSideMarket, 0)
		return &combined, nil
	}
	s.record(*combined.Unified, elapsed)
	s.record(*combined.SideMarket, elapsed)
	s.predictionLogger.LogConsensus(combined.ID, req.Team1, req.Team2, *combined.Unified, durationMs(elapsed))
	s.predictionLogger.LogSideConsensus(combined.ID, *combined.SideMarket, req.Score1, req.Score2, req.Minute, false)
	return &combined, nil
}

// ValueBets scans the side markets of a match for positive expected value.
func (s *PredictionService) ValueBets(ctx context.Context, req models.MatchRequest) ([]models.ValueBetEntry, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	markets := odds.ParseSideMarkets(req.SideMarkets)
	entries := s.detector.Detect(markets, odds.NormalizeOdds(req.Odds))
	for _, e := range entries {
		metrics.RecordValueBet(string(e.Tier))
	}
	s.predictionLogger.LogValueBets(RequestID("value_bets", req).String(), len(markets), entries)
	return entries, nil
}

// Kelly recommends a stake. A zero bankroll falls back to the configured
// default; degenerate inputs come back as the error tier, not as an error.
func (s *PredictionService) Kelly(ctx context.Context, req models.KellyRequest) (models.KellyRecommendation, error) {
	if err := s.check(req); err != nil {
		return models.KellyRecommendation{}, err
	}
	if req.Bankroll == 0 {
		req.Bankroll = s.opts.DefaultBankroll
	}

	rec := s.kelly.Stake(req.Bankroll, req.TrueProbability, req.Multiplier)
	metrics.RecordKellyRecommendation(string(rec.Tier))
	s.predictionLogger.LogKellyStake(req.TrueProbability, req.Multiplier, rec)
	return rec, nil
}

// Filter judges whether the unified pick for a match is playable.
func (s *PredictionService) Filter(ctx context.Context, req models.FilterRequest) (*filter.Result, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	var signal filter.Signal
	var id string
	switch {
	case req.Signal != nil:
		signal = filter.SignalFromRecord(*req.Signal, req.HomeFlux, req.AwayFlux, req.ZoneNull)
		id = RequestID(models.VariantUnified, req).String()
	case req.Match != nil:
		result, err := s.Predict(ctx, *req.Match)
		if err != nil {
			return nil, err
		}
		signal = filter.SignalFromConsensus(*result, odds.NormalizeOdds(req.Match.Odds), req.HomeFlux, req.AwayFlux, req.ZoneNull)
		id = result.ID
	default:
		return nil, fmt.Errorf("%w: filter needs a match or a signal", models.ErrInvalidRequest)
	}

	verdict := filter.Evaluate(signal, filter.Meta{TotalMatches: req.TotalMatches}, s.opts.Filter)

	s.logger.WithFields(logrus.Fields{
		"component":      "filter",
		"request_id":     id,
		"status":         verdict.Status,
		"score":          verdict.Score,
		"recommendation": verdict.Recommendation,
		"reasons":        len(verdict.Reasons),
		"explicit":       req.Signal != nil,
	}).Info("Filter evaluated")
	return &verdict, nil
}

// Evolve simulates odds movement for up to five side markets.
func (s *PredictionService) Evolve(ctx context.Context, req models.EvolutionRequest) ([]simulation.Evolution, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	return simulation.SimulateEvolution(req.SideMarkets, simulation.NewRand(req.Seed)), nil
}

// SelfCheck runs a canned prediction and fails when the engine cannot reach
// a consensus on it. It bypasses the cache.
func (s *PredictionService) SelfCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result := s.predictor.Predict(selfCheckMatch)
	if !result.HasOption() || result.Tier == models.TierInsufficientData {
		return fmt.Errorf("self-check produced no option: %w", models.ErrNoUsableData)
	}
	return nil
}

var selfCheckMatch = models.MatchRequest{
	Team1:  "Home",
	Team2:  "Away",
	League: "Self Check",
	Odds: []models.OddsInput{
		{Type: models.OutcomeHome, Multiplier: models.NewPrice(1.8)},
		{Type: models.OutcomeDraw, Multiplier: models.NewPrice(3.5)},
		{Type: models.OutcomeAway, Multiplier: models.NewPrice(4.2)},
	},
}

func (s *PredictionService) cachedResult(ctx context.Context, key cache.CacheKey) *models.ConsensusResult {
	if s.cache == nil {
		return nil
	}
	return s.cache.Get(ctx, key)
}

func (s *PredictionService) store(ctx context.Context, key cache.CacheKey, result *models.ConsensusResult) {
	if s.cache == nil {
		return
	}
	if !s.cache.Set(ctx, key, result) {
		s.logger.WithField("key", key.String()).Debug("Prediction cache full, result not cached")
	}
}

func (s *PredictionService) record(result models.ConsensusResult, elapsed time.Duration) {
	metrics.RecordPrediction(string(result.Variant), string(result.Tier), result.Confidence, elapsed.Seconds())
	for _, v := range result.Votes {
		metrics.RecordEstimatorVote(v.Estimator, v.Voted)
		if v.Agrees {
			metrics.RecordEstimatorAgreement(v.Estimator, string(result.Variant))
		}
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
