// Package logger provides prediction-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/match-oracle/internal/models"
)

// PredictionLogger provides dedicated logging for prediction operations.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction"),
	}
}

// LogConsensus logs a finished unified prediction.
func (pl *PredictionLogger) LogConsensus(requestID string, team1, team2 string, result models.ConsensusResult, durationMs float64) {
	pl.WithFields(resultFields(requestID, result)).WithFields(logrus.Fields{
		"team1":          team1,
		"team2":          team2,
		"duration_ms":    durationMs,
		"options_scored": len(result.Options),
	}).Info("Consensus prediction completed")
}

// LogSideConsensus logs a finished side-market prediction.
func (pl *PredictionLogger) LogSideConsensus(requestID string, result models.ConsensusResult, score1, score2, minute int, synthetic bool) {
	fields := resultFields(requestID, result)
	fields["score"] = []int{score1, score2}
	fields["minute"] = minute
	fields["synthetic_markets"] = synthetic
	if result.Option != nil {
		fields["category"] = result.Option.Category
	}
	pl.WithFields(fields).Info("Side-market prediction completed")
}

// LogEstimatorVotes logs each estimator's ballot at debug level.
func (pl *PredictionLogger) LogEstimatorVotes(requestID string, votes []models.VoteRecord) {
	if !pl.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, v := range votes {
		pl.WithFields(logrus.Fields{
			"request_id": requestID,
			"estimator":  v.Estimator,
			"voted":      v.Voted,
			"preferred":  v.Preferred,
			"score":      v.Score,
			"agrees":     v.Agrees,
		}).Debug("Estimator ballot")
	}
}

// LogInsufficientData logs a prediction that had no usable candidates.
func (pl *PredictionLogger) LogInsufficientData(requestID string, variant models.Variant, marketsReceived int) {
	pl.WithFields(logrus.Fields{
		"request_id":       requestID,
		"variant":          variant,
		"markets_received": marketsReceived,
	}).Warn("Insufficient data for prediction")
}

// LogValueBets logs a value-bet scan.
func (pl *PredictionLogger) LogValueBets(requestID string, marketsScanned int, entries []models.ValueBetEntry) {
	fields := logrus.Fields{
		"request_id":      requestID,
		"markets_scanned": marketsScanned,
		"value_bets":      len(entries),
	}
	if len(entries) > 0 {
		fields["best_market"] = entries[0].Market.Name
		fields["best_value"] = entries[0].Value
		fields["best_tier"] = entries[0].Tier
	}
	pl.WithFields(fields).Info("Value bet scan completed")
}

// LogKellyStake logs a stake recommendation.
func (pl *PredictionLogger) LogKellyStake(trueProbability, multiplier float64, rec models.KellyRecommendation) {
	entry := pl.WithFields(logrus.Fields{
		"bankroll":         rec.Bankroll,
		"true_probability": trueProbability,
		"multiplier":       multiplier,
		"kelly_fraction":   rec.Fraction,
		"stake":            rec.Stake,
		"tier":             rec.Tier,
	})
	if rec.Tier == models.StakeError {
		entry.WithField("reason", rec.Reason).Warn("Stake calculation degenerate")
		return
	}
	entry.Info("Stake calculated")
}

func resultFields(requestID string, result models.ConsensusResult) logrus.Fields {
	fields := logrus.Fields{
		"request_id": requestID,
		"variant":    result.Variant,
		"tier":       result.Tier,
		"votes":      result.VoteCount,
		"confidence": result.Confidence,
		"action":     result.Action,
	}
	if result.Option != nil {
		fields["option"] = result.Option.Label
		fields["multiplier"] = result.Option.Multiplier
	}
	return fields
}
