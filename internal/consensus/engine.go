// Package consensus runs the estimator bank over candidate options and turns
// the estimators' votes into a single recommendation.
package consensus

import (
	"math"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/strategy"
)

// Tier thresholds and confidence parameters.
const (
	StrongConsensusVotes = 3
	MajorityVotes        = 2

	strongBase    = 85.0
	majorityBase  = 70.0
	splitBase     = 50.0
	voteBonus     = 5.0
	maxConfidence = 95.0

	// DefaultConfidence is reported when no estimator voted.
	DefaultConfidence = 30.0
)

// Engine collects one vote per estimator and tallies them.
type Engine struct {
	estimators []strategy.Estimator
}

// NewEngine creates an engine. Estimators vote in the given order.
func NewEngine(estimators ...strategy.Estimator) *Engine {
	return &Engine{estimators: estimators}
}

// Estimators returns the estimators in voting order.
func (e *Engine) Estimators() []strategy.Estimator {
	return e.estimators
}

// Decide scores every option with every estimator and aggregates the votes.
//
// Each estimator votes for the option with the highest probability weighted
// by confidence; a score must be strictly greater to displace an earlier
// option, so ties keep the first option and a zero score casts no vote. The
// option with most votes wins; ties go to the option that received its first
// vote earliest.
func (e *Engine) Decide(options []models.CandidateOption, ctx strategy.Context) models.ConsensusResult {
	votes := make([]models.VoteRecord, 0, len(e.estimators))
	counts := make([]int, len(options))
	scores := make([]float64, len(options))
	firstSeen := make([]int, 0, len(options))

	for _, est := range e.estimators {
		rec := models.VoteRecord{
			Estimator: est.Name(),
			Preferred: -1,
			Estimates: make([]models.EstimatorVote, len(options)),
		}
		for i, opt := range options {
			v := est.Estimate(opt, ctx)
			rec.Estimates[i] = v
			if s := v.Score(); s > rec.Score {
				rec.Score = s
				rec.Preferred = i
				rec.Confidence = v.Confidence
			}
		}
		if rec.Preferred >= 0 {
			rec.Voted = true
			if counts[rec.Preferred] == 0 {
				firstSeen = append(firstSeen, rec.Preferred)
			}
			counts[rec.Preferred]++
			scores[rec.Preferred] += rec.Score
		}
		votes = append(votes, rec)
	}

	result := models.ConsensusResult{
		Options: options,
		Votes:   votes,
	}

	if len(firstSeen) == 0 {
		result.Tier = models.TierDefault
		result.Confidence = DefaultConfidence
		if len(options) > 0 {
			opt := options[0]
			result.Option = &opt
		}
		result.Action = models.ActionForConfidence(result.Confidence)
		return result
	}

	winner := firstSeen[0]
	for _, i := range firstSeen[1:] {
		if counts[i] > counts[winner] {
			winner = i
		}
	}

	n := counts[winner]
	opt := options[winner]
	result.Option = &opt
	result.VoteCount = n
	result.Tier = TierFor(n)
	result.Confidence = ConfidenceFor(result.Tier, n)
	result.AggregateScore = scores[winner]
	result.Action = models.ActionForConfidence(result.Confidence)
	for i := range result.Votes {
		result.Votes[i].Agrees = result.Votes[i].Preferred == winner
	}
	return result
}

// TierFor classifies a winning vote count.
func TierFor(votes int) models.ConsensusTier {
	switch {
	case votes >= StrongConsensusVotes:
		return models.TierStrongConsensus
	case votes >= MajorityVotes:
		return models.TierMajority
	default:
		return models.TierSplit
	}
}

// ConfidenceFor is the tier base plus a bonus per vote, capped at 95.
func ConfidenceFor(tier models.ConsensusTier, votes int) float64 {
	base := splitBase
	switch tier {
	case models.TierStrongConsensus:
		base = strongBase
	case models.TierMajority:
		base = majorityBase
	}
	return math.Min(maxConfidence, base+float64(votes)*voteBonus)
}
