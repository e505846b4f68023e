package models

// OptionKind distinguishes match-result candidates from side-market candidates.
type OptionKind string

// Candidate option kinds
const (
	KindMatchResult OptionKind = "match_result"
	KindSideMarket  OptionKind = "side_market"
)

// CandidateOption is a betting selection under evaluation.
type CandidateOption struct {
	Kind           OptionKind     `json:"kind"`
	Label          string         `json:"label"`
	Multiplier     float64        `json:"multiplier"`
	TargetSide     Side           `json:"target_side,omitempty"`
	TargetTeam     string         `json:"target_team,omitempty"`
	Outcome        OutcomeID      `json:"outcome,omitempty"`
	Category       MarketCategory `json:"category,omitempty"`
	Market         *SideMarket    `json:"market,omitempty"`
	BaseConfidence float64        `json:"base_confidence"`
	Evaluation     float64        `json:"evaluation_score,omitempty"`
}

// Recommendation is an estimator's informational label for one option.
type Recommendation string

// Estimator recommendations
const (
	RecommendationFavorable   Recommendation = "favorable"
	RecommendationNeutral     Recommendation = "neutral"
	RecommendationUnfavorable Recommendation = "unfavorable"
)

// EstimatorVote is one estimator's assessment of one option.
type EstimatorVote struct {
	Probability    float64        `json:"probability"`
	Confidence     float64        `json:"confidence"`
	Recommendation Recommendation `json:"recommendation"`
}

// Score weights the probability by the estimator's confidence.
func (v EstimatorVote) Score() float64 {
	return v.Probability * (v.Confidence / 100)
}

// VoteRecord is the ballot cast by one estimator.
type VoteRecord struct {
	Estimator  string          `json:"estimator"`
	Preferred  int             `json:"preferred_option"`
	Voted      bool            `json:"voted"`
	Score      float64         `json:"score"`
	Confidence float64         `json:"confidence"`
	Agrees     bool            `json:"agrees"`
	Estimates  []EstimatorVote `json:"estimates"`
}

// ConsensusTier classifies agreement among estimators.
type ConsensusTier string

// Consensus tiers
const (
	TierStrongConsensus  ConsensusTier = "strong_consensus"
	TierMajority         ConsensusTier = "majority"
	TierSplit            ConsensusTier = "split"
	TierDefault          ConsensusTier = "default"
	TierInsufficientData ConsensusTier = "insufficient_data"
)

// ActionTier is the staking action suggested by an aggregate confidence.
type ActionTier string

// Action tiers
const (
	ActionStrongBet   ActionTier = "strong_bet"
	ActionModerateBet ActionTier = "moderate_bet"
	ActionCautiousBet ActionTier = "cautious_bet"
	ActionAvoid       ActionTier = "avoid"
)

// ActionForConfidence maps an aggregate confidence to an action tier.
func ActionForConfidence(confidence float64) ActionTier {
	switch {
	case confidence >= 80:
		return ActionStrongBet
	case confidence >= 65:
		return ActionModerateBet
	case confidence >= 50:
		return ActionCautiousBet
	default:
		return ActionAvoid
	}
}

// Variant names the prediction flavour that produced a result.
type Variant string

// Prediction variants
const (
	VariantUnified    Variant = "unified"
	VariantSideMarket Variant = "side_market"
)

// ConsensusResult is the outcome of one prediction request.
type ConsensusResult struct {
	ID             string            `json:"id,omitempty"`
	Variant        Variant           `json:"variant"`
	Option         *CandidateOption  `json:"option,omitempty"`
	Options        []CandidateOption `json:"options"`
	Tier           ConsensusTier     `json:"tier"`
	VoteCount      int               `json:"vote_count"`
	Confidence     float64           `json:"confidence"`
	AggregateScore float64           `json:"aggregate_score"`
	Action         ActionTier        `json:"action"`
	Votes          []VoteRecord      `json:"votes"`
	Verdict        string            `json:"verdict"`
}

// HasOption reports whether a candidate was chosen.
func (r *ConsensusResult) HasOption() bool {
	return r.Option != nil
}

// CombinedPrediction bundles the unified and side-market verdicts for one match.
type CombinedPrediction struct {
	ID         string            `json:"id,omitempty"`
	Available  bool              `json:"available"`
	Unified    *ConsensusResult  `json:"unified,omitempty"`
	SideMarket *ConsensusResult  `json:"side_market,omitempty"`
	Markets    []SideMarketInput `json:"markets"`
	Score1     int               `json:"score1"`
	Score2     int               `json:"score2"`
	Minute     int               `json:"minute"`
	Verdict    string            `json:"verdict"`
}
