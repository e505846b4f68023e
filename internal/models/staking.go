package models

// ValueTier grades a positive-expected-value opportunity.
type ValueTier string

// Value tiers
const (
	ValueExcellent ValueTier = "excellent"
	ValueGood      ValueTier = "good"
	ValueFair      ValueTier = "fair"
)

// ValueBetEntry is a side market whose estimated true probability beats the price.
type ValueBetEntry struct {
	Market               SideMarket `json:"market"`
	Multiplier           float64    `json:"multiplier"`
	BookmakerProbability float64    `json:"bookmaker_probability"`
	TrueProbability      float64    `json:"true_probability"`
	Value                float64    `json:"value"`
	ValuePercent         float64    `json:"value_percent"`
	Tier                 ValueTier  `json:"tier"`
}

// StakeTier grades a Kelly stake recommendation.
type StakeTier string

// Stake tiers
const (
	StakeExcellent StakeTier = "excellent"
	StakeGood      StakeTier = "good"
	StakeCautious  StakeTier = "cautious"
	StakeDoNotBet  StakeTier = "do_not_bet"
	StakeError     StakeTier = "error"
)

// KellyRecommendation is a risk-capped stake suggestion.
type KellyRecommendation struct {
	Bankroll        float64   `json:"bankroll"`
	Fraction        float64   `json:"fraction"`
	Stake           float64   `json:"stake"`
	BankrollPercent float64   `json:"bankroll_percent"`
	Tier            StakeTier `json:"tier"`
	Reason          string    `json:"reason,omitempty"`
}
