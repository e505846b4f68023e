package models

// OutcomeID identifies a match-result outcome.
type OutcomeID string

// Match-result outcomes
const (
	OutcomeHome OutcomeID = "1"
	OutcomeDraw OutcomeID = "X"
	OutcomeAway OutcomeID = "2"
)

// IsMatchResult reports whether the id names one of the three 1X2 outcomes.
func (o OutcomeID) IsMatchResult() bool {
	switch o {
	case OutcomeHome, OutcomeDraw, OutcomeAway:
		return true
	default:
		return false
	}
}

// OddsInput is one raw 1X2 quote.
type OddsInput struct {
	Type       OutcomeID `json:"type" yaml:"type"`
	Multiplier Price     `json:"multiplier" yaml:"multiplier"`
}

// SideMarketInput is one raw side-market quote (totals, handicaps, corners...).
type SideMarketInput struct {
	Name       string `json:"name" yaml:"name"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Multiplier Price  `json:"multiplier" yaml:"multiplier"`
}

// SideMarket is a validated side-market quote.
type SideMarket struct {
	Name       string  `json:"name"`
	Value      string  `json:"value,omitempty"`
	Multiplier float64 `json:"multiplier"`
}

// Side names one of the two competitors.
type Side string

// Competitor sides
const (
	SideNone Side = ""
	SideHome Side = "home"
	SideAway Side = "away"
)

// MarketCategory groups side markets for specialised evaluation.
type MarketCategory string

// Side-market categories, in evaluation order.
const (
	CategoryTotals       MarketCategory = "totals"
	CategoryHandicaps    MarketCategory = "handicaps"
	CategoryCorners      MarketCategory = "corners"
	CategoryOddEven      MarketCategory = "odd_even"
	CategoryHalfTime     MarketCategory = "half_time"
	CategoryTeamSpecific MarketCategory = "team_specific"
	CategoryOther        MarketCategory = "other"
)

// CategoryOrder is the order in which categorized markets are evaluated.
var CategoryOrder = []MarketCategory{
	CategoryTotals,
	CategoryHandicaps,
	CategoryCorners,
	CategoryOddEven,
	CategoryHalfTime,
	CategoryTeamSpecific,
	CategoryOther,
}

// BetPeriod is the part of the match a market settles on.
type BetPeriod string

// Bet periods
const (
	PeriodFullMatch  BetPeriod = "full_match"
	PeriodFirstHalf  BetPeriod = "first_half"
	PeriodSecondHalf BetPeriod = "second_half"
	PeriodHalfTime   BetPeriod = "half_time"
)
