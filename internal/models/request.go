package models

// MatchRequest carries everything known about a match at prediction time.
type MatchRequest struct {
	Team1         string            `json:"team1" yaml:"team1" validate:"required,max=128"`
	Team2         string            `json:"team2" yaml:"team2" validate:"required,max=128"`
	League        string            `json:"league" yaml:"league" validate:"max=128"`
	Odds          []OddsInput       `json:"odds" yaml:"odds" validate:"max=16"`
	SideMarkets   []SideMarketInput `json:"side_markets" yaml:"side_markets" validate:"max=256"`
	Score1        int               `json:"score1" yaml:"score1" validate:"gte=0"`
	Score2        int               `json:"score2" yaml:"score2" validate:"gte=0"`
	Minute        int               `json:"minute" yaml:"minute" validate:"gte=0,lte=150"`
	Tournament    string            `json:"tournament,omitempty" yaml:"tournament,omitempty"`
	SubTournament string            `json:"sub_tournament,omitempty" yaml:"sub_tournament,omitempty"`
	PeriodStatus  string            `json:"period_status,omitempty" yaml:"period_status,omitempty"`
}

// KellyRequest asks for a stake recommendation.
type KellyRequest struct {
	Bankroll        float64 `json:"bankroll" yaml:"bankroll" validate:"gte=0"`
	TrueProbability float64 `json:"true_probability" yaml:"true_probability" validate:"gte=0,lte=100"`
	Multiplier      float64 `json:"multiplier" yaml:"multiplier" validate:"gte=0"`
}

// FilterRequest asks the playability filter to judge a match. When Signal is
// set it is judged as given; otherwise the signal is derived from a unified
// prediction of Match. One of the two is required.
type FilterRequest struct {
	Match        *MatchRequest `json:"match,omitempty" yaml:"match,omitempty"`
	Signal       *FilterSignal `json:"signal,omitempty" yaml:"signal,omitempty"`
	HomeFlux     []float64     `json:"home_flux" yaml:"home_flux"`
	AwayFlux     []float64     `json:"away_flux" yaml:"away_flux"`
	ZoneNull     []float64     `json:"zone_null" yaml:"zone_null"`
	TotalMatches int           `json:"total_matches" yaml:"total_matches" validate:"gte=0"`
}

// FilterSignal is a consensus record produced elsewhere, such as an earlier
// prediction stored by the caller.
type FilterSignal struct {
	Action     ActionTier `json:"action" yaml:"action" validate:"required,oneof=strong_bet moderate_bet cautious_bet avoid"`
	Consensus  int        `json:"consensus" yaml:"consensus" validate:"gte=0,lte=16"`
	Confidence float64    `json:"confidence" yaml:"confidence" validate:"gte=0,lte=100"`
	PickSide   Side       `json:"pick_side" yaml:"pick_side" validate:"omitempty,oneof=home away"`
	WinHome    float64    `json:"win_home" yaml:"win_home" validate:"gte=0,lte=100"`
	WinAway    float64    `json:"win_away" yaml:"win_away" validate:"gte=0,lte=100"`
}

// EvolutionRequest asks for a seeded odds-evolution simulation.
type EvolutionRequest struct {
	SideMarkets []SideMarketInput `json:"side_markets" yaml:"side_markets" validate:"max=256"`
	Seed        int64             `json:"seed" yaml:"seed"`
}
