package strategy

import (
	"math"
	"strings"
)

// Confidence levels reported by the multi-factor score.
const (
	LevelVeryHigh = "very_high"
	LevelHigh     = "high"
	LevelModerate = "moderate"
	LevelLow      = "low"
)

// Recommendations reported by the multi-factor score.
const (
	MultiFactorStrongBet      = "strong_bet"
	MultiFactorRecommendedBet = "recommended_bet"
	MultiFactorCautiousBet    = "cautious_bet"
	MultiFactorAvoid          = "avoid"
)

var (
	topTeams    = []string{"real madrid", "barcelona", "psg", "manchester city", "liverpool", "bayern", "juventus"}
	topLeagues  = []string{"premier league", "la liga", "serie a", "bundesliga", "ligue 1", "champions league"}
	majorLeague = []string{"premier", "la liga", "serie a", "bundesliga"}
)

// MultiFactorResult blends market, live, reputation and condition signals.
type MultiFactorResult struct {
	Score           float64 `json:"score"`
	OddsScore       float64 `json:"odds_score"`
	LiveScore       float64 `json:"live_score"`
	TeamScore       float64 `json:"team_score"`
	ConditionsScore float64 `json:"conditions_score"`
	Level           string  `json:"level"`
	Recommendation  string  `json:"recommendation"`
}

// MultiFactorScore weights the strongest market probability (40%), the live
// match state (30%), team reputation (20%) and match conditions (10%).
func MultiFactorScore(ctx Context) MultiFactorResult {
	oddsScore := 50.0
	if len(ctx.Probabilities) > 0 {
		oddsScore = 0
		for _, p := range ctx.Probabilities {
			oddsScore = math.Max(oddsScore, p)
		}
	}
	live := LiveContextScore(ctx.Score1, ctx.Score2, ctx.Minute)
	teams := TeamReputationScore(ctx.Team1, ctx.Team2, ctx.League)
	conditions := ConditionsScore(ctx.League, ctx.Minute)

	score := oddsScore*0.40 + live*0.30 + teams*0.20 + conditions*0.10
	r := MultiFactorResult{
		Score:           math.Round(score*10) / 10,
		OddsScore:       oddsScore,
		LiveScore:       live,
		TeamScore:       teams,
		ConditionsScore: conditions,
	}
	switch {
	case score >= 75:
		r.Level, r.Recommendation = LevelVeryHigh, MultiFactorStrongBet
	case score >= 60:
		r.Level, r.Recommendation = LevelHigh, MultiFactorRecommendedBet
	case score >= 45:
		r.Level, r.Recommendation = LevelModerate, MultiFactorCautiousBet
	default:
		r.Level, r.Recommendation = LevelLow, MultiFactorAvoid
	}
	return r
}

// LiveContextScore rates how lively the match is given score and minute.
func LiveContextScore(score1, score2, minute int) float64 {
	total := score1 + score2
	switch {
	case minute == 0:
		return 50
	case minute < 30:
		switch {
		case total >= 2:
			return 75
		case total == 1:
			return 60
		default:
			return 45
		}
	case minute < 60:
		switch {
		case total >= 3:
			return 80
		case total >= 2:
			return 65
		default:
			return 40
		}
	default:
		diff := score1 - score2
		if diff >= -1 && diff <= 1 {
			return 70
		}
		return 35
	}
}

// TeamReputationScore rewards well-known teams and top leagues.
func TeamReputationScore(team1, team2, league string) float64 {
	score := 50.0
	if containsAnyOf(strings.ToLower(team1), topTeams) {
		score += 15
	}
	if containsAnyOf(strings.ToLower(team2), topTeams) {
		score += 15
	}
	if containsAnyOf(strings.ToLower(league), topLeagues) {
		score += 10
	}
	return math.Min(score, 90)
}

// ConditionsScore rates competition level and match phase.
func ConditionsScore(league string, minute int) float64 {
	score := 50.0
	l := strings.ToLower(league)
	switch {
	case strings.Contains(l, "champions league"):
		score += 20
	case containsAnyOf(l, majorLeague):
		score += 15
	}
	switch {
	case minute >= 70 && minute <= 85:
		score += 10
	case minute > 90:
		score += 15
	}
	return math.Min(score, 85)
}

func containsAnyOf(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
