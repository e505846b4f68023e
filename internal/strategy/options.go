package strategy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// MaxCandidates is the most options any generator returns.
const MaxCandidates = 2

// Placeholder used when a match has no usable 1X2 quote.
const (
	placeholderMultiplier = 2.0
	placeholderConfidence = 50
)

// MatchOptions builds the unified-prediction candidates: the 1X2 favourite
// and, when one is priced inside the match band, the shortest side market.
func MatchOptions(ctx Context, markets []models.SideMarket, bands Bands) []models.CandidateOption {
	options := make([]models.CandidateOption, 0, MaxCandidates)
	options = append(options, favoriteOption(ctx))

	if side, ok := shortestSideMarket(markets, bands.MatchMin, bands.MatchMax); ok {
		target := ctx.Teams.Side(strings.ToLower(side.Name))
		market := side
		options = append(options, models.CandidateOption{
			Kind:           models.KindSideMarket,
			Label:          side.Name,
			Multiplier:     side.Multiplier,
			TargetSide:     target,
			TargetTeam:     ctx.TeamName(target),
			Category:       ctx.Teams.Categorize(side.Name),
			Market:         &market,
			BaseConfidence: math.Min(90, math.Floor(100/side.Multiplier)),
		})
	}
	return options
}

func favoriteOption(ctx Context) models.CandidateOption {
	id, m, ok := odds.Favorite(ctx.Quotes)
	if !ok {
		return models.CandidateOption{
			Kind:           models.KindMatchResult,
			Label:          winLabel(ctx.Team1, "home"),
			Multiplier:     placeholderMultiplier,
			TargetSide:     models.SideHome,
			TargetTeam:     ctx.Team1,
			Outcome:        models.OutcomeHome,
			BaseConfidence: placeholderConfidence,
		}
	}

	opt := models.CandidateOption{
		Kind:           models.KindMatchResult,
		Multiplier:     m,
		Outcome:        id,
		BaseConfidence: math.Min(95, math.Floor(100/m)),
	}
	switch id {
	case models.OutcomeHome:
		opt.Label = winLabel(ctx.Team1, "home")
		opt.TargetSide = models.SideHome
		opt.TargetTeam = ctx.Team1
	case models.OutcomeAway:
		opt.Label = winLabel(ctx.Team2, "away")
		opt.TargetSide = models.SideAway
		opt.TargetTeam = ctx.Team2
	default:
		opt.Label = "Draw"
	}
	return opt
}

func winLabel(team, fallback string) string {
	if strings.TrimSpace(team) == "" {
		return fallback + " win"
	}
	return fmt.Sprintf("%s win", team)
}

// shortestSideMarket picks the lowest multiplier inside [lo, hi]; the first
// seen wins ties.
func shortestSideMarket(markets []models.SideMarket, lo, hi float64) (models.SideMarket, bool) {
	var (
		best  models.SideMarket
		found bool
	)
	for _, m := range markets {
		if !inBand(m.Multiplier, lo, hi) {
			continue
		}
		if !found || m.Multiplier < best.Multiplier {
			best, found = m, true
		}
	}
	return best, found
}

// SideMarketOptions categorizes the markets, scores those priced inside the
// side band and keeps the best MaxCandidates. Equal scores keep category
// order, then input order.
func SideMarketOptions(ctx Context, markets []models.SideMarket, bands Bands) []models.CandidateOption {
	grouped := make(map[models.MarketCategory][]models.SideMarket, len(models.CategoryOrder))
	for _, m := range markets {
		cat := ctx.Teams.Categorize(m.Name)
		grouped[cat] = append(grouped[cat], m)
	}

	options := make([]models.CandidateOption, 0, len(markets))
	for _, cat := range models.CategoryOrder {
		for _, m := range grouped[cat] {
			if !inBand(m.Multiplier, bands.SideMin, bands.SideMax) {
				continue
			}
			score, confidence := Evaluate(ctx, m, cat)
			target := ctx.Teams.Side(strings.ToLower(m.Name))
			market := m
			options = append(options, models.CandidateOption{
				Kind:           models.KindSideMarket,
				Label:          m.Name,
				Multiplier:     m.Multiplier,
				TargetSide:     target,
				TargetTeam:     ctx.TeamName(target),
				Category:       cat,
				Market:         &market,
				BaseConfidence: confidence,
				Evaluation:     score,
			})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Evaluation > options[j].Evaluation
	})
	if len(options) > MaxCandidates {
		options = options[:MaxCandidates]
	}
	return options
}

// Evaluate scores a side market as its implied probability plus a
// category-specific bonus. The score is clamped to [0,100].
func Evaluate(ctx Context, m models.SideMarket, cat models.MarketCategory) (score, confidence float64) {
	label := strings.ToLower(m.Name)
	implied := math.Min(100, impliedProbability(m.Multiplier))
	bonus := categoryBonus(ctx, label, cat)

	score = math.Min(100, math.Max(0, implied+bonus))
	confidence = math.Min(90, implied*0.8+bonus*0.5)
	return score, confidence
}

func categoryBonus(ctx Context, label string, cat models.MarketCategory) float64 {
	home, away := ctx.HomeProfile, ctx.AwayProfile
	switch cat {
	case models.CategoryTotals:
		if odds.IsOver(label) {
			return (home.Late() + away.Late()) / 2 * 0.3
		}
		return (home.Early() + away.Early()) / 4 * 0.3
	case models.CategoryHandicaps:
		if math.Abs(home.Sum()-away.Sum()) > 20 {
			return 15
		}
		return 5
	case models.CategoryCorners:
		return math.Min(20, (home.Late()+away.Late())*0.2)
	case models.CategoryOddEven:
		if strings.Contains(label, "impair") || strings.Contains(label, "odd") {
			return 8
		}
		return 5
	case models.CategoryTeamSpecific:
		switch {
		case ctx.Teams.MentionsHome(label):
			if home.Sum() > away.Sum() {
				return 15
			}
			return -10
		case ctx.Teams.MentionsAway(label):
			if away.Sum() > home.Sum() {
				return 15
			}
			return -10
		}
	}
	return 0
}
