package odds

import (
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
)

// ParseSideMarkets keeps side markets with a name and a usable multiplier,
// preserving input order.
func ParseSideMarkets(in []models.SideMarketInput) []models.SideMarket {
	markets := make([]models.SideMarket, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		m, err := s.Multiplier.Multiplier()
		if err != nil {
			continue
		}
		markets = append(markets, models.SideMarket{
			Name:       s.Name,
			Value:      s.Value,
			Multiplier: m,
		})
	}
	return markets
}

// Teams holds the lowercased competitor names used for label matching.
// Empty names never match.
type Teams struct {
	home string
	away string
}

// NewTeams prepares competitor names for matching.
func NewTeams(team1, team2 string) Teams {
	return Teams{
		home: strings.ToLower(strings.TrimSpace(team1)),
		away: strings.ToLower(strings.TrimSpace(team2)),
	}
}

// MentionsHome reports whether a lowercased label names the first competitor.
func (t Teams) MentionsHome(label string) bool {
	return (t.home != "" && strings.Contains(label, t.home)) || strings.Contains(label, "o1")
}

// MentionsAway reports whether a lowercased label names the second competitor.
func (t Teams) MentionsAway(label string) bool {
	return (t.away != "" && strings.Contains(label, t.away)) || strings.Contains(label, "o2")
}

// TargetSide finds the competitor a market label refers to. The first
// competitor is checked first.
func TargetSide(label, team1, team2 string) models.Side {
	return NewTeams(team1, team2).Side(strings.ToLower(label))
}

// Side resolves the target side of a lowercased label.
func (t Teams) Side(label string) models.Side {
	switch {
	case t.MentionsHome(label):
		return models.SideHome
	case t.MentionsAway(label):
		return models.SideAway
	default:
		return models.SideNone
	}
}

type categoryRule struct {
	category models.MarketCategory
	matches  func(label string, teams Teams) bool
}

var (
	totalKeywords    = []string{"plus de", "moins de", "total", "over", "under"}
	oddEvenKeywords  = []string{"pair", "impair", "even", "odd"}
	halfTimeKeywords = []string{"mi-temps", "half", "1ère", "2ème"}
)

// categoryRules is evaluated top to bottom; the first match wins.
var categoryRules = []categoryRule{
	{models.CategoryCorners, func(l string, _ Teams) bool {
		return containsAny(l, totalKeywords) && strings.Contains(l, "corner")
	}},
	{models.CategoryTotals, func(l string, _ Teams) bool { return containsAny(l, totalKeywords) }},
	{models.CategoryHandicaps, func(l string, _ Teams) bool { return strings.Contains(l, "handicap") }},
	{models.CategoryOddEven, func(l string, _ Teams) bool { return containsAny(l, oddEvenKeywords) }},
	{models.CategoryHalfTime, func(l string, _ Teams) bool { return containsAny(l, halfTimeKeywords) }},
	{models.CategoryTeamSpecific, func(l string, t Teams) bool { return t.Side(l) != models.SideNone }},
}

// Categorize assigns a market label to a category.
func Categorize(label, team1, team2 string) models.MarketCategory {
	return NewTeams(team1, team2).Categorize(label)
}

// Categorize assigns a market label to a category.
func (t Teams) Categorize(label string) models.MarketCategory {
	l := strings.ToLower(label)
	for _, rule := range categoryRules {
		if rule.matches(l, t) {
			return rule.category
		}
	}
	return models.CategoryOther
}

// IsOver reports whether a lowercased label is an over-type totals market.
func IsOver(label string) bool {
	return strings.Contains(label, "plus de") || strings.Contains(label, "over")
}

// IsUnder reports whether a lowercased label is an under-type totals market.
func IsUnder(label string) bool {
	return strings.Contains(label, "moins de") || strings.Contains(label, "under")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
