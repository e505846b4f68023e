package strategy

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// SideMarketEstimators returns the category-aware estimator bank used for
// side-market predictions, in voting order.
func SideMarketEstimators() []Estimator {
	return []Estimator{
		TotalsEstimator{},
		HandicapEstimator{},
		CornersEstimator{},
		GenericFormEstimator{},
	}
}

var thresholdPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// DefaultTotalsThreshold is assumed when a totals label carries no number.
const DefaultTotalsThreshold = 2.5

// TotalsThreshold reads the goal line out of a market label.
func TotalsThreshold(label string) float64 {
	m := thresholdPattern.FindStringSubmatch(label)
	if m == nil {
		return DefaultTotalsThreshold
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DefaultTotalsThreshold
	}
	return v
}

// TotalsEstimator judges over/under lines against the live score.
type TotalsEstimator struct{}

// Name implements Estimator.
func (TotalsEstimator) Name() string { return "totals" }

// Estimate implements Estimator.
func (TotalsEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	label := strings.ToLower(option.Label)
	line := TotalsThreshold(label)
	goals := float64(ctx.Goals())
	late := ctx.Minute > 80

	p := 50.0
	switch {
	case odds.IsOver(label):
		switch {
		case goals >= line:
			p = 95
		case late && line-goals > 1:
			p = 15
		default:
			p = 60
		}
	case odds.IsUnder(label):
		switch {
		case goals >= line:
			p = 5
		case late && goals < line-1:
			p = 90
		default:
			p = 40
		}
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.9, 95),
		Recommendation: recommend(p, 60, 40),
	}
}

// HandicapEstimator favours the stronger side of a handicap.
type HandicapEstimator struct{}

// Name implements Estimator.
func (HandicapEstimator) Name() string { return "handicap" }

// Estimate implements Estimator.
func (HandicapEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	label := strings.ToLower(option.Label)
	diff := ctx.HomeProfile.Sum() - ctx.AwayProfile.Sum()

	p := 50.0
	switch {
	case ctx.Teams.MentionsHome(label):
		p = edge(diff)
	case ctx.Teams.MentionsAway(label):
		p = edge(-diff)
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.8, 80),
		Recommendation: recommend(p, 60, 40),
	}
}

func edge(diff float64) float64 {
	switch {
	case diff > 10:
		return 75
	case diff > 0:
		return 65
	default:
		return 35
	}
}

// CornersEstimator expects more corners when both sides attack late.
type CornersEstimator struct{}

// Name implements Estimator.
func (CornersEstimator) Name() string { return "corners" }

// ExpectedCorners is the heuristic corner count for the match.
func ExpectedCorners(ctx Context) float64 {
	expected := 8.0
	if ctx.HomeProfile.Late() > 50 {
		expected += 2
	}
	if ctx.AwayProfile.Late() > 50 {
		expected += 2
	}
	return expected
}

// Estimate implements Estimator.
func (CornersEstimator) Estimate(_ models.CandidateOption, ctx Context) models.EstimatorVote {
	p := 50.0
	if ExpectedCorners(ctx) > 9 {
		p = 70
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     70,
		Recommendation: recommend(p, 60, 40),
	}
}

// GenericFormEstimator applies flat category priors.
type GenericFormEstimator struct{}

// Name implements Estimator.
func (GenericFormEstimator) Name() string { return "form" }

// Estimate implements Estimator.
func (GenericFormEstimator) Estimate(option models.CandidateOption, ctx Context) models.EstimatorVote {
	p := 55.0
	if option.Category == models.CategoryTeamSpecific {
		p = 40
		if ctx.HomeProfile.Sum() > ctx.AwayProfile.Sum() {
			p = 60
		}
	}
	return models.EstimatorVote{
		Probability:    p,
		Confidence:     dampen(p, 0.7, 70),
		Recommendation: recommend(p, 50, 30),
	}
}
