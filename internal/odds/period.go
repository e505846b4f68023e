package odds

import (
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
)

// DetectPeriod works out which part of the match a feed's markets settle on
// from the tournament name, sub-tournament name and period status.
func DetectPeriod(tournament, subTournament, periodStatus string) models.BetPeriod {
	tn := strings.ToLower(tournament)
	tns := strings.ToLower(subTournament)
	cps := strings.ToLower(periodStatus)

	switch {
	case strings.Contains(tns, "1st half") || strings.Contains(tn, "première") || strings.Contains(cps, "1ère"):
		return models.PeriodFirstHalf
	case strings.Contains(tns, "2nd half") || strings.Contains(tn, "deuxième") || strings.Contains(cps, "2ème"):
		return models.PeriodSecondHalf
	case strings.Contains(tns, "half") || strings.Contains(tn, "mi-temps"):
		return models.PeriodHalfTime
	default:
		return models.PeriodFullMatch
	}
}
