package consensus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/match-oracle/internal/models"
)

var tierLabels = map[models.ConsensusTier]string{
	models.TierStrongConsensus:  "STRONG CONSENSUS",
	models.TierMajority:         "MAJORITY",
	models.TierSplit:            "SPLIT",
	models.TierDefault:          "DEFAULT",
	models.TierInsufficientData: "INSUFFICIENT DATA",
}

// TierLabel renders a tier for display.
func TierLabel(tier models.ConsensusTier) string {
	if l, ok := tierLabels[tier]; ok {
		return l
	}
	return strings.ToUpper(string(tier))
}

// Verdict renders a one-line summary of a consensus result.
func Verdict(r models.ConsensusResult) string {
	if r.Option == nil {
		return "NO CONSENSUS"
	}

	opt := r.Option
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", TierLabel(r.Tier), opt.Label)
	if opt.TargetTeam != "" {
		fmt.Fprintf(&b, " on %s", opt.TargetTeam)
	}
	fmt.Fprintf(&b, " | odds %s | confidence %.1f%% | action %s",
		formatMultiplier(opt.Multiplier), r.Confidence, r.Action)
	if r.Variant == models.VariantSideMarket && opt.Category != "" {
		fmt.Fprintf(&b, " | category %s", opt.Category)
	}

	flags := make([]string, len(r.Votes))
	for i, v := range r.Votes {
		mark := "disagree"
		if v.Agrees {
			mark = "agree"
		}
		flags[i] = v.Estimator + ": " + mark
	}
	fmt.Fprintf(&b, " | votes [%s]", strings.Join(flags, ", "))
	return b.String()
}

func formatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
