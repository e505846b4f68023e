// Package filter decides whether a consensus pick is strong enough to play,
// combining its vote statistics with in-play pressure curves.
package filter

import (
	"fmt"
	"math"

	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/odds"
)

// Status is the filter outcome.
type Status string

// Filter statuses
const (
	StatusLocked Status = "locked"
	StatusPlay   Status = "play"
	StatusNoPlay Status = "no_play"
)

// Recommendation names the market family the filter suggests.
type Recommendation string

// Filter recommendations
const (
	RecommendTotals             Recommendation = "totals"
	RecommendMatchResult        Recommendation = "match_result"
	RecommendHandicap           Recommendation = "handicap"
	RecommendNoClearOption      Recommendation = "no_clear_option"
	RecommendCollectMoreMatches Recommendation = "collect_more_matches"
)

const (
	minConsensus       = 3
	minConfidence      = 60.0
	closeCurveMeanDiff = 6.0
	lateSurgeDelta     = 10.0
	lateSurgeMinLength = 8
	zoneNullMaxAverage = 25.0
	minFluxShare       = 0.7
)

// Config tunes the filter.
type Config struct {
	MinMatches int     `json:"min_matches"`
	MinScore   float64 `json:"min_score"`
	TotalBots  int     `json:"total_bots"`
}

// DefaultConfig returns the standard filter settings.
func DefaultConfig() Config {
	return Config{MinMatches: 50, MinScore: 75, TotalBots: 4}
}

// Meta describes the sample the filter has been calibrated on.
type Meta struct {
	TotalMatches int `json:"total_matches"`
}

// Signal is the evidence the filter judges. Flux series are per-interval
// pressure readings for each side; ZoneNull tracks the draw pressure.
type Signal struct {
	Action     models.ActionTier `json:"action"`
	Consensus  int               `json:"consensus"`
	Confidence float64           `json:"confidence"`
	PickSide   models.Side       `json:"pick_side"`
	WinHome    float64           `json:"win_home"`
	WinAway    float64           `json:"win_away"`
	HomeFlux   []float64         `json:"home_flux"`
	AwayFlux   []float64         `json:"away_flux"`
	ZoneNull   []float64         `json:"zone_null"`
}

// Breakdown holds the rounded points behind a score.
type Breakdown struct {
	ConfidencePoints int      `json:"confidence_points"`
	ConsensusPoints  int      `json:"consensus_points"`
	WinPoints        int      `json:"win_points"`
	FluxPoints       int      `json:"flux_points"`
	FluxShare        float64  `json:"flux_share"`
	ZoneNullAverage  *float64 `json:"zone_null_average"`
}

// Result is the filter verdict.
type Result struct {
	Status         Status         `json:"status"`
	Playable       bool           `json:"playable"`
	Score          int            `json:"score"`
	Breakdown      *Breakdown     `json:"breakdown,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
	Reasons        []string       `json:"reasons"`
	Warnings       []string       `json:"warnings"`
}

// SignalFromConsensus builds a signal from a consensus result and the
// normalized 1X2 probabilities.
func SignalFromConsensus(r models.ConsensusResult, probs map[models.OutcomeID]float64, homeFlux, awayFlux, zoneNull []float64) Signal {
	s := Signal{
		Action:     r.Action,
		Consensus:  r.VoteCount,
		Confidence: r.Confidence,
		PickSide:   models.SideHome,
		WinHome:    odds.ProbabilityOf(probs, models.OutcomeHome),
		WinAway:    odds.ProbabilityOf(probs, models.OutcomeAway),
		HomeFlux:   homeFlux,
		AwayFlux:   awayFlux,
		ZoneNull:   zoneNull,
	}
	if r.Option != nil && r.Option.TargetSide == models.SideAway {
		s.PickSide = models.SideAway
	}
	return s
}

// SignalFromRecord builds a signal from a caller-supplied consensus record.
// An empty pick side means home.
func SignalFromRecord(r models.FilterSignal, homeFlux, awayFlux, zoneNull []float64) Signal {
	side := models.SideHome
	if r.PickSide == models.SideAway {
		side = models.SideAway
	}
	return Signal{
		Action:     r.Action,
		Consensus:  r.Consensus,
		Confidence: r.Confidence,
		PickSide:   side,
		WinHome:    r.WinHome,
		WinAway:    r.WinAway,
		HomeFlux:   homeFlux,
		AwayFlux:   awayFlux,
		ZoneNull:   zoneNull,
	}
}

// Evaluate runs every check and scores the signal. A signal is playable only
// when the base checks pass, no check raised a reason and the score reaches
// cfg.MinScore. Below cfg.MinMatches calibration matches the filter is locked.
func Evaluate(s Signal, meta Meta, cfg Config) Result {
	if meta.TotalMatches < cfg.MinMatches {
		return Result{
			Status:         StatusLocked,
			Reasons:        []string{fmt.Sprintf("filter locked: %d/%d matches", meta.TotalMatches, cfg.MinMatches)},
			Warnings:       []string{},
			Recommendation: RecommendCollectMoreMatches,
		}
	}

	reasons := []string{}
	warnings := []string{}

	if s.Action != models.ActionCautiousBet {
		reasons = append(reasons, "action is not cautious_bet")
	}
	if s.Consensus < minConsensus {
		reasons = append(reasons, fmt.Sprintf("consensus below %d/%d", minConsensus, cfg.TotalBots))
	}
	if s.Confidence < minConfidence {
		reasons = append(reasons, "confidence below 60%")
	}

	dominant, other := s.WinHome, s.WinAway
	chosen, opponent := s.HomeFlux, s.AwayFlux
	if s.PickSide == models.SideAway {
		dominant, other = s.WinAway, s.WinHome
		chosen, opponent = s.AwayFlux, s.HomeFlux
	}

	winPts := winDominancePoints(dominant, other)
	if winPts == 0 {
		reasons = append(reasons, "win probability not dominant (>=55 with other <=35 required)")
	}

	if curvesTooClose(s.HomeFlux, s.AwayFlux) {
		reasons = append(reasons, "flux curves too close")
	}

	share := dominanceShare(chosen, opponent)
	zoneAvg, hasZone := average(s.ZoneNull)
	zoneNullOK := hasZone && zoneAvg <= zoneNullMaxAverage
	if share < minFluxShare {
		reasons = append(reasons, "flux dominance below 70%")
	}
	if !zoneNullOK {
		warnings = append(warnings, "draw zone not low")
	}
	if surgingLate(opponent) {
		reasons = append(reasons, "late opponent surge detected")
	}

	confidencePts := scale(s.Confidence, 25, 60, 80)
	consensusPts := consensusPoints(s.Consensus, cfg.TotalBots)
	fluxPts := fluxPoints(share, zoneNullOK)
	score := int(math.Round(confidencePts + consensusPts + winPts + fluxPts))

	basePass := s.Action == models.ActionCautiousBet &&
		s.Consensus >= minConsensus &&
		s.Confidence >= minConfidence
	playable := basePass && float64(score) >= cfg.MinScore && len(reasons) == 0

	breakdown := &Breakdown{
		ConfidencePoints: int(math.Round(confidencePts)),
		ConsensusPoints:  int(math.Round(consensusPts)),
		WinPoints:        int(math.Round(winPts)),
		FluxPoints:       int(math.Round(fluxPts)),
		FluxShare:        math.Round(share*1000) / 1000,
	}
	if hasZone {
		breakdown.ZoneNullAverage = &zoneAvg
	}

	status := StatusNoPlay
	if playable {
		status = StatusPlay
	}
	return Result{
		Status:         status,
		Playable:       playable,
		Score:          score,
		Breakdown:      breakdown,
		Recommendation: recommend(dominant, s.Confidence, s.Consensus, share, zoneNullOK),
		Reasons:        reasons,
		Warnings:       warnings,
	}
}

func recommend(dominant, confidence float64, consensus int, share float64, zoneNullOK bool) Recommendation {
	if consensus < minConsensus || confidence < minConfidence {
		return RecommendNoClearOption
	}
	switch {
	case zoneNullOK && share >= 0.72:
		return RecommendTotals
	case dominant >= 60 && share >= 0.75:
		return RecommendMatchResult
	case dominant >= 68 && share >= 0.82 && confidence >= 62:
		return RecommendHandicap
	}
	return RecommendNoClearOption
}

func scale(v, maxPoints, lo, hi float64) float64 {
	x := (v - lo) / (hi - lo)
	return math.Max(0, math.Min(1, x)) * maxPoints
}

func consensusPoints(consensus, totalBots int) float64 {
	if totalBots <= 0 {
		return 0
	}
	ratio := math.Max(0, math.Min(1, float64(consensus)/float64(totalBots)))
	return ratio * 25
}

func winDominancePoints(dominant, other float64) float64 {
	if dominant < 55 || other > 35 {
		return 0
	}
	return scale(dominant, 30, 55, 75)
}

func fluxPoints(share float64, zoneNullOK bool) float64 {
	if share < minFluxShare {
		return 0
	}
	pts := scale(share*100, 20, 70, 90)
	if !zoneNullOK {
		pts *= 0.6
	}
	return pts
}

// curvesTooClose treats missing or mismatched series as too close.
func curvesTooClose(home, away []float64) bool {
	if len(home) == 0 || len(home) != len(away) {
		return true
	}
	sum := 0.0
	for i := range home {
		sum += math.Abs(home[i] - away[i])
	}
	return sum/float64(len(home)) < closeCurveMeanDiff
}

func dominanceShare(chosen, other []float64) float64 {
	if len(chosen) == 0 || len(chosen) != len(other) {
		return 0
	}
	above := 0
	for i := range chosen {
		if chosen[i] > other[i] {
			above++
		}
	}
	return float64(above) / float64(len(chosen))
}

// surgingLate compares the start of the last quarter with the final reading.
func surgingLate(flux []float64) bool {
	n := len(flux)
	if n < lateSurgeMinLength {
		return false
	}
	return flux[n-1]-flux[n*3/4] >= lateSurgeDelta
}

func average(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}
