package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-oracle/internal/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		label    string
		expected models.MarketCategory
	}{
		{"Over 2.5 goals", models.CategoryTotals},
		{"Plus de 1.5 buts", models.CategoryTotals},
		{"Total goals under 3", models.CategoryTotals},
		{"Over 9.5 corners", models.CategoryCorners},
		{"Moins de 9 corners", models.CategoryCorners},
		{"Corners handicap", models.CategoryHandicaps},
		{"Handicap Arsenal -1", models.CategoryHandicaps},
		{"Total buts impair", models.CategoryTotals},
		{"Odd number of goals", models.CategoryOddEven},
		{"Résultat mi-temps", models.CategoryHalfTime},
		{"2nd half winner", models.CategoryHalfTime},
		{"Arsenal to score", models.CategoryTeamSpecific},
		{"O2 clean sheet", models.CategoryTeamSpecific},
		{"Both teams to score", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.label, "Arsenal", "Chelsea"))
		})
	}
}

func TestCategorizeIgnoresEmptyTeamNames(t *testing.T) {
	assert.Equal(t, models.CategoryOther, Categorize("Both teams to score", "", ""))
}

func TestTargetSide(t *testing.T) {
	tests := []struct {
		label    string
		expected models.Side
	}{
		{"ARSENAL to score", models.SideHome},
		{"Handicap chelsea +1", models.SideAway},
		{"o1 win to nil", models.SideHome},
		{"O2 over 1.5", models.SideAway},
		{"Over 2.5 goals", models.SideNone},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, TargetSide(tt.label, "Arsenal", "Chelsea"))
		})
	}
	assert.Equal(t, models.SideNone, TargetSide("Over 2.5", "", ""))
}

func TestParseSideMarkets(t *testing.T) {
	markets := ParseSideMarkets([]models.SideMarketInput{
		{Name: "Over 2.5", Multiplier: "2.2"},
		{Name: "", Multiplier: "1.9"},
		{Name: "Under 2.5", Multiplier: "1.0"},
		{Name: "Corners", Multiplier: "x"},
		{Name: "Odd", Value: "yes", Multiplier: "1.85"},
	})

	require.Len(t, markets, 2)
	assert.Equal(t, "Over 2.5", markets[0].Name)
	assert.Equal(t, 2.2, markets[0].Multiplier)
	assert.Equal(t, "yes", markets[1].Value)
	assert.Equal(t, "Odd yes", Label(markets[1]))
}

func TestDetectPeriod(t *testing.T) {
	tests := []struct {
		name                     string
		tn, tns, cps             string
		expected                 models.BetPeriod
	}{
		{name: "first half sub-tournament", tns: "FIFA 1st Half", expected: models.PeriodFirstHalf},
		{name: "first half status", cps: "1ère mi-temps", expected: models.PeriodFirstHalf},
		{name: "second half", tn: "Deuxième période", expected: models.PeriodSecondHalf},
		{name: "half time", tn: "Score à la mi-temps", expected: models.PeriodHalfTime},
		{name: "full match", tn: "Premier League", expected: models.PeriodFullMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPeriod(tt.tn, tt.tns, tt.cps))
		})
	}
}

func TestSyntheticSideMarkets(t *testing.T) {
	q := Quotes{"1": 1.5, "X": 4.0, "2": 6.0}
	markets := SyntheticSideMarkets(q, "Lyon", "Nantes")
	require.Len(t, markets, 10)

	byName := make(map[string]float64, len(markets))
	for _, m := range markets {
		byName[m.Name] = m.Multiplier
	}

	// p1 0.615, pX 0.231, p2 0.154: attack 0.615
	assert.Equal(t, 1.45, byName["Over 0.5 goals"])
	assert.Equal(t, 3.22, byName["Under 0.5 goals"])
	assert.Equal(t, 1.55, byName["Over 1.5 goals"])
	assert.Equal(t, 2.1, byName["Over 2.5 goals"])
	assert.Equal(t, 2.0, byName["Lyon to score"])
	assert.Equal(t, 2.6, byName["Nantes to score"])
	assert.Equal(t, 1.95, byName["Even number of goals"])
}

func TestSyntheticSideMarketsWithoutQuotes(t *testing.T) {
	markets := SyntheticSideMarkets(Quotes{}, "", "")
	require.Len(t, markets, 10)
	assert.Equal(t, "Team 1 to score", markets[8].Name)
	assert.Equal(t, "Team 2 to score", markets[9].Name)

	inputs := SyntheticInputs(Quotes{}, "A", "B")
	require.Len(t, inputs, 10)
	m, err := inputs[0].Multiplier.Multiplier()
	require.NoError(t, err)
	assert.Equal(t, markets[0].Multiplier, m)
}
