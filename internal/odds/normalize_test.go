package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-oracle/internal/models"
)

func quote(id models.OutcomeID, price string) models.OddsInput {
	return models.OddsInput{Type: id, Multiplier: models.Price(price)}
}

func sum(probs map[models.OutcomeID]float64) float64 {
	total := 0.0
	for _, id := range Outcomes {
		total += probs[id]
	}
	return total
}

func TestNormalizeOddsReferenceMatch(t *testing.T) {
	probs := NormalizeOdds([]models.OddsInput{
		quote(models.OutcomeHome, "1.80"),
		quote(models.OutcomeDraw, "3.50"),
		quote(models.OutcomeAway, "4.20"),
	})

	require.Len(t, probs, 3)
	assert.InDelta(t, 51.48, probs[models.OutcomeHome], 0.01)
	assert.InDelta(t, 26.47, probs[models.OutcomeDraw], 0.01)
	assert.InDelta(t, 22.06, probs[models.OutcomeAway], 0.01)
	assert.InDelta(t, 100, sum(probs), 1e-6)
}

func TestNormalizeOddsSumsToHundred(t *testing.T) {
	tests := []struct {
		name string
		in   []models.OddsInput
	}{
		{
			name: "heavy favourite",
			in: []models.OddsInput{
				quote(models.OutcomeHome, "1.15"),
				quote(models.OutcomeDraw, "7.5"),
				quote(models.OutcomeAway, "15"),
			},
		},
		{
			name: "even match",
			in: []models.OddsInput{
				quote(models.OutcomeHome, "2.7"),
				quote(models.OutcomeDraw, "3.1"),
				quote(models.OutcomeAway, "2.75"),
			},
		},
		{
			name: "two outcomes only",
			in: []models.OddsInput{
				quote(models.OutcomeHome, "1.5"),
				quote(models.OutcomeAway, "2.6"),
			},
		},
		{
			name: "one outcome only",
			in:   []models.OddsInput{quote(models.OutcomeDraw, "3.3")},
		},
		{
			name: "quote beyond float range",
			in: []models.OddsInput{
				quote(models.OutcomeHome, "1e400"),
				quote(models.OutcomeDraw, "3.5"),
				quote(models.OutcomeAway, "4.2"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probs := NormalizeOdds(tt.in)
			assert.InDelta(t, 100, sum(probs), 1e-6)
			for _, p := range probs {
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 100.0)
			}
		})
	}
}

func TestNormalizeOddsFallback(t *testing.T) {
	expected := map[models.OutcomeID]float64{
		models.OutcomeHome: 33.33,
		models.OutcomeDraw: 33.33,
		models.OutcomeAway: 33.33,
	}

	tests := []struct {
		name string
		in   []models.OddsInput
	}{
		{name: "nil", in: nil},
		{name: "empty", in: []models.OddsInput{}},
		{
			name: "all malformed",
			in: []models.OddsInput{
				quote(models.OutcomeHome, "abc"),
				quote(models.OutcomeDraw, "0"),
				quote(models.OutcomeAway, "-3"),
			},
		},
		{
			name: "unknown ids",
			in: []models.OddsInput{
				quote("home", "1.8"),
				quote("12", "1.3"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, expected, NormalizeOdds(tt.in))
		})
	}
}

func TestParseQuotesSkipsMalformed(t *testing.T) {
	q := ParseQuotes([]models.OddsInput{
		quote(models.OutcomeHome, "2.1"),
		quote(models.OutcomeDraw, "1.0"),
		quote(models.OutcomeAway, ""),
		quote(models.OutcomeAway, "1e400"),
		quote(models.OutcomeHome, "1.9"),
	})

	require.Len(t, q, 1)
	assert.InDelta(t, 1.9, q[models.OutcomeHome], 1e-9)
}

func TestOverround(t *testing.T) {
	q := ParseQuotes([]models.OddsInput{
		quote(models.OutcomeHome, "1.80"),
		quote(models.OutcomeDraw, "3.50"),
		quote(models.OutcomeAway, "4.20"),
	})
	assert.InDelta(t, 107.94, Overround(q), 0.01)
}
