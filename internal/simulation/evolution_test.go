package simulation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/match-oracle/internal/models"
)

func markets(n int) []models.SideMarketInput {
	out := make([]models.SideMarketInput, n)
	for i := range out {
		out[i] = models.SideMarketInput{
			Name:       fmt.Sprintf("Over %d.5 goals", i),
			Multiplier: models.NewPrice(1.5 + float64(i)*0.5),
		}
	}
	return out
}

func TestSimulateEvolutionIsSeeded(t *testing.T) {
	a := SimulateEvolution(markets(3), NewRand(42))
	b := SimulateEvolution(markets(3), NewRand(42))
	assert.Equal(t, a, b)
}

func TestSimulateEvolutionBounds(t *testing.T) {
	out := SimulateEvolution(markets(8), NewRand(7))
	require.Len(t, out, MaxMarkets)

	for _, e := range out {
		assert.GreaterOrEqual(t, e.Variation, -15.0)
		assert.LessOrEqual(t, e.Variation, 15.0)
		assert.InDelta(t, e.Current, e.Previous, e.Current*maxSwing+0.01)
		switch e.Trend {
		case TrendUp:
			assert.GreaterOrEqual(t, e.Variation, 0.0)
		case TrendDown:
			assert.LessOrEqual(t, e.Variation, 0.0)
		}
	}
}

func TestSimulateEvolutionSkipsUnusable(t *testing.T) {
	in := []models.SideMarketInput{
		{Name: "", Multiplier: "2.0"},
		{Name: "Odd", Multiplier: "x"},
		{Name: "Even", Multiplier: "1.9"},
	}
	out := SimulateEvolution(in, NewRand(1))
	require.Len(t, out, 1)
	assert.Equal(t, "Even", out[0].Market)
	assert.Empty(t, SimulateEvolution(nil, NewRand(1)))
}
