package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleMAStreaming(t *testing.T) {
	ticks := ticksFromPrices(102, 105, 106, 108, 110)

	t.Run("basic functionality", func(t *testing.T) {
		ma := NewMA(3)
		assert.Equal(t, "SMA(3)", ma.Name())
		assert.Equal(t, 3, ma.Warmup())
		assert.False(t, ma.Ready())
		assert.Equal(t, 0.0, ma.Value())

		ma.Update(ticks[0])
		ma.Update(ticks[1])
		assert.False(t, ma.Ready())

		ma.Update(ticks[2])
		assert.True(t, ma.Ready())
		assert.InDelta(t, (102.0+105.0+106.0)/3.0, ma.Value(), 1e-9)

		ma.Update(ticks[3])
		assert.InDelta(t, (105.0+106.0+108.0)/3.0, ma.Value(), 1e-9)
	})

	t.Run("reset", func(t *testing.T) {
		ma := NewMA(2)
		ma.Update(ticks[0])
		ma.Update(ticks[1])
		assert.True(t, ma.Ready())

		ma.Reset()
		assert.False(t, ma.Ready())
		assert.Equal(t, 0.0, ma.Value())
	})

	t.Run("matches batch calculation", func(t *testing.T) {
		ma := NewMA(3)
		for _, tk := range ticks {
			ma.Update(tk)
		}
		batch, err := SMA([]float64{102, 105, 106, 108, 110}, 3)
		require.NoError(t, err)
		assert.InDelta(t, batch[len(batch)-1].Val, ma.Value(), 1e-9)
	})
}

func TestRelativeStrengthStreaming(t *testing.T) {
	prices := []float64{10, 11, 10, 11, 11, 12, 10, 13}
	ticks := ticksFromPrices(prices...)

	t.Run("basic functionality", func(t *testing.T) {
		rsi := NewRSI(2)
		assert.Equal(t, "RSI(2)", rsi.Name())
		assert.Equal(t, 3, rsi.Warmup())
		assert.False(t, rsi.Ready())
		assert.Equal(t, 0.0, rsi.Value())

		rsi.Update(ticks[0])
		rsi.Update(ticks[1])
		assert.False(t, rsi.Ready())

		rsi.Update(ticks[2])
		assert.True(t, rsi.Ready())
		assert.InDelta(t, 50.0, rsi.Value(), 1e-12)

		rsi.Update(ticks[3])
		assert.InDelta(t, 75.0, rsi.Value(), 1e-12)
	})

	t.Run("reset", func(t *testing.T) {
		rsi := NewRSI(2)
		for _, tk := range ticks {
			rsi.Update(tk)
		}
		assert.True(t, rsi.Ready())

		rsi.Reset()
		assert.False(t, rsi.Ready())
		assert.Equal(t, 0.0, rsi.Value())
	})

	t.Run("matches batch at every defined index", func(t *testing.T) {
		rsi := NewRSI(2)
		batch, err := RSI(prices, 2)
		require.NoError(t, err)

		for i, tk := range ticks {
			rsi.Update(tk)
			assert.Equal(t, batch[i].Valid, rsi.Ready(), "readiness mismatch at %d", i)
			if batch[i].Valid {
				assert.InDelta(t, batch[i].Val, rsi.Value(), 1e-9, "value mismatch at %d", i)
			}
		}
	})
}

func TestIndicatorInterface(t *testing.T) {
	var _ Indicator = &SimpleMA{}
	var _ Indicator = &RelativeStrength{}

	ticks := ticksFromPrices(102, 105, 106, 108, 110, 111, 113)

	for _, ind := range []Indicator{NewMA(3), NewRSI(3)} {
		assert.False(t, ind.Ready(), "%s should not be ready initially", ind.Name())

		for _, tk := range ticks {
			ind.Update(tk)
		}
		assert.True(t, ind.Ready(), "%s should be ready after warmup", ind.Name())

		ind.Reset()
		assert.False(t, ind.Ready(), "%s should not be ready after reset", ind.Name())
	}
}
