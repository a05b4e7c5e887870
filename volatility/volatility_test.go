package volatility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReturns(t *testing.T) {
	t.Parallel()

	got, err := LogReturns([]float64{100, 110, 99})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, math.Log(1.1), got[0], 1e-12)
	assert.InDelta(t, math.Log(0.9), got[1], 1e-12)
}

func TestLogReturnsErrors(t *testing.T) {
	t.Parallel()

	_, err := LogReturns([]float64{100})
	assert.Error(t, err)

	_, err = LogReturns([]float64{100, 0, 110})
	assert.Error(t, err)

	_, err = LogReturns([]float64{-1, 100})
	assert.Error(t, err)
}

func TestRealized(t *testing.T) {
	t.Parallel()

	// Deviations ±0.01 around mean 0.02: sample std = 0.01*sqrt(2).
	got, err := Realized([]float64{0.01, 0.03})
	require.NoError(t, err)
	assert.InDelta(t, 0.0141421356, got, 1e-9)

	_, err = Realized([]float64{0.01})
	assert.Error(t, err)
}

func TestAnnualise(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.01*math.Sqrt(252), Annualise(0.01, Daily), 1e-12)
	assert.InDelta(t, 0.02*math.Sqrt(52), Annualise(0.02, Weekly), 1e-12)
	assert.InDelta(t, 0.03*math.Sqrt(12), Annualise(0.03, Monthly), 1e-12)
}

func TestRolling(t *testing.T) {
	t.Parallel()

	returns := []float64{0.01, 0.03, -0.02, 0.02, 0.00}

	got, err := Rolling(returns, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i := range got {
		want, err := Realized(returns[i : i+3])
		require.NoError(t, err)
		assert.InDelta(t, want, got[i], 1e-12)
	}

	_, err = Rolling(returns, 1)
	assert.Error(t, err)
	_, err = Rolling(returns[:2], 3)
	assert.Error(t, err)
}

func TestStream(t *testing.T) {
	t.Parallel()

	s := NewStream(3, Daily)
	assert.Equal(t, 4, s.Warmup())
	assert.False(t, s.Ready())
	assert.Zero(t, s.Value())

	prices := []float64{100, 101, 99, 102}
	for _, p := range prices {
		s.Update(p)
	}
	require.True(t, s.Ready())

	returns, err := LogReturns(prices)
	require.NoError(t, err)
	raw, err := Realized(returns)
	require.NoError(t, err)
	assert.InDelta(t, Annualise(raw, Daily), s.Value(), 1e-12)

	// Window slides: oldest return drops out.
	s.Update(103)
	returns, err = LogReturns([]float64{101, 99, 102, 103})
	require.NoError(t, err)
	raw, err = Realized(returns)
	require.NoError(t, err)
	assert.InDelta(t, Annualise(raw, Daily), s.Value(), 1e-12)

	s.Reset()
	assert.False(t, s.Ready())
}

func TestStreamIgnoresBadPrices(t *testing.T) {
	t.Parallel()

	s := NewStream(2, Daily)
	s.Update(100)
	s.Update(-1)
	s.Update(0)
	s.Update(101)
	s.Update(102)
	assert.True(t, s.Ready())
}
