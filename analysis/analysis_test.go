package analysis

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSQN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.5}, 0},
		{"flat_series", []float64{0.1, 0.1, 0.1}, 0},
		// mean 0.02, sample std 0.0141421...
		{"two_returns", []float64{0.01, 0.03}, 1.4142135623},
		{"losing_system", []float64{-0.01, -0.03}, -1.4142135623},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, SQN(tt.returns), 1e-6)
		})
	}
}

func TestAvgTradesPerYear(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(2*DaysPerYearAvg*24) * time.Hour)

	// 100 trades over 2 years across 5 instruments.
	got := AvgTradesPerYear(100, start, end, 5)
	assert.InDelta(t, 10.0, got, 1e-9)

	assert.Zero(t, AvgTradesPerYear(100, end, start, 5))
	assert.Zero(t, AvgTradesPerYear(100, start, end, 0))
}

func TestObjectiveScoreScalesWithFrequency(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(DaysPerYearAvg*24) * time.Hour)

	base := []Trade{
		{Ticker: "AAPL", Return: 0.01},
		{Ticker: "AAPL", Return: 0.03},
	}
	doubled := append(append([]Trade{}, base...), base...)

	low := ObjectiveScore(base, start, end, 1)
	high := ObjectiveScore(doubled, start, end, 1)

	assert.Greater(t, high, low)
	// Same SQN, four trades instead of two: score grows by sqrt(2).
	assert.InDelta(t, low*1.4142135623, high, 1e-6)
}

func TestScreeningEvaluate(t *testing.T) {
	t.Parallel()

	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(DaysPerYearAvg*24) * time.Hour)

	var trades []Trade
	// Consistent winner, 12 trades in the year.
	for i := 0; i < 12; i++ {
		r := 0.02
		if i%2 == 0 {
			r = 0.01
		}
		trades = append(trades, Trade{Ticker: "AAPL", Return: r})
	}
	// Too infrequent, whatever the quality.
	trades = append(trades,
		Trade{Ticker: "MSFT", Return: 0.05},
		Trade{Ticker: "MSFT", Return: 0.04},
	)
	// Losing system.
	for i := 0; i < 12; i++ {
		r := -0.02
		if i%2 == 0 {
			r = -0.01
		}
		trades = append(trades, Trade{Ticker: "TSLA", Return: r})
	}

	s := Screening{Start: start, End: end, Thresholds: DefaultThresholds()}
	evals := s.Evaluate(trades)

	assert.Len(t, evals, 3)

	byTicker := map[string]Evaluation{}
	for _, e := range evals {
		byTicker[e.Ticker] = e
	}

	assert.True(t, byTicker["AAPL"].Selected)
	assert.False(t, byTicker["MSFT"].Selected, "below trade-frequency threshold")
	assert.False(t, byTicker["TSLA"].Selected, "negative score")

	// Sorted best score first.
	assert.Equal(t, "AAPL", evals[0].Ticker)
	assert.Equal(t, "TSLA", evals[len(evals)-1].Ticker)
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteReport(&buf, []Evaluation{
		{Ticker: "AAPL", Score: 5.2, Trades: 12, AvgTradesPerYear: 12, Selected: true},
		{Ticker: "TSLA", Score: -3.1, Trades: 12, AvgTradesPerYear: 12},
	})

	out := buf.String()
	assert.Contains(t, out, "Selected Tickers")
	assert.Contains(t, out, "Rejected Tickers")
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "TSLA")
}
