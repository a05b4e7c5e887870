package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMidSpread(t *testing.T) {
	t.Parallel()

	q := Quote{Instrument: "AAPL", Bid: 100, Ask: 100.4}
	assert.InDelta(t, 100.2, q.Mid(), 1e-9)
	assert.InDelta(t, 0.4, q.Spread(), 1e-9)
}

func TestQuoteStore(t *testing.T) {
	t.Parallel()

	s := NewQuoteStore()

	_, err := s.Get("AAPL")
	assert.Error(t, err)

	q1 := Quote{Instrument: "AAPL", Bid: 100, Ask: 100.2, Time: time.Unix(1, 0)}
	s.Set(q1)

	got, err := s.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, q1, got)

	// Latest quote wins.
	q2 := Quote{Instrument: "AAPL", Bid: 101, Ask: 101.2, Time: time.Unix(2, 0)}
	s.Set(q2)

	got, err = s.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, q2, got)

	s.Set(Quote{Instrument: "MSFT", Bid: 200, Ask: 200.4})
	assert.ElementsMatch(t, []string{"AAPL", "MSFT"}, s.Instruments())
}
