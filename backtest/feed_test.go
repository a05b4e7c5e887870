package backtest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQuotesCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVQuoteFeed(t *testing.T) {
	t.Parallel()

	path := writeQuotesCSV(t, `time,instrument,bid,ask
2024-03-01T10:00:00Z,AAPL,100.5,100.7
2024-03-01T10:01:00Z,AAPL,101.0,101.2
`)

	feed, err := NewCSVQuoteFeed(path, time.Time{}, time.Time{})
	require.NoError(t, err)
	defer feed.Close()

	q, ok, err := feed.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "AAPL", q.Instrument)
	assert.InDelta(t, 100.5, q.Bid, 1e-9)
	assert.InDelta(t, 100.7, q.Ask, 1e-9)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), q.Time)

	_, ok, err = feed.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = feed.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCSVQuoteFeedSkipsShortRows(t *testing.T) {
	t.Parallel()

	path := writeQuotesCSV(t, `2024-03-01T10:00:00Z,AAPL
2024-03-01T10:01:00Z,AAPL,101.0,101.2
`)

	feed, err := NewCSVQuoteFeed(path, time.Time{}, time.Time{})
	require.NoError(t, err)
	defer feed.Close()

	q, ok, err := feed.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 101.0, q.Bid, 1e-9)
}

func TestCSVQuoteFeedRangeFilter(t *testing.T) {
	t.Parallel()

	path := writeQuotesCSV(t, `2024-03-01T10:00:00Z,AAPL,100.0,100.2
2024-03-01T11:00:00Z,AAPL,101.0,101.2
2024-03-01T12:00:00Z,AAPL,102.0,102.2
`)

	from := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	feed, err := NewCSVQuoteFeed(path, from, to)
	require.NoError(t, err)
	defer feed.Close()

	q, ok, err := feed.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 101.0, q.Bid, 1e-9)

	// [from, to): the 12:00 row is excluded.
	_, ok, err = feed.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCSVQuoteFeedBadRow(t *testing.T) {
	t.Parallel()

	path := writeQuotesCSV(t, `2024-03-01T10:00:00Z,AAPL,notanumber,100.2
`)

	feed, err := NewCSVQuoteFeed(path, time.Time{}, time.Time{})
	require.NoError(t, err)
	defer feed.Close()

	_, _, err = feed.Next()
	assert.Error(t, err)
}
