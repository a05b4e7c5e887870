package backtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/natwijaya19/qf-lib/market"
)

// QuoteFeed yields quotes (typically from a dataset) one at a time.
// Implementations should be deterministic and return (ok=false, err=nil) at EOF.
type QuoteFeed interface {
	Next() (q market.Quote, ok bool, err error)
	Close() error
}

// CSVQuoteFeed reads canonical quote CSV rows:
//
//	time,instrument,bid,ask
//
// where time is RFC3339 or RFC3339Nano.
//
// It optionally filters quotes to [From, To) if provided.
// Header row ("time,...") is allowed.
// Empty/short rows are skipped.
type CSVQuoteFeed struct {
	f    *os.File
	r    *csv.Reader
	from time.Time
	to   time.Time

	sawFirst bool
}

func NewCSVQuoteFeed(path string, from, to time.Time) (*CSVQuoteFeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	return &CSVQuoteFeed{f: f, r: r, from: from, to: to}, nil
}

func (f *CSVQuoteFeed) Close() error {
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

func (f *CSVQuoteFeed) Next() (market.Quote, bool, error) {
	for {
		row, err := f.r.Read()
		if err == io.EOF {
			return market.Quote{}, false, nil
		}
		if err != nil {
			return market.Quote{}, false, err
		}
		if len(row) == 0 {
			continue
		}

		// Allow a single header row
		if !f.sawFirst {
			f.sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") {
				continue
			}
		}

		q, ok, err := parseQuoteRow(row)
		if err != nil {
			return market.Quote{}, false, err
		}
		if !ok {
			continue
		}
		if !inRange(q.Time, f.from, f.to) {
			continue
		}
		return q, true, nil
	}
}

func parseQuoteRow(row []string) (market.Quote, bool, error) {
	// Need at least: time,instrument,bid,ask
	if len(row) < 4 {
		return market.Quote{}, false, nil
	}

	ts := strings.TrimSpace(row[0])
	if ts == "" {
		return market.Quote{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339Nano, ts)
		if err2 != nil {
			return market.Quote{}, false, fmt.Errorf("bad time %q: %w", ts, err)
		}
		t = t2
	}

	inst := strings.TrimSpace(row[1])
	if inst == "" {
		return market.Quote{}, false, nil
	}

	bid, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return market.Quote{}, false, fmt.Errorf("bad bid %q: %w", row[2], err)
	}
	ask, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return market.Quote{}, false, fmt.Errorf("bad ask %q: %w", row[3], err)
	}

	return market.Quote{Time: t, Instrument: inst, Bid: bid, Ask: ask}, true, nil
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}
