package analysis

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Thresholds are the acceptance criteria for a ticker.
type Thresholds struct {
	MinScore         float64 // minimum objective score
	MinTradesPerYear float64 // minimum annualised trade frequency
}

// DefaultThresholds keeps tickers with a positive-quality, reasonably active
// system profile.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinScore:         1.0,
		MinTradesPerYear: 4.0,
	}
}

// Evaluation is the screening verdict for one ticker.
type Evaluation struct {
	Ticker           string
	Score            float64
	Trades           int
	AvgTradesPerYear float64
	Selected         bool
}

// Screening splits tested tickers into selected and rejected by the
// objective score computed over their closed trades.
type Screening struct {
	Start      time.Time
	End        time.Time
	Thresholds Thresholds
}

// Evaluate scores every ticker present in trades. Tickers are compared on
// trades of their own; the per-year frequency is not divided across
// instruments since each ticker is judged in isolation.
func (s Screening) Evaluate(trades []Trade) []Evaluation {
	byTicker := make(map[string][]Trade)
	for _, t := range trades {
		byTicker[t.Ticker] = append(byTicker[t.Ticker], t)
	}

	out := make([]Evaluation, 0, len(byTicker))
	for ticker, tt := range byTicker {
		score := ObjectiveScore(tt, s.Start, s.End, 1)
		perYear := AvgTradesPerYear(len(tt), s.Start, s.End, 1)

		out = append(out, Evaluation{
			Ticker:           ticker,
			Score:            score,
			Trades:           len(tt),
			AvgTradesPerYear: perYear,
			Selected:         score >= s.Thresholds.MinScore && perYear >= s.Thresholds.MinTradesPerYear,
		})
	}

	// Best score first, ticker as a stable tie-break.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out
}

// WriteReport prints the selected and rejected tables.
func WriteReport(w io.Writer, evals []Evaluation) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Ticker Screening")
	fmt.Fprintln(w, "==================================================")

	writeSection(w, "Selected Tickers", evals, true)
	writeSection(w, "Rejected Tickers", evals, false)
}

func writeSection(w io.Writer, title string, evals []Evaluation, selected bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "%-12s %10s %8s %14s\n", "Ticker", "Score", "Trades", "Trades/Year")

	n := 0
	for _, e := range evals {
		if e.Selected != selected {
			continue
		}
		fmt.Fprintf(w, "%-12s %10.2f %8d %14.2f\n", e.Ticker, e.Score, e.Trades, e.AvgTradesPerYear)
		n++
	}
	if n == 0 {
		fmt.Fprintln(w, "(none)")
	}
}
