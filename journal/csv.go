package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSV struct {
	fills      *csv.Writer
	trades     *csv.Writer
	valuations *csv.Writer
	ff, tf, vf *os.File
}

func NewCSV(fillsPath, tradesPath, valuationsPath string) (*CSV, error) {
	ff, err := os.Create(fillsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	vf, err := os.Create(valuationsPath)
	if err != nil {
		return nil, err
	}

	fw := csv.NewWriter(ff)
	tw := csv.NewWriter(tf)
	vw := csv.NewWriter(vf)

	if err := fw.Write([]string{"fill_id", "instrument", "quantity", "price", "commission", "cash_flow", "time"}); err != nil {
		return nil, err
	}
	if err := tw.Write([]string{"trade_id", "instrument", "direction", "quantity", "avg_entry_price", "realized_pnl", "trade_return", "open_time", "close_time"}); err != nil {
		return nil, err
	}
	if err := vw.Write([]string{"time", "cash", "net_liquidation", "realized_pnl", "unrealized_pnl"}); err != nil {
		return nil, err
	}

	for _, w := range []*csv.Writer{fw, tw, vw} {
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
	}

	return &CSV{fills: fw, trades: tw, valuations: vw, ff: ff, tf: tf, vf: vf}, nil
}

func (j *CSV) RecordFill(r FillRecord) error {
	err := j.fills.Write([]string{
		r.FillID,
		r.Instrument,
		f(r.Quantity),
		f(r.Price),
		f(r.Commission),
		f(r.CashFlow),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.fills.Flush()
	return j.fills.Error()
}

func (j *CSV) RecordTrade(r TradeRecord) error {
	err := j.trades.Write([]string{
		r.TradeID,
		r.Instrument,
		r.Direction,
		f(r.Quantity),
		f(r.AvgEntryPrice),
		f(r.RealizedPnl),
		f(r.Return),
		r.OpenTime.Format(time.RFC3339),
		r.CloseTime.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSV) RecordValuation(r ValuationSnapshot) error {
	err := j.valuations.Write([]string{
		r.Time.Format(time.RFC3339),
		f(r.Cash),
		f(r.NetLiquidation),
		f(r.RealizedPnl),
		f(r.UnrealizedPnl),
	})
	if err != nil {
		return err
	}
	j.valuations.Flush()
	return j.valuations.Error()
}

func (j *CSV) Close() error {
	for _, w := range []*csv.Writer{j.fills, j.trades, j.valuations} {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}
	for _, file := range []*os.File{j.ff, j.tf, j.vf} {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
