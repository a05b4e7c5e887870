package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// GetTrade returns a single closed trade by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	var rec TradeRecord

	row := j.db.QueryRow(`
		SELECT trade_id, instrument, direction, quantity, avg_entry_price, realized_pnl, trade_return, open_time, close_time
		FROM trades
		WHERE trade_id = ?`, tradeID)

	err := row.Scan(
		&rec.TradeID,
		&rec.Instrument,
		&rec.Direction,
		&rec.Quantity,
		&rec.AvgEntryPrice,
		&rec.RealizedPnl,
		&rec.Return,
		&rec.OpenTime,
		&rec.CloseTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTradesClosedBetween returns trades whose close_time is within [start, end).
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, instrument, direction, quantity, avg_entry_price, realized_pnl, trade_return, open_time, close_time
		FROM trades
		WHERE close_time >= ? AND close_time < ?
		ORDER BY close_time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.TradeID,
			&rec.Instrument,
			&rec.Direction,
			&rec.Quantity,
			&rec.AvgEntryPrice,
			&rec.RealizedPnl,
			&rec.Return,
			&rec.OpenTime,
			&rec.CloseTime,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFillsBetween returns fills whose time is within [start, end).
func (j *SQLite) ListFillsBetween(start, end time.Time) ([]FillRecord, error) {
	rows, err := j.db.Query(`
		SELECT fill_id, instrument, quantity, price, commission, cash_flow, time
		FROM fills
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FillRecord
	for rows.Next() {
		var rec FillRecord
		if err := rows.Scan(
			&rec.FillID,
			&rec.Instrument,
			&rec.Quantity,
			&rec.Price,
			&rec.Commission,
			&rec.CashFlow,
			&rec.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListValuationsBetween returns valuation snapshots within [start, end).
func (j *SQLite) ListValuationsBetween(start, end time.Time) ([]ValuationSnapshot, error) {
	rows, err := j.db.Query(`
		SELECT time, cash, net_liquidation, realized_pnl, unrealized_pnl
		FROM valuations
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ValuationSnapshot
	for rows.Next() {
		var rec ValuationSnapshot
		if err := rows.Scan(
			&rec.Time,
			&rec.Cash,
			&rec.NetLiquidation,
			&rec.RealizedPnl,
			&rec.UnrealizedPnl,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
