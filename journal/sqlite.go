package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordFill(f FillRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO fills
		(fill_id, instrument, quantity, price, commission, cash_flow, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.FillID, f.Instrument, f.Quantity, f.Price, f.Commission, f.CashFlow, f.Time,
	)
	return err
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, instrument, direction, quantity, avg_entry_price, realized_pnl, trade_return, open_time, close_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Instrument, t.Direction, t.Quantity, t.AvgEntryPrice,
		t.RealizedPnl, t.Return, t.OpenTime, t.CloseTime,
	)
	return err
}

func (j *SQLite) RecordValuation(v ValuationSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO valuations
		(time, cash, net_liquidation, realized_pnl, unrealized_pnl)
		VALUES (?, ?, ?, ?, ?)`,
		v.Time, v.Cash, v.NetLiquidation, v.RealizedPnl, v.UnrealizedPnl,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
