package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fxwatch/fxwatch/inspect"
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
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// RecordInspection stores a report and its trades in one transaction.
func (j *SQLite) RecordInspection(rep *inspect.Report) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO inspections (run_id, account_id, time, trade_count)
		VALUES (?, ?, ?, ?)`,
		rep.RunID, rep.AccountID, rep.Time, len(rep.Trades),
	); err != nil {
		return err
	}

	for _, t := range rep.Trades {
		tpID, tpPrice := orderColumns(t.TakeProfit)
		slID, slPrice := orderColumns(t.StopLoss)
		if _, err := tx.Exec(`
			INSERT INTO inspection_trades
			(run_id, trade_id, instrument, units, entry_price, unrealized_pl, open_time,
			 take_profit_id, take_profit_price, stop_loss_id, stop_loss_price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rep.RunID, t.ID, t.Instrument, t.Units, t.Price, t.UnrealizedPL, t.OpenTime,
			tpID, tpPrice, slID, slPrice,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func orderColumns(o *inspect.AttachedOrder) (sql.NullString, sql.NullFloat64) {
	if o == nil {
		return sql.NullString{}, sql.NullFloat64{}
	}
	return sql.NullString{String: o.ID, Valid: true},
		sql.NullFloat64{Float64: o.Price, Valid: true}
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
