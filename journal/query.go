package journal

import (
	"database/sql"
	"fmt"

	"github.com/fxwatch/fxwatch/inspect"
)

// ListRuns returns all journaled runs, oldest first.
func (j *SQLite) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, account_id, time, trade_count
		FROM inspections
		ORDER BY run_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.RunID, &rec.AccountID, &rec.Time, &rec.TradeCount); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRun reconstructs a journaled report. The raw trade mappings are not
// stored, so the rebuilt report renders without the raw-record lines.
func (j *SQLite) GetRun(runID string) (*inspect.Report, error) {
	rep := &inspect.Report{RunID: runID}

	row := j.db.QueryRow(`
		SELECT account_id, time
		FROM inspections
		WHERE run_id = ?`, runID)
	if err := row.Scan(&rep.AccountID, &rep.Time); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("inspection run %q not found", runID)
		}
		return nil, err
	}

	rows, err := j.db.Query(`
		SELECT trade_id, instrument, units, entry_price, unrealized_pl, open_time,
		       take_profit_id, take_profit_price, stop_loss_id, stop_loss_price
		FROM inspection_trades
		WHERE run_id = ?
		ORDER BY rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t          inspect.Trade
			tpID, slID sql.NullString
			tpPx, slPx sql.NullFloat64
		)
		if err := rows.Scan(
			&t.ID, &t.Instrument, &t.Units, &t.Price, &t.UnrealizedPL, &t.OpenTime,
			&tpID, &tpPx, &slID, &slPx,
		); err != nil {
			return nil, err
		}
		if tpID.Valid {
			t.TakeProfit = &inspect.AttachedOrder{ID: tpID.String, Price: tpPx.Float64}
		}
		if slID.Valid {
			t.StopLoss = &inspect.AttachedOrder{ID: slID.String, Price: slPx.Float64}
		}
		rep.Trades = append(rep.Trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rep, nil
}
