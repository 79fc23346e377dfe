package journal

const Schema = `
CREATE TABLE IF NOT EXISTS inspections (
	run_id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	trade_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS inspection_trades (
	run_id TEXT NOT NULL,
	trade_id TEXT NOT NULL,
	instrument TEXT NOT NULL,
	units REAL NOT NULL,
	entry_price REAL NOT NULL,
	unrealized_pl REAL NOT NULL,
	open_time TEXT NOT NULL,
	take_profit_id TEXT,
	take_profit_price REAL,
	stop_loss_id TEXT,
	stop_loss_price REAL,
	PRIMARY KEY (run_id, trade_id)
);

CREATE INDEX IF NOT EXISTS idx_inspections_time ON inspections(time);
`
