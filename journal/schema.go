// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	dataset TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	kind TEXT NOT NULL,
	price REAL NOT NULL,
	time DATETIME NOT NULL,
	pnl REAL,
	balance REAL
);

CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id);
`
