package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/meanrev/pkg/id"
	"github.com/rustyeddy/meanrev/sim"
)

// SQLite persists trade events keyed by a ULID run id, so one database can
// accumulate the journals of many replay runs.
type SQLite struct {
	db    *sql.DB
	runID string
}

// NewSQLite opens (or creates) the journal database and registers a new run
// row. dataset names the input the run replayed.
func NewSQLite(path, dataset string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	runID := id.New()
	_, err = db.Exec(`INSERT INTO runs (run_id, created, dataset) VALUES (?, ?, ?)`,
		runID, time.Now().UTC(), dataset)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, runID: runID}, nil
}

// RunID returns this run's identifier.
func (j *SQLite) RunID() string { return j.runID }

func (j *SQLite) RecordEvent(ev sim.TradeEvent) error {
	var pnl, balance sql.NullFloat64
	if ev.PnL != nil {
		pnl = sql.NullFloat64{Float64: *ev.PnL, Valid: true}
	}
	if ev.BalanceAfter != nil {
		balance = sql.NullFloat64{Float64: *ev.BalanceAfter, Valid: true}
	}

	_, err := j.db.Exec(`
		INSERT INTO events (run_id, kind, price, time, pnl, balance)
		VALUES (?, ?, ?, ?, ?, ?)`,
		j.runID, string(ev.Kind), ev.Price, ev.Time, pnl, balance,
	)
	return err
}

// ListEvents returns the events of a run in emission order.
func (j *SQLite) ListEvents(runID string) ([]sim.TradeEvent, error) {
	rows, err := j.db.Query(`
		SELECT kind, price, time, pnl, balance
		FROM events WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []sim.TradeEvent
	for rows.Next() {
		var (
			kind         string
			ev           sim.TradeEvent
			pnl, balance sql.NullFloat64
		)
		if err := rows.Scan(&kind, &ev.Price, &ev.Time, &pnl, &balance); err != nil {
			return nil, err
		}
		ev.Kind = sim.Kind(kind)
		if pnl.Valid {
			v := pnl.Float64
			ev.PnL = &v
		}
		if balance.Valid {
			v := balance.Float64
			ev.BalanceAfter = &v
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
