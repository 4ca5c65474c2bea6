package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/meanrev/sim"
)

// CSVJournal appends trade events to a single CSV file. Buy rows leave the
// pnl and balance columns empty.
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"kind", "price", "time", "pnl", "balance"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordEvent(ev sim.TradeEvent) error {
	pnl, balance := "", ""
	if ev.PnL != nil {
		pnl = f(*ev.PnL)
	}
	if ev.BalanceAfter != nil {
		balance = f(*ev.BalanceAfter)
	}

	err := j.w.Write([]string{
		string(ev.Kind),
		f(ev.Price),
		ev.Time.Format(time.RFC3339),
		pnl,
		balance,
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
