// Package feed acquires ordered tick series for the replay core: CSV files
// on disk, or a synthetic placeholder series when no input is supplied.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/meanrev/market"
)

// DataSourceError reports a failure to obtain or parse the input source.
// The replay never starts when one is returned.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// TickFeed yields ticks one at a time. Implementations are deterministic
// and return (ok=false, err=nil) at EOF.
type TickFeed interface {
	Next() (t market.Tick, ok bool, err error)
	Close() error
}

// timeLayouts in parse preference order. The second form is what most
// exported datasets carry for the time column.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CSVFeed reads tick rows:
//
//	time,price[,bid,ask]
//
// A header row ("time,...") is allowed. Columns beyond price are ignored.
// Empty rows are skipped.
type CSVFeed struct {
	f *os.File
	r *csv.Reader

	sawFirst bool
	row      int
}

// NewCSVFeed opens a tick CSV. Open failures surface as *DataSourceError.
func NewCSVFeed(path string) (*CSVFeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	return &CSVFeed{f: f, r: r}, nil
}

func (c *CSVFeed) Close() error {
	if c.f != nil {
		return c.f.Close()
	}
	return nil
}

func (c *CSVFeed) Next() (market.Tick, bool, error) {
	for {
		row, err := c.r.Read()
		if err == io.EOF {
			return market.Tick{}, false, nil
		}
		if err != nil {
			return market.Tick{}, false, err
		}
		c.row++
		if len(row) == 0 {
			continue
		}

		// Allow a single header row.
		if !c.sawFirst {
			c.sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") {
				continue
			}
		}

		t, err := parseTickRow(row)
		if err != nil {
			return market.Tick{}, false, fmt.Errorf("row %d: %w", c.row, err)
		}
		return t, true, nil
	}
}

func parseTickRow(row []string) (market.Tick, error) {
	if len(row) < 2 {
		return market.Tick{}, fmt.Errorf("need at least 2 cols time,price: %v", row)
	}

	ts := strings.TrimSpace(row[0])
	var (
		t   time.Time
		err error
	)
	for _, layout := range timeLayouts {
		t, err = time.Parse(layout, ts)
		if err == nil {
			break
		}
	}
	if err != nil {
		return market.Tick{}, fmt.Errorf("bad time %q: %w", ts, err)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return market.Tick{}, fmt.Errorf("bad price %q: %w", row[1], err)
	}

	return market.Tick{Time: t, Price: price}, nil
}

// LoadTicks materializes and validates a full tick series from a CSV file.
// Acquisition and parse failures surface as *DataSourceError; a well-formed
// file with malformed tick values surfaces *market.DataFormatError.
func LoadTicks(path string) ([]market.Tick, error) {
	f, err := NewCSVFeed(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ticks []market.Tick
	for {
		t, ok, err := f.Next()
		if err != nil {
			return nil, &DataSourceError{Path: path, Err: err}
		}
		if !ok {
			break
		}
		ticks = append(ticks, t)
	}

	if len(ticks) == 0 {
		return nil, &DataSourceError{Path: path, Err: errors.New("no ticks in file")}
	}
	if err := market.ValidateSeries(ticks); err != nil {
		return nil, err
	}
	return ticks, nil
}

// WriteTicks saves a tick series as time,price CSV with a header row.
// Used to persist generated synthetic data for inspection.
func WriteTicks(path string, ticks []market.Tick) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write ticks: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "price"}); err != nil {
		return err
	}
	for _, t := range ticks {
		err := w.Write([]string{
			t.Time.Format(time.RFC3339),
			strconv.FormatFloat(t.Price, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
