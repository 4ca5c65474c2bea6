// Package market holds the tick data model shared by the feed, the
// indicator engine, and the simulation.
package market

import (
	"fmt"
	"math"
	"time"
)

// Tick is one timestamped price observation for the instrument under test.
type Tick struct {
	Time  time.Time
	Price float64
}

// DataFormatError reports a malformed tick at the boundary between data
// acquisition and the replay core. The core never re-validates beyond this.
type DataFormatError struct {
	Index  int
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("tick %d: %s", e.Index, e.Reason)
}

// ValidateSeries asserts the replay precondition: timestamps strictly
// increasing, prices finite and positive. Duplicate or out-of-order
// timestamps are a precondition violation, not data to be reordered.
func ValidateSeries(ticks []Tick) error {
	for i, t := range ticks {
		if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
			return &DataFormatError{Index: i, Reason: fmt.Sprintf("non-finite price %v", t.Price)}
		}
		if t.Price <= 0 {
			return &DataFormatError{Index: i, Reason: fmt.Sprintf("non-positive price %v", t.Price)}
		}
		if i > 0 && !ticks[i-1].Time.Before(t.Time) {
			return &DataFormatError{
				Index: i,
				Reason: fmt.Sprintf("timestamp %s does not advance past %s",
					t.Time.Format(time.RFC3339), ticks[i-1].Time.Format(time.RFC3339)),
			}
		}
	}
	return nil
}

// Prices extracts the price column from a tick series.
func Prices(ticks []Tick) []float64 {
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = t.Price
	}
	return out
}
