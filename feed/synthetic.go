package feed

import (
	"time"

	"github.com/rustyeddy/meanrev/market"
)

// Synthetic returns a placeholder tick series for demonstration runs when
// no input file is supplied: the price cycles 100..109 at fixed intervals.
func Synthetic(n int, start time.Time, step time.Duration) []market.Tick {
	ticks := make([]market.Tick, n)
	for i := range ticks {
		ticks[i] = market.Tick{
			Time:  start.Add(time.Duration(i) * step),
			Price: 100 + float64(i%10),
		}
	}
	return ticks
}
