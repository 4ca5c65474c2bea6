// Package indicators computes technical indicators over tick prices.
//
// Two APIs are provided: batch functions that transform a full price
// series into aligned indicator series, and streaming indicators that
// update one tick at a time. Both are deterministic: the same input
// always produces bit-identical output.
package indicators

import (
	"fmt"

	"github.com/rustyeddy/meanrev/market"
)

// Value is one indicator sample. During an indicator's warm-up window the
// sample is undefined and Valid is false; callers must never compare an
// invalid Val against a threshold.
type Value struct {
	Val   float64
	Valid bool
}

// Frame is a tick extended with the indicator values aligned to it.
// Frames are immutable once produced; the raw tick series is never
// mutated in place.
type Frame struct {
	market.Tick
	SMA Value
	RSI Value
}

// Indicator computes a single streaming value from ticks.
type Indicator interface {
	// Name returns a stable identifier like "SMA(14)" or "RSI(14)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next tick and updates internal state.
	Update(t market.Tick)

	// Ready reports whether Value() is meaningful (warmup completed).
	Ready() bool

	// Value returns the current indicator value. If !Ready(), it returns 0;
	// callers should always check Ready().
	Value() float64
}

// ComputeFrames derives the SMA and RSI series from a tick series and
// zips them into frames, aligned 1:1 with the input by position.
func ComputeFrames(ticks []market.Tick, smaPeriod, rsiPeriod int) ([]Frame, error) {
	prices := market.Prices(ticks)

	sma, err := SMA(prices, smaPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute frames: %w", err)
	}
	rsi, err := RSI(prices, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute frames: %w", err)
	}

	frames := make([]Frame, len(ticks))
	for i := range ticks {
		frames[i] = Frame{Tick: ticks[i], SMA: sma[i], RSI: rsi[i]}
	}
	return frames, nil
}
