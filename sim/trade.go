package sim

import "time"

// Kind discriminates journal events.
type Kind string

const (
	Buy  Kind = "BUY"
	Sell Kind = "SELL"
)

// TradeEvent is one entry in the append-only trade journal. Buy events
// never carry PnL or BalanceAfter; Sell events always carry both.
type TradeEvent struct {
	Kind         Kind      `json:"type"`
	Price        float64   `json:"price"`
	Time         time.Time `json:"time"`
	PnL          *float64  `json:"pnl,omitempty"`
	BalanceAfter *float64  `json:"balance,omitempty"`
}

// Position is the replay's state variable. The zero value is Flat; a Long
// position records where it was opened. Long never transitions directly to
// Long: entries are only evaluated from Flat.
type Position struct {
	Open       bool
	EntryPrice float64
	EntryTime  time.Time
}
