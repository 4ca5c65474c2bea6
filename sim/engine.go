// Package sim replays indicator frames through a two-state mean-reversion
// rule, producing a trade journal and a final account balance.
package sim

import (
	"fmt"

	"github.com/rustyeddy/meanrev/indicators"
)

// Config is the immutable rule configuration handed to the engine at
// construction. There is no process-wide state; two engines with the same
// config and input produce identical journals.
type Config struct {
	InitialBalance float64
	StakeAmount    float64
	EntryThreshold float64
	ExitThreshold  float64
}

// DefaultConfig returns the standard RSI(30/70) mean-reversion setup.
func DefaultConfig() Config {
	return Config{
		InitialBalance: 10_000,
		StakeAmount:    10,
		EntryThreshold: 30,
		ExitThreshold:  70,
	}
}

// Validate checks the configuration before a replay starts.
func (c Config) Validate() error {
	if c.InitialBalance <= 0 {
		return fmt.Errorf("initial balance must be positive, got %v", c.InitialBalance)
	}
	if c.StakeAmount <= 0 {
		return fmt.Errorf("stake amount must be positive, got %v", c.StakeAmount)
	}
	if c.EntryThreshold >= c.ExitThreshold {
		return fmt.Errorf("entry threshold %v must be below exit threshold %v",
			c.EntryThreshold, c.ExitThreshold)
	}
	return nil
}

// Recorder mirrors journal events to a persistent sink as they are emitted.
// The engine works without one; the in-memory journal is always kept.
type Recorder interface {
	RecordEvent(TradeEvent) error
}

// Engine is the simulation state machine. It owns the position, the account
// balance, and the trade journal for the duration of one replay. It is not
// safe for concurrent use; a replay is strictly sequential.
type Engine struct {
	cfg      Config
	balance  float64
	pos      Position
	trades   []TradeEvent
	recorder Recorder
}

// NewEngine creates an engine with the account initialized to
// cfg.InitialBalance and the position Flat.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		balance: cfg.InitialBalance,
	}
}

// SetRecorder attaches an optional persistent sink. Every journal event is
// mirrored to it in emission order.
func (e *Engine) SetRecorder(r Recorder) {
	e.recorder = r
}

// Run replays the frames in order. If the series ends while Long, the
// position is left open: no closing event is synthesized and the open
// trade is excluded from totals.
func (e *Engine) Run(frames []indicators.Frame) error {
	for _, f := range frames {
		if err := e.OnFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// OnFrame evaluates at most one transition for the frame. Warm-up frames
// (undefined RSI) are inert regardless of price.
func (e *Engine) OnFrame(f indicators.Frame) error {
	if !f.RSI.Valid {
		return nil
	}

	switch {
	case !e.pos.Open && f.RSI.Val < e.cfg.EntryThreshold:
		return e.openLong(f)
	case e.pos.Open && f.RSI.Val > e.cfg.ExitThreshold:
		return e.closeLong(f)
	}
	return nil
}

func (e *Engine) openLong(f indicators.Frame) error {
	e.pos = Position{Open: true, EntryPrice: f.Price, EntryTime: f.Time}
	return e.append(TradeEvent{
		Kind:  Buy,
		Price: f.Price,
		Time:  f.Time,
	})
}

func (e *Engine) closeLong(f indicators.Frame) error {
	pnl := (f.Price - e.pos.EntryPrice) * e.cfg.StakeAmount
	e.balance += pnl
	balance := e.balance
	e.pos = Position{}

	return e.append(TradeEvent{
		Kind:         Sell,
		Price:        f.Price,
		Time:         f.Time,
		PnL:          &pnl,
		BalanceAfter: &balance,
	})
}

func (e *Engine) append(ev TradeEvent) error {
	e.trades = append(e.trades, ev)
	if e.recorder != nil {
		if err := e.recorder.RecordEvent(ev); err != nil {
			return fmt.Errorf("record %s event: %w", ev.Kind, err)
		}
	}
	return nil
}

// Balance returns the current account balance.
func (e *Engine) Balance() float64 { return e.balance }

// Position returns the current position state.
func (e *Engine) Position() Position { return e.pos }

// Trades returns the journal accumulated so far. Callers must treat it as
// read-only.
func (e *Engine) Trades() []TradeEvent { return e.trades }
