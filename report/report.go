// Package report folds a completed trade journal into summary statistics.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/meanrev/sim"
)

// Report summarizes one replay. Trades is the journal itself, in emission
// order; callers must treat it as read-only.
type Report struct {
	InitialBalance float64          `json:"initial_balance"`
	FinalBalance   float64          `json:"final_balance"`
	TotalTrades    int              `json:"total_trades"`
	WinRate        float64          `json:"win_rate"`
	Trades         []sim.TradeEvent `json:"trades"`
}

// Summarize is a pure fold over the journal. TotalTrades counts Sell
// events only: a position still open at the end of the replay contributes
// a Buy entry but no trade. WinRate is 0 when there are no trades.
func Summarize(initialBalance, finalBalance float64, trades []sim.TradeEvent) Report {
	total, wins := 0, 0
	for _, ev := range trades {
		if ev.Kind != sim.Sell {
			continue
		}
		total++
		if ev.PnL != nil && *ev.PnL > 0 {
			wins++
		}
	}

	winRate := 0.0
	if total > 0 {
		winRate = float64(wins) / float64(total) * 100
	}

	return Report{
		InitialBalance: initialBalance,
		FinalBalance:   finalBalance,
		TotalTrades:    total,
		WinRate:        winRate,
		Trades:         trades,
	}
}

// WriteText renders the report as a human-readable block.
func WriteText(w io.Writer, r Report) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Replay Result")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Initial Balance: %.2f\n", r.InitialBalance)
	fmt.Fprintf(w, "Final Balance:   %.2f\n", r.FinalBalance)
	fmt.Fprintf(w, "Net P/L:         %.2f\n", r.FinalBalance-r.InitialBalance)
	fmt.Fprintf(w, "Total Trades:    %d\n", r.TotalTrades)
	fmt.Fprintf(w, "Win Rate:        %.2f%%\n", r.WinRate)

	if len(r.Trades) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, ev := range r.Trades {
		switch ev.Kind {
		case sim.Buy:
			fmt.Fprintf(w, "%s  %-4s  %.5f\n",
				ev.Time.Format(time.RFC3339), ev.Kind, ev.Price)
		case sim.Sell:
			fmt.Fprintf(w, "%s  %-4s  %.5f  pnl=%.2f  balance=%.2f\n",
				ev.Time.Format(time.RFC3339), ev.Kind, ev.Price, *ev.PnL, *ev.BalanceAfter)
		}
	}
}
