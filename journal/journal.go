// Package journal persists the trade events a simulation emits. The
// in-memory journal inside the engine is authoritative; these sinks are
// durable mirrors for later inspection.
package journal

import "github.com/rustyeddy/meanrev/sim"

// Recorder receives trade events in emission order.
type Recorder interface {
	RecordEvent(sim.TradeEvent) error
	Close() error
}
