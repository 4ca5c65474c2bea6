package indicators

import (
	"fmt"

	"github.com/rustyeddy/meanrev/market"
)

// SimpleMA is a streaming simple moving average over tick prices.
// Updates are O(1): a circular buffer carries the window and a running sum.
type SimpleMA struct {
	period int
	buf    []float64
	idx    int
	count  int
	sum    float64
}

// NewMA creates a streaming SMA with the given period.
func NewMA(period int) *SimpleMA {
	return &SimpleMA{
		period: period,
		buf:    make([]float64, period),
	}
}

func (m *SimpleMA) Name() string {
	return fmt.Sprintf("SMA(%d)", m.period)
}

func (m *SimpleMA) Warmup() int {
	return m.period
}

func (m *SimpleMA) Reset() {
	m.idx = 0
	m.count = 0
	m.sum = 0
	for i := range m.buf {
		m.buf[i] = 0
	}
}

func (m *SimpleMA) Update(t market.Tick) {
	if m.count >= m.period {
		m.sum -= m.buf[m.idx]
	}
	m.buf[m.idx] = t.Price
	m.sum += t.Price
	m.idx = (m.idx + 1) % m.period
	m.count++
}

func (m *SimpleMA) Ready() bool {
	return m.count >= m.period
}

func (m *SimpleMA) Value() float64 {
	if !m.Ready() {
		return 0
	}
	return m.sum / float64(m.period)
}

// RelativeStrength is a streaming Wilder RSI over tick prices.
// Updates are O(1); no history scans.
type RelativeStrength struct {
	period    int
	count     int
	prevPrice float64
	avgGain   float64
	avgLoss   float64
	current   float64
}

// NewRSI creates a streaming RSI with the given period (typically 14).
func NewRSI(period int) *RelativeStrength {
	return &RelativeStrength{period: period}
}

func (r *RelativeStrength) Name() string {
	return fmt.Sprintf("RSI(%d)", r.period)
}

// Warmup is period+1: the first delta needs two ticks.
func (r *RelativeStrength) Warmup() int {
	return r.period + 1
}

func (r *RelativeStrength) Reset() {
	r.count = 0
	r.prevPrice = 0
	r.avgGain = 0
	r.avgLoss = 0
	r.current = 0
}

func (r *RelativeStrength) Update(t market.Tick) {
	price := t.Price
	r.count++

	if r.count == 1 {
		// First tick only anchors the delta.
		r.prevPrice = price
		return
	}

	delta := price - r.prevPrice
	r.prevPrice = price

	gain, loss := 0.0, 0.0
	if delta > 0 {
		gain = delta
	} else {
		loss = -delta
	}

	if r.count <= r.period+1 {
		// Accumulation phase: build the seed averages.
		r.avgGain += gain
		r.avgLoss += loss
		if r.count == r.period+1 {
			r.avgGain /= float64(r.period)
			r.avgLoss /= float64(r.period)
			r.current = rsiValue(r.avgGain, r.avgLoss)
		}
		return
	}

	p := float64(r.period)
	r.avgGain = (r.avgGain*(p-1) + gain) / p
	r.avgLoss = (r.avgLoss*(p-1) + loss) / p
	r.current = rsiValue(r.avgGain, r.avgLoss)
}

func (r *RelativeStrength) Ready() bool {
	return r.count > r.period
}

func (r *RelativeStrength) Value() float64 {
	if !r.Ready() {
		return 0
	}
	return r.current
}
