package indicators

import "fmt"

// RSI computes the Wilder-smoothed relative strength index series for the
// given period.
//
// The average gain/loss is seeded at index period with the simple mean of
// the first period deltas, then smoothed with factor 1/period. Entries
// before index period are undefined.
func RSI(prices []float64, period int) ([]Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rsi: period must be positive, got %d", period)
	}

	out := make([]Value, len(prices))
	if len(prices) <= period {
		return out, nil
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss += -delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = Value{Val: rsiValue(avgGain, avgLoss), Valid: true}

	p := float64(period)
	for i := period + 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = Value{Val: rsiValue(avgGain, avgLoss), Valid: true}
	}
	return out, nil
}

// rsiValue resolves the oscillator from the smoothed averages. A zero
// average loss with gains means maximum strength; a completely flat run
// reads as neutral 50 so the value stays bounded without dividing by zero.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
