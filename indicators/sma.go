package indicators

import "fmt"

// SMA computes the simple moving average series for the given period.
// Entry i is the mean of prices[i-period+1 .. i]; entries before index
// period-1 are undefined. No lookahead.
func SMA(prices []float64, period int) ([]Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("sma: period must be positive, got %d", period)
	}

	out := make([]Value, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = Value{Val: sum / float64(period), Valid: true}
		}
	}
	return out, nil
}
