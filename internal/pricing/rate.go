package pricing

import "math"

// NormalizeRate converts a rate given either as a decimal (0.2) or as a
// percentage (20) into its decimal form. Anything above 1 is read as a
// percentage; exactly 1 stays 1 (100%).
func NormalizeRate(rate float64) (float64, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0, &InvalidRateError{Rate: rate}
	}
	if rate > 1 {
		return rate / 100, nil
	}
	return rate, nil
}
