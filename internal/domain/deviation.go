package domain

import "math"

// DeviationWindow is the number of most recent prices sampled for deviation.
const DeviationWindow = 100

// StandardDeviation returns the population standard deviation of values.
// An empty slice yields 0.
func StandardDeviation(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / n)
}
