package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// Uniform maps a unit draw u in [0,1) onto [lo, hi).
func Uniform(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}

// Round2 rounds a money amount to cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sum adds up a slice of money amounts.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
