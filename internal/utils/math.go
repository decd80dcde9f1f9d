package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// NewSeededFloat returns a deterministic [0.0, 1.0) source for the given seed.
// The returned func is not safe for concurrent use.
func NewSeededFloat(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Reproducible game rolls
	return r.Float64
}

// FixedFloat returns a source that always yields v. Used to pin draws in tests.
func FixedFloat(v float64) func() float64 {
	return func() float64 { return v }
}
