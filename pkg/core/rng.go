package core

import (
	"math"
	"math/rand/v2"
)

// Float64Source yields uniform values in [0, 1).
type Float64Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Angle draws one value from src and maps it to [0, 2π).
func Angle(src Float64Source) float64 {
	return src.Float64() * 2 * math.Pi
}

// Symmetric draws one value from src and maps it to [-limit, limit).
func Symmetric(src Float64Source, limit float64) float64 {
	return (src.Float64()*2 - 1) * limit
}
