package core

import "math/rand/v2"

// BitSource supplies 64 random bits per call. Seeding is the caller's concern.
type BitSource interface {
	Uint64() uint64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint64 returns 64 random bits. It makes RNG a BitSource.
func (r *RNG) Uint64() uint64 {
	return r.r.Uint64()
}

// FillBinary fills the buffer with 0/1 values, one bit per cell, drawing a
// fresh 64-bit word every 64 cells and consuming it from the top bit down.
func FillBinary(src BitSource, buf []uint8) {
	var word uint64
	for i := range buf {
		if i&63 == 0 {
			word = src.Uint64()
		}
		buf[i] = uint8(word >> 63)
		word <<= 1
	}
}
