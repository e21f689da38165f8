package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Engine is the source of randomness for a Generator. *rand.Rand from math/rand/v2 satisfies Engine.
type Engine interface {
	// Uint64 returns a uniformly distributed 64 bit value
	Uint64() uint64
	// Uint64N returns a uniformly distributed value in [0, n). It panics if n == 0
	Uint64N(n uint64) uint64
	// Shuffle permutes n elements using swap. Every permutation must be equally likely
	Shuffle(n int, swap func(i, j int))
}

var _ Engine = &rand.Rand{}

// cryptoSource is a rand.Source backed by crypto/rand
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("random: crypto/rand failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewEngine returns the default secure engine. It is safe for concurrent use.
func NewEngine() *rand.Rand {
	return rand.New(cryptoSource{})
}
