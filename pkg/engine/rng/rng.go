// Package rng provides the random source used by level construction.
// Everything that rolls dice takes a Source so runs can be replayed from a seed.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is a uniform integer source.
type Source interface {
	// Intn returns a uniformly distributed value in [0, n). n must be > 0.
	Intn(n int) int
}

// Seeded is a Source backed by a PCG generator.
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// New creates a seeded Source. A seed of 0 picks one from the clock.
func New(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with, so a run can be reproduced.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.IntN(n)
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Each value is reduced modulo n so any script is valid for any range.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence creates a Sequence. With no values it always returns 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
