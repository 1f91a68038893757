// Package random provides the random number strategies used to pick secrets.
package random

import (
	"math/rand"
	"time"
)

// Random provides random number generation that can be replaced in tests.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Seeded implements Random on top of math/rand with an explicit seed.
type Seeded struct {
	rng  *rand.Rand
	seed int64
}

// NewSeeded creates a seeded source. A seed of 0 means a time based seed.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Intn returns a pseudo-random int in [0, n), or 0 when n <= 0.
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Scripted is a Random that replays a fixed sequence of values.
// Values are reduced modulo n; once the sequence is exhausted it returns 0.
type Scripted struct {
	values []int
	next   int
}

// Ensure both strategies implement Random
var (
	_ Random = (*Seeded)(nil)
	_ Random = (*Scripted)(nil)
)

// NewScripted creates a Scripted source replaying values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Intn returns the next queued value modulo n.
func (s *Scripted) Intn(n int) int {
	if n <= 0 || s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Queue appends values to the sequence.
func (s *Scripted) Queue(values ...int) {
	s.values = append(s.values, values...)
}
