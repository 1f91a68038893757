package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(12345)
	b := NewSeeded(12345)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100), "draw %d", i)
	}
}

func TestSeededZeroSeedPicksOne(t *testing.T) {
	s := NewSeeded(0)
	assert.NotZero(t, s.Seed())
}

func TestSeededBounds(t *testing.T) {
	s := NewSeeded(7)
	assert.Equal(t, 0, s.Intn(0))
	assert.Equal(t, 0, s.Intn(-3))

	for i := 0; i < 100; i++ {
		v := s.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted(2, 5, -1)

	assert.Equal(t, 2, s.Intn(10))
	assert.Equal(t, 1, s.Intn(4)) // 5 % 4
	assert.Equal(t, 1, s.Intn(10))
	assert.Equal(t, 0, s.Intn(10), "exhausted sequence returns 0")

	s.Queue(3)
	assert.Equal(t, 3, s.Intn(10))
}
