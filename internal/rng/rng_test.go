package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedProducesSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.UniformInt(0, 1000), b.UniformInt(0, 1000))
		assert.Equal(t, a.Uniform(0, 1), b.Uniform(0, 1))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.UniformInt(0, 1_000_000) != b.UniformInt(0, 1_000_000) {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestSeedReseedsDeterministically(t *testing.T) {
	s := New(0)
	got := s.Seed(99)
	assert.Equal(t, int64(99), got)
	assert.Equal(t, int64(99), s.CurrentSeed())

	first := s.UniformInt(0, 1000)
	s.Seed(99)
	assert.Equal(t, first, s.UniformInt(0, 1000))
}

func TestNormalWithZeroSigmaIsDeterministic(t *testing.T) {
	s := New(1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 5.0, s.Normal(5, 0))
	}
}

func TestUniformIntBounds(t *testing.T) {
	s := New(3)
	for i := 0; i < 200; i++ {
		v := s.UniformInt(2, 5)
		assert.GreaterOrEqual(t, v, 2)
		assert.Less(t, v, 5)
	}
}
