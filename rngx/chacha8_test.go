package rngx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrdyn/wfctile/rngx"
)

func TestChaCha8_DeterministicForSameSeed(t *testing.T) {
	a := rngx.NewChaCha8(42)
	b := rngx.NewChaCha8(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestChaCha8_DifferentSeedsDiverge(t *testing.T) {
	a := rngx.NewChaCha8(1)
	b := rngx.NewChaCha8(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestChaCha8_Float64InUnitInterval(t *testing.T) {
	c := rngx.NewChaCha8(7)
	for i := 0; i < 1000; i++ {
		f := c.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestWeightedSample_EvenSplit(t *testing.T) {
	weights := []float64{1, 1, 1, 1}
	assert.Equal(t, 0, rngx.WeightedSample(weights, 0.0))
	assert.Equal(t, 1, rngx.WeightedSample(weights, 0.26))
	assert.Equal(t, 3, rngx.WeightedSample(weights, 0.999))
}

func TestWeightedSample_ZeroLiveReturnsZero(t *testing.T) {
	assert.Equal(t, 0, rngx.WeightedSample([]float64{0, 0, 0}, 0.5))
	assert.Equal(t, 0, rngx.WeightedSample(nil, 0.5))
}

func TestWeightedSample_SkipsZeroWeightEntries(t *testing.T) {
	weights := []float64{0, 2, 0, 2}
	// r*total = 0.9*4 = 3.6 : prefix sums are 0,2,2,4, so k=3 is the
	// first index whose cumulative weight meets the threshold.
	assert.Equal(t, 3, rngx.WeightedSample(weights, 0.9))
}
