package kde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCDFMonotoneAndBounded(t *testing.T) {
	values := []float64{0.1, 0.2, 0.2, 0.5, 0.8, 0.9, 0.95}
	k, err := Estimate(values)
	require.NoError(t, err)

	prev := -1.0
	for x := 0.0; x <= 1.0; x += 0.01 {
		c := k.CDF(x)
		assert.GreaterOrEqual(t, c, prev)
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0001)
		prev = c
	}
	assert.InDelta(t, 1.0, k.CDF(1.0), 1e-6)
}

func TestEstimateEmptyErrors(t *testing.T) {
	_, err := Estimate(nil)
	require.Error(t, err)
}

func TestCDFClampsOutOfRange(t *testing.T) {
	values := []float64{0.3, 0.4, 0.5, 0.6, 0.7}
	k, err := Estimate(values)
	require.NoError(t, err)
	assert.Equal(t, k.CDF(-5), k.CDF(0))
	assert.Equal(t, k.CDF(5), k.CDF(1))
}
