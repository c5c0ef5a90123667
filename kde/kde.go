package kde

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GridSize is the number of equally spaced points used to discretize
// [0,1] when building the interpolated CDF.
const GridSize = 1000

// minBandwidth floors the Scott's-rule bandwidth so a zero-variance
// sample (all values identical) never produces a degenerate (h=0)
// kernel. annotate reaches this floor for a constant-RelTime group of
// five or more rows: every NrmRelTime is 0 there, and only groups
// smaller than five take the constant-PK fallback.
const minBandwidth = 1e-6

// KDE is a Gaussian kernel density estimate over [0,1], exposed only
// through its interpolated, monotonically non-decreasing CDF.
type KDE struct {
	xs  [GridSize]float64
	cdf [GridSize]float64
}

// Estimate fits a Gaussian KDE over values using Scott's bandwidth rule
// (h = 1.06 * sigma * n^(-1/5)), then builds a cumulative-sum CDF over a
// GridSize-point grid on [0,1], normalized so the last entry is 1.
//
// Estimate never errors on a non-empty values slice; it is the caller's
// responsibility to only invoke it on groups with enough evidence (the
// spec's |t|<5 fallback happens one layer up, in annotate).
func Estimate(values []float64) (*KDE, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("kde: Estimate requires a non-empty sample")
	}

	sigma := stat.StdDev(values, nil)
	h := 1.06 * sigma * math.Pow(float64(n), -0.2)
	if h < minBandwidth || math.IsNaN(h) {
		h = minBandwidth
	}

	k := &KDE{}
	step := 1.0 / float64(GridSize-1)
	density := make([]float64, GridSize)
	var sum float64
	for i := 0; i < GridSize; i++ {
		x := float64(i) * step
		k.xs[i] = x
		var d float64
		for _, v := range values {
			d += distuv.Normal{Mu: v, Sigma: h}.Prob(x)
		}
		d /= float64(n)
		density[i] = d
		sum += d
		k.cdf[i] = sum
	}
	if sum == 0 || math.IsNaN(sum) {
		// Degenerate: every evaluated density was zero (pathological
		// bandwidth underflow). Fall back to a uniform CDF so CDF(x) is
		// still well-defined and monotone.
		for i := 0; i < GridSize; i++ {
			k.cdf[i] = float64(i+1) / float64(GridSize)
		}
		return k, nil
	}
	last := k.cdf[GridSize-1]
	for i := 0; i < GridSize; i++ {
		k.cdf[i] /= last
	}
	return k, nil
}

// CDF evaluates the interpolated cumulative distribution at x, clamping
// x to [0,1] and linearly interpolating between the two nearest grid
// points, matching np.interp semantics (flat extrapolation beyond the
// grid edges).
func (k *KDE) CDF(x float64) float64 {
	if x <= k.xs[0] {
		return k.cdf[0]
	}
	if x >= k.xs[GridSize-1] {
		return k.cdf[GridSize-1]
	}
	step := k.xs[1] - k.xs[0]
	idx := int(x / step)
	if idx >= GridSize-1 {
		idx = GridSize - 2
	}
	x0, x1 := k.xs[idx], k.xs[idx+1]
	y0, y1 := k.cdf[idx], k.cdf[idx+1]
	frac := (x - x0) / (x1 - x0)
	return y0 + frac*(y1-y0)
}
