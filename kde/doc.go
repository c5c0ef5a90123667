// Package kde fits a Gaussian kernel density estimate over a slice of
// float64 samples in [0,1] and exposes it as an interpolated CDF on a
// fixed 1000-point grid, the numeric recipe behind PK (prior-knowledge)
// estimation.
//
// Bandwidth: Scott's rule (h = 1.06*sigma*n^(-1/5)), chosen and fixed
// here for bit-for-bit reproducibility across runs with the same seed.
package kde
